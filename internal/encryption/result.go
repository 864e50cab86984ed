package encryption

// Result represents the outcome of processing a single file.
type Result struct {
	Job

	// Bytes run through the pad
	Size int64

	// Any error that occurred during processing
	Error error
}
