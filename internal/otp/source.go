package otp

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultEntropyAttempts bounds the reads tried per block before giving up.
const DefaultEntropyAttempts = 10

// PadSource produces cryptographically secure pad blocks, one at a time.
type PadSource interface {
	NextBlock() (Block, error)
}

// ReaderSource draws pad blocks from a cryptographically secure reader.
// Every call is independent: nothing is buffered or seeded.
type ReaderSource struct {
	reader   io.Reader
	attempts int
}

// NewReaderSource returns a source reading from r, trying each block up to attempts times.
// Values below 1 are treated as a single attempt.
func NewReaderSource(r io.Reader, attempts int) *ReaderSource {
	return &ReaderSource{
		reader:   r,
		attempts: max(1, attempts),
	}
}

// NewSystemSource returns a source backed by the operating system CSPRNG.
// It is safe for concurrent use.
func NewSystemSource() *ReaderSource {
	return NewReaderSource(rand.Reader, DefaultEntropyAttempts)
}

// NextBlock returns the next 8 random bytes.
func (s *ReaderSource) NextBlock() (Block, error) {
	var (
		block Block
		err   error
	)

	for range s.attempts {
		if _, err = io.ReadFull(s.reader, block[:]); err == nil {
			return block, nil
		}
	}

	return Block{}, fmt.Errorf("%w: after %d attempts: %w", ErrEntropyUnavailable, s.attempts, err)
}
