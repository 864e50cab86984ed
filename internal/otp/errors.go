package otp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFileSize is returned when an input is empty or exceeds the configured maximum.
	ErrInvalidFileSize = errors.New("invalid file size")
	// ErrSizeMismatch is returned when cipher text and one-time-pad lengths differ.
	ErrSizeMismatch = errors.New("size mismatch: cipher text length does not equal the length of the one-time-pad")
	// ErrEntropyUnavailable is returned when the pad source cannot produce a full block.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	// ErrIO is returned for any read or write failure, including short reads.
	ErrIO = errors.New("i/o failure")
)

// Stream names used in FileSizeError.
const (
	NamePlainText  = "plain text"
	NameCipherText = "cipher text"
	NamePad        = "one-time-pad"
)

// FileSizeError reports an input that is empty or larger than the allowed maximum.
type FileSizeError struct {
	// Name of the offending stream
	Name string

	// Size measured in bytes
	Size int64

	// Limit in bytes, 0 when unlimited
	Limit int64
}

func (e *FileSizeError) Error() string {
	if e.Size <= 0 {
		return fmt.Sprintf("%v %q: empty file", ErrInvalidFileSize, e.Name)
	}

	return fmt.Sprintf("%v %q: %d bytes exceeds the limit of %d bytes", ErrInvalidFileSize, e.Name, e.Size, e.Limit)
}

// Unwrap makes errors.Is(err, ErrInvalidFileSize) hold.
func (e *FileSizeError) Unwrap() error {
	return ErrInvalidFileSize
}

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
