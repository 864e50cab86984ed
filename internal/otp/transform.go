package otp

import (
	"bufio"
	"fmt"
	"io"
)

const (
	// DefaultMaxSize is the input ceiling used when none is configured (2 GiB).
	DefaultMaxSize int64 = 2 << 30

	bufferSize = 32 * 1024
)

// Transform encrypts and decrypts streams with a one-time-pad.
//
// A Transform has no state of its own beyond its pad source and size limit.
// Concurrent calls are safe as long as the pad source is.
type Transform struct {
	// source draws fresh pad blocks during encryption
	source PadSource

	// maxSize caps input lengths in bytes, 0 disables the check
	maxSize int64
}

// New returns a Transform drawing pad blocks from source and rejecting inputs larger than maxSize.
// A maxSize of 0 or less removes the ceiling.
func New(source PadSource, maxSize int64) *Transform {
	return &Transform{
		source:  source,
		maxSize: max(0, maxSize),
	}
}

// Encrypt reads plain until its end, writing fresh pad bytes to pad and
// plain XOR pad to cipher. It returns the number of bytes processed, which is
// also the length written to both outputs.
//
// Streams are neither closed nor cleaned up on failure.
func (t *Transform) Encrypt(plain io.ReadSeeker, cipher, pad io.Writer) (int64, error) {
	size, err := t.checkSize(plain, NamePlainText)
	if err != nil {
		return 0, err
	}

	reader := bufio.NewReaderSize(plain, bufferSize)
	cipherWriter := bufio.NewWriterSize(cipher, bufferSize)
	padWriter := bufio.NewWriterSize(pad, bufferSize)

	err = forEachBlock(size, func(n int) error {
		padBlock, err := t.source.NextBlock()
		if err != nil {
			return fmt.Errorf("drawing pad block: %w", err)
		}

		if _, err := padWriter.Write(padBlock[:n]); err != nil {
			return ioError("writing one-time-pad", err)
		}

		var data Block
		if _, err := io.ReadFull(reader, data[:n]); err != nil {
			return ioError("reading plain text", err)
		}

		out := data.XOR(padBlock)
		if _, err := cipherWriter.Write(out[:n]); err != nil {
			return ioError("writing cipher text", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := padWriter.Flush(); err != nil {
		return 0, ioError("flushing one-time-pad", err)
	}

	if err := cipherWriter.Flush(); err != nil {
		return 0, ioError("flushing cipher text", err)
	}

	return size, nil
}

// Decrypt validates that cipher and pad are non-empty and equally long, then
// writes cipher XOR pad to plain. It returns the number of bytes written.
//
// Streams are neither closed nor cleaned up on failure.
func (t *Transform) Decrypt(cipher io.ReadSeeker, plain io.Writer, pad io.ReadSeeker) (int64, error) {
	size, err := t.ValidatePair(cipher, pad)
	if err != nil {
		return 0, err
	}

	cipherReader := bufio.NewReaderSize(cipher, bufferSize)
	padReader := bufio.NewReaderSize(pad, bufferSize)
	plainWriter := bufio.NewWriterSize(plain, bufferSize)

	err = forEachBlock(size, func(n int) error {
		var padBlock, data Block

		if _, err := io.ReadFull(padReader, padBlock[:n]); err != nil {
			return ioError("reading one-time-pad", err)
		}

		if _, err := io.ReadFull(cipherReader, data[:n]); err != nil {
			return ioError("reading cipher text", err)
		}

		out := data.XOR(padBlock)
		if _, err := plainWriter.Write(out[:n]); err != nil {
			return ioError("writing plain text", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := plainWriter.Flush(); err != nil {
		return 0, ioError("flushing plain text", err)
	}

	return size, nil
}

// ValidatePair checks, in order, that cipher is non-empty and within limits,
// that pad is non-empty and within limits, and that both have the same length.
// It returns the shared length and leaves both stream offsets untouched.
func (t *Transform) ValidatePair(cipher, pad io.Seeker) (int64, error) {
	cipherSize, err := t.checkSize(cipher, NameCipherText)
	if err != nil {
		return 0, err
	}

	padSize, err := t.checkSize(pad, NamePad)
	if err != nil {
		return 0, err
	}

	if cipherSize != padSize {
		return 0, fmt.Errorf("%w (%d != %d bytes)", ErrSizeMismatch, cipherSize, padSize)
	}

	return cipherSize, nil
}

func (t *Transform) checkSize(s io.Seeker, name string) (int64, error) {
	size, err := Remaining(s)
	if err != nil {
		return 0, fmt.Errorf("measuring %s: %w", name, err)
	}

	if size <= 0 || (t.maxSize > 0 && size > t.maxSize) {
		return 0, &FileSizeError{Name: name, Size: size, Limit: t.maxSize}
	}

	return size, nil
}

// forEachBlock calls fn with BlockSize for every full block in size bytes,
// then once more with the remainder if there is one.
func forEachBlock(size int64, fn func(n int) error) error {
	blocks, remainder := size/BlockSize, int(size%BlockSize)

	for range blocks {
		if err := fn(BlockSize); err != nil {
			return err
		}
	}

	if remainder > 0 {
		return fn(remainder)
	}

	return nil
}
