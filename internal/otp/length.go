package otp

import "io"

// Remaining reports the number of bytes between the current offset of s and its end.
// The offset is restored before returning.
func Remaining(s io.Seeker) (int64, error) {
	current, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, ioError("seeking current offset", err)
	}

	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, ioError("seeking end", err)
	}

	if _, err := s.Seek(current, io.SeekStart); err != nil {
		return 0, ioError("restoring offset", err)
	}

	return end - current, nil
}
