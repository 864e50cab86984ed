package otp_test

import (
	"errors"
	"testing"

	"github.com/idelchi/otp/internal/otp"
)

// flakyReader fails the first failures reads, then fills every request.
type flakyReader struct {
	failures int
	calls    int
}

func (r *flakyReader) Read(p []byte) (int, error) {
	r.calls++
	if r.calls <= r.failures {
		return 0, errors.New("entropy not ready")
	}

	for i := range p {
		p[i] = 0x5a
	}

	return len(p), nil
}

func TestReaderSourceRetries(t *testing.T) {
	t.Parallel()

	reader := &flakyReader{failures: 2}
	source := otp.NewReaderSource(reader, 3)

	block, err := source.NextBlock()
	if err != nil {
		t.Fatalf("NextBlock: %v", err)
	}

	if block.Word() != 0x5a5a5a5a5a5a5a5a {
		t.Fatalf("NextBlock = %v", block)
	}
}

func TestReaderSourceGivesUp(t *testing.T) {
	t.Parallel()

	reader := &flakyReader{failures: 5}
	source := otp.NewReaderSource(reader, 3)

	if _, err := source.NextBlock(); !errors.Is(err, otp.ErrEntropyUnavailable) {
		t.Fatalf("NextBlock error = %v, want ErrEntropyUnavailable", err)
	}

	if reader.calls != 3 {
		t.Fatalf("reader called %d times, want 3", reader.calls)
	}
}

func TestSystemSourceProducesDistinctBlocks(t *testing.T) {
	t.Parallel()

	source := otp.NewSystemSource()
	seen := make(map[otp.Block]struct{})

	for range 64 {
		block, err := source.NextBlock()
		if err != nil {
			t.Fatalf("NextBlock: %v", err)
		}

		seen[block] = struct{}{}
	}

	if len(seen) < 60 {
		t.Fatalf("only %d distinct blocks out of 64", len(seen))
	}
}
