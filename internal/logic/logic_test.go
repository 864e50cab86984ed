package logic_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/idelchi/otp/internal/config"
	"github.com/idelchi/otp/internal/logic"
	"github.com/idelchi/otp/internal/otp"
	"github.com/idelchi/otp/internal/printer"
)

func newConfig(files ...string) *config.Config {
	return &config.Config{
		Parallel: 2,
		MaxSize:  "2GiB",
		Suffixes: config.Suffixes{Encrypt: ".enc", Pad: ".otp"},
		Files:    files,
	}
}

func quiet() *printer.Printer {
	return printer.NewWithWriters(io.Discard, io.Discard, true, false)
}

func layout(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	for name, content := range map[string]string{
		"a.txt":        "alpha",
		"sub/b.txt":    "bravo bravo",
		"sub/skip.log": "log line",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))

		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func TestRunDirectoryRoundTrip(t *testing.T) {
	t.Parallel()

	root := layout(t)

	cfg := newConfig(root)
	cfg.Exclude = []string{"*.log"}
	cfg.Delete = true

	if err := logic.Run(cfg, quiet()); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	for _, name := range []string{"a.txt", "sub/b.txt"} {
		path := filepath.Join(root, filepath.FromSlash(name))

		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s still exists after encrypt with delete", name)
		}

		for _, ext := range []string{".enc", ".otp"} {
			if _, err := os.Stat(path + ext); err != nil {
				t.Fatalf("missing %s%s: %v", name, ext, err)
			}
		}
	}

	if _, err := os.Stat(filepath.Join(root, "sub", "skip.log.enc")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("excluded file was encrypted")
	}

	check := newConfig(root)
	if err := logic.RunCheck(check, quiet()); err != nil {
		t.Fatalf("check: %v", err)
	}

	cfg = newConfig(root)
	cfg.Decrypt = true

	if err := logic.Run(cfg, quiet()); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "sub", "b.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "bravo bravo" {
		t.Fatalf("decrypted = %q", got)
	}
}

func TestRunSecondEncryptSkipsOutputs(t *testing.T) {
	t.Parallel()

	root := layout(t)

	if err := logic.Run(newConfig(filepath.Join(root, "a.txt")), quiet()); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	cfg := newConfig(root)
	cfg.Dry = true

	if err := logic.Run(cfg, quiet()); err != nil {
		t.Fatalf("dry run: %v", err)
	}

	for _, file := range cfg.Files {
		if strings.HasSuffix(file, ".enc") || strings.HasSuffix(file, ".otp") {
			t.Fatalf("output %q selected for encryption", file)
		}
	}

	if len(cfg.Files) != 3 {
		t.Fatalf("selected %v, want 3 files", cfg.Files)
	}
}

func TestRunOverrideNeedsSingleFile(t *testing.T) {
	t.Parallel()

	root := layout(t)

	cfg := newConfig(root)
	cfg.Pad = filepath.Join(root, "pad.bin")

	if err := logic.Run(cfg, quiet()); !errors.Is(err, config.ErrSingleFileOnly) {
		t.Fatalf("Run error = %v, want ErrSingleFileOnly", err)
	}
}

// stuckSource never yields entropy.
type stuckSource struct{}

func (stuckSource) NextBlock() (otp.Block, error) {
	return otp.Block{}, otp.ErrEntropyUnavailable
}

func TestRunEntropyFailure(t *testing.T) {
	t.Parallel()

	root := layout(t)
	plain := filepath.Join(root, "a.txt")

	err := logic.RunWithSource(newConfig(plain), stuckSource{}, quiet())
	if !errors.Is(err, otp.ErrEntropyUnavailable) {
		t.Fatalf("Run error = %v, want ErrEntropyUnavailable", err)
	}

	if _, err := os.Stat(plain + ".otp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("pad written despite entropy failure")
	}
}

func TestRunVerboseReportsPatterns(t *testing.T) {
	color.NoColor = true

	root := layout(t)

	cfg := newConfig(root)
	cfg.Dry = true
	cfg.Exclude = []string{"*.log"}

	var stderr bytes.Buffer

	if err := logic.Run(cfg, printer.NewWithWriters(io.Discard, &stderr, true, true)); err != nil {
		t.Fatalf("dry run: %v", err)
	}

	// *.log plus the cipher text and pad suffixes
	want := "debug: selecting files with 0 include and 3 exclude patterns"
	if !strings.Contains(stderr.String(), want) {
		t.Fatalf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestRunCheckReportsMismatch(t *testing.T) {
	color.NoColor = true

	root := t.TempDir()

	for name, size := range map[string]int{"good.enc": 8, "good.otp": 8, "bad.enc": 10, "bad.otp": 12} {
		if err := os.WriteFile(filepath.Join(root, name), bytes.Repeat([]byte{1}, size), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var stdout, stderr bytes.Buffer

	err := logic.RunCheck(newConfig(root), printer.NewWithWriters(&stdout, &stderr, false, false))
	if !errors.Is(err, otp.ErrSizeMismatch) {
		t.Fatalf("RunCheck error = %v, want ErrSizeMismatch", err)
	}

	if !strings.Contains(stdout.String(), "good.enc") || !strings.Contains(stderr.String(), "bad.enc") {
		t.Fatalf("stdout = %q, stderr = %q", stdout.String(), stderr.String())
	}
}
