package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/idelchi/otp/internal/printer"
)

func TestPrinterLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		wantOut string
		wantErr []string
		skipErr []string
	}{
		{
			name:    "default",
			wantOut: "processed a\n",
			wantErr: []string{"Error broken b"},
			skipErr: []string{"debug:"},
		},
		{
			name:    "quiet",
			quiet:   true,
			wantOut: "",
			wantErr: []string{"Error broken b"},
		},
		{
			name:    "verbose",
			verbose: true,
			wantOut: "processed a\n",
			wantErr: []string{"debug: opened a", "Error broken b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			p := printer.NewWithWriters(&out, &errOut, tc.quiet, tc.verbose)
			p.Infof("processed %s", "a")
			p.Debugf("opened %s", "a")
			p.Errorf("broken %s", "b")

			if out.String() != tc.wantOut {
				t.Fatalf("stdout = %q, want %q", out.String(), tc.wantOut)
			}

			for _, want := range tc.wantErr {
				if !strings.Contains(errOut.String(), want) {
					t.Fatalf("stderr = %q, missing %q", errOut.String(), want)
				}
			}

			for _, skip := range tc.skipErr {
				if strings.Contains(errOut.String(), skip) {
					t.Fatalf("stderr = %q, unexpected %q", errOut.String(), skip)
				}
			}
		})
	}
}
