// Package printer writes user facing output for the otp commands.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer routes progress to Out and problems to Err.
// Infof is silenced by Quiet, Debugf only prints when Verbose is set.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Quiet   bool
	Verbose bool

	failure *color.Color
	debug   *color.Color
}

// New returns a Printer writing to the process stdout and stderr.
func New(quiet, verbose bool) *Printer {
	return NewWithWriters(os.Stdout, os.Stderr, quiet, verbose)
}

// NewWithWriters returns a Printer writing to the given writers.
func NewWithWriters(out, err io.Writer, quiet, verbose bool) *Printer {
	return &Printer{
		Out:     out,
		Err:     err,
		Quiet:   quiet,
		Verbose: verbose,
		failure: color.New(color.FgRed, color.Bold),
		debug:   color.New(color.Faint),
	}
}

// Infof prints a progress line unless quiet.
func (p *Printer) Infof(format string, args ...any) {
	if p.Quiet {
		return
	}

	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Debugf prints a "debug:" line when verbose.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.Verbose {
		return
	}

	p.debug.Fprintf(p.Err, "debug: "+format+"\n", args...) //nolint:errcheck
}

// Errorf prints an error line, regardless of quiet.
func (p *Printer) Errorf(format string, args ...any) {
	p.failure.Fprint(p.Err, "Error ") //nolint:errcheck
	fmt.Fprintf(p.Err, format+"\n", args...)
}

// Plainf prints a line to Err without decoration, regardless of quiet.
func (p *Printer) Plainf(format string, args ...any) {
	fmt.Fprintf(p.Err, format+"\n", args...)
}
