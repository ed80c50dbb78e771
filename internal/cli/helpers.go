package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Output streams, swapped in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// Confirm asks a yes/no question on stdin
func Confirm(prompt string, defaultYes bool) (bool, error) {
	return confirm(os.Stdin, prompt, defaultYes)
}

func confirm(in io.Reader, prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Fprint(stdout, prompt+suffix)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// message is one line of launcher output: a symbol when color is on, a
// plain tag otherwise
type message struct {
	symbol string
	tag    string
	w      *io.Writer
	quiet  bool // suppressed by --quiet
}

var (
	successLine = message{symbol: "✓", tag: "OK", w: &stdout, quiet: true}
	infoLine    = message{symbol: "ℹ", tag: "INFO", w: &stdout, quiet: true}
	warningLine = message{symbol: "⚠", tag: "WARNING", w: &stderr}
	errorLine   = message{symbol: "✗", tag: "ERROR", w: &stderr}
)

func (m message) print(format string, args ...interface{}) {
	if m.quiet && quiet {
		return
	}
	prefix := m.symbol
	if noColor {
		prefix = m.tag + ":"
	}
	fmt.Fprintf(*m.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) { successLine.print(format, args...) }

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) { infoLine.print(format, args...) }

// PrintWarning prints a warning to stderr, even in quiet mode
func PrintWarning(format string, args ...interface{}) { warningLine.print(format, args...) }

// PrintError prints an error to stderr
func PrintError(format string, args ...interface{}) { errorLine.print(format, args...) }
