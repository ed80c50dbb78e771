package cli

import (
	"bytes"
	"testing"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
		SetGlobalFlags(false, false, false)
	})
	return &out, &errOut
}

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name       string
		quiet      bool
		noColor    bool
		wantStdout string
		wantStderr string
	}{
		{
			name:       "symbols",
			wantStdout: "✓ saved\nℹ note\n",
			wantStderr: "⚠ careful\n✗ broken\n",
		},
		{
			name:       "no color",
			noColor:    true,
			wantStdout: "OK: saved\nINFO: note\n",
			wantStderr: "WARNING: careful\nERROR: broken\n",
		},
		{
			name:       "quiet keeps warnings and errors",
			quiet:      true,
			wantStdout: "",
			wantStderr: "⚠ careful\n✗ broken\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := captureOutput(t)
			SetGlobalFlags(tt.quiet, tt.noColor, false)

			PrintSuccess("saved")
			PrintInfo("note")
			PrintWarning("careful")
			PrintError("%s", "broken")

			if out.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantStdout)
			}
			if errOut.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.wantStderr)
			}
		})
	}
}
