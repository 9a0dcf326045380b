// ABOUTME: Tests for ANSI stripping and SGR state tracking
// ABOUTME: Covers CSI, OSC, APC, and reset handling

package width

import "testing"

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no ansi", input: "plain text", want: "plain text"},
		{name: "sgr color", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "osc", input: "\x1b]0;title\x07text", want: "text"},
		{name: "apc", input: "\x1b_tg:s:x\x07in", want: "in"},
		{name: "apc st", input: "\x1b_tg:s:x\x1b\\in", want: "in"},
		{name: "cursor", input: "\x1b[10;20Hhere", want: "here"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestActiveSGR(t *testing.T) {
	t.Parallel()

	var sgr ActiveSGR
	sgr.Apply("\x1b[31m")
	sgr.Apply("\x1b[2J") // not SGR, ignored
	sgr.Apply("\x1b[1m")

	if got := sgr.String(); got != "\x1b[31m\x1b[1m" {
		t.Errorf("String() = %q, want %q", got, "\x1b[31m\x1b[1m")
	}

	sgr.Apply("\x1b[0m")
	if got := sgr.String(); got != "" {
		t.Errorf("after reset, String() = %q, want empty", got)
	}
}
