// ABOUTME: Tests for COLORFGBG interpretation
// ABOUTME: Dark is the default; only light ANSI backgrounds flip it

package termfix

import "testing"

func TestDarkBackground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "", want: true},
		{in: "15;0", want: true},
		{in: "0;15", want: false},
		{in: "0;default;7", want: false},
		{in: "7;8", want: true},
		{in: "garbage", want: true},
	}
	for _, tt := range tests {
		if got := DarkBackground(tt.in); got != tt.want {
			t.Errorf("DarkBackground(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
