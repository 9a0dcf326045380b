// ABOUTME: ANSI escape sequence stripping and SGR state tracking
// ABOUTME: ActiveSGR lets compositing restore a line's styling after a spliced-in run

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence returns the index just past the escape sequence that
// starts at s[i]. CSI, OSC (BEL or ST terminated), APC and two-byte ESC
// sequences are recognised.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']', '_':
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(', ')':
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	default:
		return i + 1
	}
}

// isSGR reports whether seq is a Select Graphic Rendition sequence.
func isSGR(seq string) bool {
	return len(seq) >= 3 && seq[1] == '[' && seq[len(seq)-1] == 'm'
}

// ActiveSGR accumulates the SGR sequences in effect at some point of a line.
type ActiveSGR struct {
	codes []string
}

// Reset clears all SGR state.
func (a *ActiveSGR) Reset() {
	a.codes = a.codes[:0]
}

// Apply folds seq into the state. Non-SGR sequences are ignored and a
// reset sequence clears everything accumulated so far.
func (a *ActiveSGR) Apply(seq string) {
	if !isSGR(seq) {
		return
	}
	if seq == "\x1b[0m" || seq == "\x1b[m" {
		a.Reset()
		return
	}
	a.codes = append(a.codes, seq)
}

// String returns the sequences that re-establish the current state.
func (a *ActiveSGR) String() string {
	return strings.Join(a.codes, "")
}
