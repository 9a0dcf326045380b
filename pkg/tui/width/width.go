// ABOUTME: VisibleWidth computes the cell width of strings with grapheme-aware segmentation
// ABOUTME: Bounded memo for non-ASCII strings; Widest and PadRight size tooltip and scrim rows

package width

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const memoLimit = 1024

// memo caches widths of non-ASCII strings. When it fills up it is dropped
// wholesale; overlay frames reuse the same few hundred lines, so a cold
// restart is rare and cheap.
type memo struct {
	mu    sync.RWMutex
	items map[string]int
	limit int
}

func newMemo(limit int) *memo {
	return &memo{items: make(map[string]int, limit), limit: limit}
}

func (m *memo) get(key string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.items[key]
	return w, ok
}

func (m *memo) put(key string, w int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) >= m.limit {
		m.items = make(map[string]int, m.limit)
	}
	m.items[key] = w
}

func (m *memo) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

var widths = newMemo(memoLimit)

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences count as zero; wide graphemes (CJK, emoji) count as two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widths.get(s); ok {
		return w
	}
	w := computeWidth(s)
	widths.put(s, w)
	return w
}

// Widest returns the largest VisibleWidth among lines.
func Widest(lines []string) int {
	max := 0
	for _, l := range lines {
		if w := VisibleWidth(l); w > max {
			max = w
		}
	}
	return max
}

// PadRight appends spaces to s until it is n cells wide.
// Strings already at least n cells wide are returned unchanged.
func PadRight(s string, n int) string {
	w := VisibleWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// isPlainASCII reports whether s is printable ASCII only (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func computeWidth(s string) int {
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// graphemeWidth returns the cell width of one grapheme cluster, measured by
// its leading rune.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
