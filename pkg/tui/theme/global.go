// ABOUTME: Lock-free global theme pointer using atomic.Pointer
// ABOUTME: Current() returns the active theme; Set() swaps it atomically

package theme

import "sync/atomic"

var current atomic.Pointer[Theme]

func init() {
	current.Store(Builtin("default"))
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme. A nil theme restores the default.
func Set(t *Theme) {
	if t == nil {
		t = Builtin("default")
	}
	current.Store(t)
}
