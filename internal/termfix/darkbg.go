// ABOUTME: Pre-sets the lipgloss background mode before Bubble Tea's init() sends OSC queries
// ABOUTME: Reads COLORFGBG when present so light terminals still get the light scrim

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Setting the background explicitly makes lipgloss skip its OSC 10/11
	// query, whose late reply would otherwise leak into the input stream.
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(DarkBackground(os.Getenv("COLORFGBG")))
}

// DarkBackground interprets a COLORFGBG value ("fg;bg" or
// "fg;default;bg"). Unknown or empty values count as dark.
func DarkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return true
	}
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	// ANSI 7 (light grey) and 9-15 (bright colours) are light backgrounds
	return !(bg == 7 || bg >= 9 && bg <= 15)
}
