// ABOUTME: Zero-width zone markers that let a host locate named regions in rendered text
// ABOUTME: Mark wraps content in APC start/end markers; Scan strips them and returns cell bounds

package zone

import (
	"strings"

	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

// Marker prefixes. Both are APC sequences terminated by ST, which
// terminals ignore and both width.VisibleWidth and lipgloss count as zero
// columns. A BEL terminator would leave lipgloss's parser inside the APC
// string, swallowing the text that follows.
const (
	startPrefix = "\x1b_tg:s:"
	endPrefix   = "\x1b_tg:e:"
	terminator  = "\x1b\\"
)

// Rect is the cell-space bounding box of a zone in the scanned text.
type Rect struct {
	X, Y, W, H int
}

// Mark wraps s so that Scan can report where it was drawn. Each line of
// s is marked on its own, so a block joined beside other content still
// reports only its own columns.
// Control characters in id are dropped so they cannot end the marker early.
func Mark(id, s string) string {
	id = sanitize(id)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = startPrefix + id + terminator + l + endPrefix + id + terminator
	}
	return strings.Join(lines, "\n")
}

func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, id)
}

// open tracks a zone whose start marker has been seen.
type open struct {
	x, y int
}

// Scan removes all zone markers from s and returns the cleaned text along
// with the bounds of every complete zone. A zone whose end marker is
// missing is discarded. Zones marked on several rows, or several times,
// report the union of their pieces.
func Scan(s string) (string, map[string]Rect) {
	lines, zones := ScanLines(strings.Split(s, "\n"))
	return strings.Join(lines, "\n"), zones
}

// ScanLines is Scan for text already split into rows.
//
// A start and end marker on different rows, as left by content that was
// wrapped after marking, covers the columns between the two markers on
// every row in between.
func ScanLines(lines []string) ([]string, map[string]Rect) {
	zones := make(map[string]Rect)
	pending := make(map[string]open)
	out := make([]string, len(lines))

	for row, line := range lines {
		if !strings.Contains(line, startPrefix) && !strings.Contains(line, endPrefix) {
			out[row] = line
			continue
		}

		var b strings.Builder
		for _, seg := range width.Segments(line) {
			if !seg.IsSeq {
				b.WriteString(seg.Text)
				continue
			}
			switch {
			case strings.HasPrefix(seg.Text, startPrefix):
				id := markerID(seg.Text, startPrefix)
				pending[id] = open{x: seg.Col, y: row}
			case strings.HasPrefix(seg.Text, endPrefix):
				id := markerID(seg.Text, endPrefix)
				o, ok := pending[id]
				if !ok {
					continue
				}
				delete(pending, id)
				left, right := min(o.x, seg.Col), max(o.x, seg.Col)
				add(zones, id, Rect{X: left, Y: o.y, W: right - left, H: row - o.y + 1})
			default:
				b.WriteString(seg.Text)
			}
		}
		out[row] = b.String()
	}
	return out, zones
}

// add merges r into the zone id.
func add(zones map[string]Rect, id string, r Rect) {
	prev, ok := zones[id]
	if !ok {
		zones[id] = r
		return
	}
	x, y := min(prev.X, r.X), min(prev.Y, r.Y)
	right := max(prev.X+prev.W, r.X+r.W)
	bottom := max(prev.Y+prev.H, r.Y+r.H)
	zones[id] = Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

func markerID(seq, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(seq, prefix), terminator)
}
