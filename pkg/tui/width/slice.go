// ABOUTME: Column-based slicing of styled text and segment extraction for compositing
// ABOUTME: Segments splits a line into visible graphemes and escape sequences with column offsets

package width

import "github.com/rivo/uniseg"

// Segment is either one visible grapheme cluster or one escape sequence.
type Segment struct {
	Text  string
	Col   int // starting column; for escape sequences the column they precede
	Width int
	IsSeq bool
}

// Segments breaks s into grapheme and escape-sequence segments in order.
func Segments(s string) []Segment {
	var segs []Segment
	col := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			segs = append(segs, Segment{Text: s[i:end], Col: col, IsSeq: true})
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		segs = append(segs, Segment{Text: cluster, Col: col, Width: w})
		col += w
		i += len(s[i:]) - len(rest)
	}
	return segs
}

// SliceByColumn returns the graphemes of s lying entirely inside columns
// [start, end). Every escape sequence up to the end of the range is kept so
// the slice renders with the styling it had in s, including sequences
// sitting exactly at end. A wide grapheme that
// straddles either boundary is dropped.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	var out []byte
	for _, seg := range Segments(s) {
		if seg.IsSeq {
			if seg.Col <= end {
				out = append(out, seg.Text...)
			}
			continue
		}
		if seg.Col >= start && seg.Col+seg.Width <= end {
			out = append(out, seg.Text...)
		}
	}
	return string(out)
}

// SplitAtColumn splits plain text s so that head is at most col cells
// wide. A leading grapheme wider than col is still taken so callers that
// loop on the tail always make progress.
func SplitAtColumn(s string, col int) (head, tail string) {
	w := 0
	i := 0
	for i < len(s) {
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if w+cw > col && i > 0 {
			break
		}
		w += cw
		i += len(s[i:]) - len(rest)
	}
	return s[:i], s[i:]
}
