// ABOUTME: Word wrapping at Unicode line-break opportunities and ellipsis truncation
// ABOUTME: Text is NFC-normalised first so measured widths match what the terminal draws

package width

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Wrap breaks plain text into lines of at most maxWidth cells. Lines break
// at word boundaries; words wider than maxWidth are split by grapheme.
// Explicit newlines are kept and empty paragraphs yield empty lines.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	s = norm.NFC.String(strings.ReplaceAll(s, "\r\n", "\n"))
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(p string, maxWidth int) []string {
	if p == "" {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, strings.TrimRight(cur.String(), " "))
		cur.Reset()
		curW = 0
	}

	state := -1
	rest := p
	for len(rest) > 0 {
		var seg string
		seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		word := strings.TrimRight(seg, " ")
		trailing := seg[len(word):]
		wordW := VisibleWidth(word)

		if curW > 0 && curW+wordW > maxWidth {
			flush()
		}
		for wordW > maxWidth {
			head, tail := SplitAtColumn(word, maxWidth)
			if curW > 0 {
				flush()
			}
			lines = append(lines, head)
			word = tail
			wordW = VisibleWidth(word)
		}
		cur.WriteString(word)
		cur.WriteString(trailing)
		curW += wordW + len(trailing)
	}
	if cur.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// TruncateToWidth cuts s to at most maxWidth cells, replacing the last
// visible cell with an ellipsis when anything was removed.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return SliceByColumn(s, 0, maxWidth-1) + "\x1b[0m…"
}
