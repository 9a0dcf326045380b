// ABOUTME: Tests for column slicing, segment extraction, and column splitting
// ABOUTME: Wide graphemes straddling a boundary must never overflow the range

package width

import "testing"

func TestSliceByColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{name: "middle", input: "abcdef", start: 1, end: 4, want: "bcd"},
		{name: "empty range", input: "abc", start: 2, end: 2, want: ""},
		{name: "keeps style", input: "\x1b[31mabc\x1b[0m", start: 1, end: 3, want: "\x1b[31mbc\x1b[0m"},
		{name: "drops straddling wide", input: "a你b", start: 0, end: 2, want: "a"},
		{name: "past end", input: "ab", start: 1, end: 10, want: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SliceByColumn(tt.input, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("SliceByColumn(%q, %d, %d) = %q, want %q", tt.input, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSegments_Columns(t *testing.T) {
	t.Parallel()

	segs := Segments("a\x1b[1m你b")
	if len(segs) != 4 {
		t.Fatalf("len(Segments) = %d, want 4", len(segs))
	}
	if !segs[1].IsSeq || segs[1].Col != 1 {
		t.Errorf("segs[1] = %+v, want escape at col 1", segs[1])
	}
	if segs[3].Col != 3 {
		t.Errorf("segs[3].Col = %d, want 3", segs[3].Col)
	}
}

func TestSplitAtColumn(t *testing.T) {
	t.Parallel()

	head, tail := SplitAtColumn("abcdef", 4)
	if head != "abcd" || tail != "ef" {
		t.Errorf("SplitAtColumn = (%q, %q), want (abcd, ef)", head, tail)
	}

	// A wide grapheme wider than the budget is still consumed.
	head, tail = SplitAtColumn("你好", 1)
	if head != "你" || tail != "好" {
		t.Errorf("SplitAtColumn wide = (%q, %q), want (你, 好)", head, tail)
	}
}
