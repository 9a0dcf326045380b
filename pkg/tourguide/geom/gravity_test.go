// ABOUTME: Tests for per-axis resolvers and gravity parsing
// ABOUTME: Covers axis independence, the exact centring formula, and parse errors

package geom

import (
	"errors"
	"testing"
)

func TestResolveX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    HAlign
		want int
	}{
		{name: "left aligns left edges", h: Left, want: 50},
		{name: "right aligns right edges", h: Right, want: 70},
		{name: "center", h: CenterH, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveX(tt.h, 50, 100, 80); got != tt.want {
				t.Errorf("ResolveX(%v, 50, 100, 80) = %d, want %d", tt.h, got, tt.want)
			}
		})
	}
}

func TestResolveY(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    VAlign
		want int
	}{
		{name: "top aligns top edges", v: Top, want: 200},
		{name: "bottom aligns bottom edges", v: Bottom, want: 210},
		{name: "center", v: CenterV, want: 205},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveY(tt.v, 200, 40, 30); got != tt.want {
				t.Errorf("ResolveY(%v, 200, 40, 30) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestResolve_AxisIndependence(t *testing.T) {
	t.Parallel()

	target := Rect{X: 13, Y: 7, W: 21, H: 5}
	sat := Size{W: 9, H: 3}
	hs := []HAlign{CenterH, Left, Right}
	vs := []VAlign{CenterV, Top, Bottom}

	for _, h := range hs {
		wantX := ResolveX(h, target.X, target.W, sat.W)
		for _, v := range vs {
			g := Gravity{H: h, V: v}
			if got := ResolveX(g.H, target.X, target.W, sat.W); got != wantX {
				t.Errorf("x for %v = %d, want %d (vertical flag leaked)", g, got, wantX)
			}
		}
	}
	for _, v := range vs {
		wantY := ResolveY(v, target.Y, target.H, sat.H)
		for _, h := range hs {
			g := Gravity{H: h, V: v}
			if got := ResolveY(g.V, target.Y, target.H, sat.H); got != wantY {
				t.Errorf("y for %v = %d, want %d (horizontal flag leaked)", g, got, wantY)
			}
		}
	}
}

func TestResolveX_CenteringFormula(t *testing.T) {
	t.Parallel()

	for targetX := -3; targetX <= 3; targetX++ {
		for targetW := 0; targetW <= 9; targetW++ {
			for satW := 0; satW <= 9; satW++ {
				want := targetX + targetW/2 - satW/2
				if got := ResolveX(CenterH, targetX, targetW, satW); got != want {
					t.Fatalf("ResolveX(center, %d, %d, %d) = %d, want %d", targetX, targetW, satW, got, want)
				}
			}
		}
	}
}

func TestParseGravity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Gravity
	}{
		{in: "", want: Center},
		{in: "center", want: Center},
		{in: "top|left", want: TopLeft},
		{in: "LEFT|TOP", want: TopLeft},
		{in: "bottom, right", want: BottomRight},
		{in: "bottom|center_horizontal", want: BottomCenter},
		{in: "top", want: TopCenter},
		{in: "end|center_vertical", want: Gravity{H: Right}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseGravity(tt.in)
			if err != nil {
				t.Fatalf("ParseGravity(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseGravity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseGravity_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"left|right", "top|bottom", "center|top", "diagonal"} {
		if _, err := ParseGravity(in); !errors.Is(err, ErrGravity) {
			t.Errorf("ParseGravity(%q) error = %v, want ErrGravity", in, err)
		}
	}
}

func TestGravity_TextRoundTrip(t *testing.T) {
	t.Parallel()

	var g Gravity
	if err := g.UnmarshalText([]byte("bottom|right")); err != nil {
		t.Fatal(err)
	}
	b, _ := g.MarshalText()
	if string(b) != "bottom|right" {
		t.Errorf("MarshalText = %q, want bottom|right", b)
	}
}
