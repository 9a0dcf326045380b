// ABOUTME: Tests for hole shapes and the overlay layer's drawing and hit-testing
// ABOUTME: Rectangle, rounded, circle, and NoHole differ visually but share the hit rectangle

package tourguide

import (
	"strings"
	"testing"

	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

func TestShapeContains(t *testing.T) {
	t.Parallel()

	r := geom.Rect{X: 10, Y: 5, W: 6, H: 3}
	tests := []struct {
		name  string
		style Style
		p     geom.Point
		want  bool
	}{
		{name: "rect inside", style: Rectangle, p: geom.Point{X: 10, Y: 5}, want: true},
		{name: "rect right edge exclusive", style: Rectangle, p: geom.Point{X: 16, Y: 5}},
		{name: "rounded corner", style: RoundedRectangle, p: geom.Point{X: 10, Y: 5}},
		{name: "rounded edge", style: RoundedRectangle, p: geom.Point{X: 11, Y: 5}, want: true},
		{name: "circle centre", style: Circle, p: geom.Point{X: 13, Y: 6}, want: true},
		{name: "circle covers rect corner", style: Circle, p: geom.Point{X: 10, Y: 5}, want: true},
		{name: "circle far away", style: Circle, p: geom.Point{X: 30, Y: 6}},
		{name: "no hole", style: NoHole, p: geom.Point{X: 13, Y: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := shapeContains(tt.style, r, tt.p); got != tt.want {
				t.Errorf("shapeContains(%v, %v) = %v, want %v", tt.style, tt.p, got, tt.want)
			}
		})
	}
}

func TestShapeContains_EmptyRect(t *testing.T) {
	t.Parallel()

	for _, s := range []Style{Rectangle, RoundedRectangle, Circle} {
		if shapeContains(s, geom.Rect{X: 1, Y: 1}, geom.Point{X: 1, Y: 1}) {
			t.Errorf("%v: empty rect contains its origin", s)
		}
	}
}

func TestOverlayLayer_NoHoleStillHitTests(t *testing.T) {
	t.Parallel()

	cfg := Config{Overlay: NewOverlay().SetStyle(NoHole)}
	l := Layout{Hole: geom.Rect{X: 2, Y: 2, W: 4, H: 1}}
	o := newOverlayLayer(cfg, l, geom.Size{W: 20, H: 10}, theme.DefaultPalette())

	if !o.InHole(geom.Point{X: 3, Y: 2}) {
		t.Error("InHole = false inside the target with NoHole")
	}
	if o.visible(geom.Point{X: 3, Y: 2}) {
		t.Error("visible = true with NoHole")
	}
}

func TestOverlayLayer_FinishButton(t *testing.T) {
	t.Parallel()

	clicked := 0
	cfg := Config{Overlay: NewOverlay().SetFinishButton("Done", func() { clicked++ })}
	o := newOverlayLayer(cfg, Layout{Hole: geom.Rect{X: 0, Y: 0, W: 2, H: 1}}, geom.Size{W: 20, H: 10}, theme.DefaultPalette())

	box, ok := o.FinishButtonBounds()
	if !ok {
		t.Fatal("FinishButtonBounds reported no button")
	}
	if box.Y != 8 || box.X != (20-box.W)/2 {
		t.Errorf("button box = %v", box)
	}

	c := canvas.New(nil, 20, 10)
	o.Draw(c)
	if !strings.Contains(width.StripANSI(c.Lines()[8]), "Done") {
		t.Errorf("row 8 = %q, want the button label", width.StripANSI(c.Lines()[8]))
	}

	press := MouseEvent{X: box.X, Y: box.Y, Action: MousePress, Button: ButtonLeft}
	release := press
	release.Action = MouseRelease
	if !o.HandleMouse(press) || !o.HandleMouse(release) {
		t.Error("button taps should be consumed")
	}
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestOverlayLayer_FadeIn(t *testing.T) {
	t.Parallel()

	cfg := Config{Overlay: NewOverlay()}
	o := newOverlayLayer(cfg, Layout{}, geom.Size{W: 4, H: 2}, theme.DefaultPalette())

	if !o.Animating() {
		t.Fatal("Animating = false before the first draw")
	}
	c := canvas.New(nil, 4, 2)
	for f := 5; f < 5+fadeFrames; f++ {
		c.Frame = f
		o.Draw(c)
	}
	if o.Animating() {
		t.Error("Animating = true after the fade completed")
	}

	still := newOverlayLayer(Config{Overlay: NewOverlay().SetEnterAnimation(NoAnimation)}, Layout{}, geom.Size{W: 4, H: 2}, theme.DefaultPalette())
	if still.Animating() {
		t.Error("Animating = true without an enter animation")
	}
}

func TestOverlayLayer_DrawShadesAroundHole(t *testing.T) {
	t.Parallel()

	cfg := Config{Overlay: NewOverlay().SetEnterAnimation(NoAnimation)}
	o := newOverlayLayer(cfg, Layout{Hole: geom.Rect{X: 2, Y: 0, W: 2, H: 1}}, geom.Size{W: 6, H: 2}, theme.DefaultPalette())

	c := canvas.New([]string{"abcdef", "ghijkl"}, 6, 2)
	o.Draw(c)
	lines := c.Lines()

	tests := []struct {
		name string
		got  bool
	}{
		{name: "text survives shading", got: width.StripANSI(lines[0]) == "abcdef" && width.StripANSI(lines[1]) == "ghijkl"},
		{name: "hole cells stay contiguous", got: strings.Contains(lines[0], "cd")},
		{name: "cells left of the hole are shaded", got: strings.HasPrefix(lines[0], "\x1b[0m")},
		{name: "row without hole is shaded", got: strings.Contains(lines[1], "\x1b[0m")},
	}
	for _, tt := range tests {
		if !tt.got {
			t.Errorf("%s: rows = %q", tt.name, lines)
		}
	}
}
