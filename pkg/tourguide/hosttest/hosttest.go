// ABOUTME: In-memory tourguide.Host for tests: fixed targets, explicit layout passes, recorded layers
// ABOUTME: Layout draws every mounted layer onto a blank canvas then fires listeners like a real host

// Package hosttest provides a scriptable tourguide.Host.
package hosttest

import (
	"slices"

	"github.com/mauromedda/tourguide-go/pkg/tourguide"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
)

// MaxPasses bounds the passes one Layout call runs.
const MaxPasses = 4

type mounted struct {
	space tourguide.Space
	layer tourguide.Layer
}

type listener struct {
	id tourguide.ListenerID
	fn func()
}

// Host is a fake host. Zero values are not usable; call New.
type Host struct {
	Origin  geom.Point
	Size    geom.Size
	Dens    float64
	targets map[string]geom.Rect

	layers    []mounted
	listeners []listener
	nextID    tourguide.ListenerID

	dispatching bool
	relayout    bool

	// Frame is the animation frame handed to layers.
	Frame int
	// Passes counts layout passes run so far.
	Passes int
	// Requests counts RequestLayout calls.
	Requests int

	last *canvas.Canvas
}

var _ tourguide.Host = (*Host)(nil)

// New returns a w x h host with density 1 and no content offset.
func New(w, h int) *Host {
	return &Host{
		Size:    geom.Size{W: w, H: h},
		Dens:    1,
		targets: make(map[string]geom.Rect),
	}
}

// SetTarget places target at screen bounds r. Its window bounds are r
// shifted by the content origin.
func (h *Host) SetTarget(id string, r geom.Rect) {
	h.targets[id] = r
}

// RemoveTarget detaches target.
func (h *Host) RemoveTarget(id string) {
	delete(h.targets, id)
}

func (h *Host) IsAttached(target string) bool {
	_, ok := h.targets[target]
	return ok
}

func (h *Host) TargetBounds(target string) (geom.Rect, bool) {
	r, ok := h.targets[target]
	return r, ok
}

func (h *Host) TargetWindowBounds(target string) (geom.Rect, bool) {
	r, ok := h.targets[target]
	return r.Offset(-h.Origin.X, -h.Origin.Y), ok
}

func (h *Host) ContentOrigin() geom.Point { return h.Origin }

func (h *Host) Viewport() geom.Size { return h.Size }

func (h *Host) Density() float64 { return h.Dens }

func (h *Host) AddLayoutListener(fn func()) tourguide.ListenerID {
	h.nextID++
	h.listeners = append(h.listeners, listener{id: h.nextID, fn: fn})
	return h.nextID
}

func (h *Host) RemoveLayoutListener(id tourguide.ListenerID) {
	h.listeners = slices.DeleteFunc(h.listeners, func(l listener) bool { return l.id == id })
}

func (h *Host) Mount(space tourguide.Space, l tourguide.Layer) {
	h.layers = append(h.layers, mounted{space: space, layer: l})
	if h.dispatching {
		h.relayout = true
	}
}

func (h *Host) Unmount(l tourguide.Layer) {
	h.layers = slices.DeleteFunc(h.layers, func(m mounted) bool { return m.layer == l })
	if h.dispatching {
		h.relayout = true
	}
}

func (h *Host) RequestLayout() {
	h.Requests++
	if h.dispatching {
		h.relayout = true
	}
}

// Listeners returns the number of registered layout listeners.
func (h *Host) Listeners() int { return len(h.listeners) }

// Layers returns the mounted layers, bottom first.
func (h *Host) Layers() []tourguide.Layer {
	out := make([]tourguide.Layer, len(h.layers))
	for i, m := range h.layers {
		out[i] = m.layer
	}
	return out
}

// SpaceOf returns the space l was mounted in.
func (h *Host) SpaceOf(l tourguide.Layer) (tourguide.Space, bool) {
	for _, m := range h.layers {
		if m.layer == l {
			return m.space, true
		}
	}
	return 0, false
}

// Layout runs layout passes until no layer asks for another, up to
// MaxPasses.
func (h *Host) Layout() {
	for range MaxPasses {
		h.relayout = false
		h.pass()
		if !h.relayout {
			return
		}
	}
}

// pass draws every layer, content space first, then fires the listeners
// registered before the pass began.
func (h *Host) pass() {
	h.Passes++
	c := canvas.New(nil, h.Size.W, h.Size.H)
	c.Frame = h.Frame
	content := c.Translate(h.Origin.X, h.Origin.Y)
	for _, m := range h.ordered() {
		if m.space == tourguide.Content {
			m.layer.Draw(content)
		} else {
			m.layer.Draw(c)
		}
	}
	h.last = c

	h.dispatching = true
	defer func() { h.dispatching = false }()
	for _, l := range slices.Clone(h.listeners) {
		if !h.registered(l.id) {
			continue
		}
		l.fn()
	}
}

func (h *Host) registered(id tourguide.ListenerID) bool {
	return slices.ContainsFunc(h.listeners, func(l listener) bool { return l.id == id })
}

// ordered returns content layers then root layers, each in mount order.
func (h *Host) ordered() []mounted {
	out := make([]mounted, 0, len(h.layers))
	for _, m := range h.layers {
		if m.space == tourguide.Content {
			out = append(out, m)
		}
	}
	for _, m := range h.layers {
		if m.space == tourguide.Root {
			out = append(out, m)
		}
	}
	return out
}

// Mouse delivers a screen-space event top-most layer first and reports
// whether a layer consumed it.
func (h *Host) Mouse(ev tourguide.MouseEvent) bool {
	order := h.ordered()
	for i := len(order) - 1; i >= 0; i-- {
		m := order[i]
		e := ev
		if m.space == tourguide.Content {
			e.X -= h.Origin.X
			e.Y -= h.Origin.Y
		}
		if m.layer.HandleMouse(e) {
			return true
		}
	}
	return false
}

// Tap sends a left press and release at a screen cell and reports
// whether the press was consumed.
func (h *Host) Tap(x, y int) bool {
	consumed := h.Mouse(tourguide.MouseEvent{X: x, Y: y, Action: tourguide.MousePress, Button: tourguide.ButtonLeft})
	h.Mouse(tourguide.MouseEvent{X: x, Y: y, Action: tourguide.MouseRelease, Button: tourguide.ButtonLeft})
	return consumed
}

// Canvas returns the canvas drawn by the last pass, or nil.
func (h *Host) Canvas() *canvas.Canvas { return h.last }
