// ABOUTME: Bubble Tea host for tourguide: wraps an application model and composites guide layers over it
// ABOUTME: Targets are zone-marked regions of the app's View; layout passes run synchronously inside Update

// Package teahost runs tourguide guides on top of a Bubble Tea program.
package teahost

import (
	"slices"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/tourguide-go/pkg/tourguide"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/canvas"
	"github.com/mauromedda/tourguide-go/pkg/tui/fuzzy"
	"github.com/mauromedda/tourguide-go/pkg/tui/zone"
)

const (
	// DefaultDensity turns the 10-unit tooltip overlap into one cell.
	DefaultDensity = 0.1
	// DefaultFrameInterval paces pointer and fade animations.
	DefaultFrameInterval = 120 * time.Millisecond
	// maxLayoutPasses bounds the passes a single Update may run.
	maxLayoutPasses = 4
)

// tickMsg advances the animation frame.
type tickMsg struct{}

// postedMsg wraps messages queued with Post.
type postedMsg struct{ msg tea.Msg }

type mounted struct {
	space tourguide.Space
	layer tourguide.Layer
}

type listener struct {
	id tourguide.ListenerID
	fn func()
}

// Option configures a Host.
type Option func(*Host)

// WithHeader renders a status line above the application. Its height
// becomes the content origin.
func WithHeader(fn func(width int) string) Option {
	return func(h *Host) { h.header = fn }
}

// WithDensity sets cells per density-independent unit.
func WithDensity(d float64) Option {
	return func(h *Host) {
		if d > 0 {
			h.density = d
		}
	}
}

// WithFrameInterval sets the animation tick interval.
func WithFrameInterval(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.interval = d
		}
	}
}

// Host wraps an application model. It is itself a tea.Model and
// implements tourguide.Host. Use it through its pointer.
type Host struct {
	app      tea.Model
	header   func(width int) string
	density  float64
	interval time.Duration

	width, height int
	headerHeight  int
	zones         map[string]zone.Rect // content space

	layers    []mounted
	listeners []listener
	nextID    tourguide.ListenerID

	dispatching bool
	relayout    bool

	frame   int
	ticking bool
	posted  []tea.Msg
	view    string
}

var (
	_ tourguide.Host = (*Host)(nil)
	_ tea.Model      = (*Host)(nil)
)

// New wraps app.
func New(app tea.Model, opts ...Option) *Host {
	h := &Host{
		app:      app,
		density:  DefaultDensity,
		interval: DefaultFrameInterval,
		zones:    make(map[string]zone.Rect),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// App returns the current application model.
func (h *Host) App() tea.Model { return h.app }

// Post queues msg for the application. Layer handlers use it to talk to
// the app, since they run outside the app's Update.
func (h *Host) Post(msg tea.Msg) {
	h.posted = append(h.posted, msg)
}

// Init initialises the application.
func (h *Host) Init() tea.Cmd {
	return h.app.Init()
}

// Update routes msg, runs the layout passes, and schedules animation.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.headerHeight = len(h.headerLines())
		cmds = append(cmds, h.updateApp(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-h.headerHeight, 0),
		}))

	case tea.MouseMsg:
		if !h.dispatchMouse(msg) {
			msg.Y -= h.headerHeight
			cmds = append(cmds, h.updateApp(msg))
		}

	case tickMsg:
		h.ticking = false
		h.frame++

	case postedMsg:
		cmds = append(cmds, h.updateApp(msg.msg))

	default:
		cmds = append(cmds, h.updateApp(msg))
	}

	h.Layout()

	for _, m := range h.posted {
		cmds = append(cmds, post(m))
	}
	h.posted = nil
	if !h.ticking && h.animating() {
		h.ticking = true
		cmds = append(cmds, tea.Tick(h.interval, func(time.Time) tea.Msg { return tickMsg{} }))
	}
	return h, tea.Batch(cmds...)
}

func post(m tea.Msg) tea.Cmd {
	return func() tea.Msg { return postedMsg{msg: m} }
}

func (h *Host) updateApp(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.app, cmd = h.app.Update(msg)
	return cmd
}

// View returns the last composited frame.
func (h *Host) View() string {
	if h.width == 0 || h.height == 0 {
		return h.app.View()
	}
	return h.view
}

func (h *Host) animating() bool {
	for _, m := range h.layers {
		if a, ok := m.layer.(tourguide.Animator); ok && a.Animating() {
			return true
		}
	}
	return false
}

func (h *Host) headerLines() []string {
	if h.header == nil {
		return nil
	}
	s := h.header(h.width)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Layout renders the application, composites the layers, and fires
// layout listeners, repeating while listeners change what is mounted.
func (h *Host) Layout() {
	if h.width == 0 || h.height == 0 {
		return
	}
	for range maxLayoutPasses {
		h.relayout = false
		h.pass()
		if !h.relayout {
			return
		}
	}
}

func (h *Host) pass() {
	head := h.headerLines()
	h.headerHeight = len(head)

	content, zones := zone.ScanLines(strings.Split(h.app.View(), "\n"))
	h.zones = zones

	lines := make([]string, 0, len(head)+len(content))
	lines = append(lines, head...)
	lines = append(lines, content...)

	c := canvas.New(lines, h.width, h.height)
	c.Frame = h.frame
	inner := c.Translate(0, h.headerHeight)
	for _, m := range h.ordered() {
		if m.space == tourguide.Content {
			m.layer.Draw(inner)
		} else {
			m.layer.Draw(c)
		}
	}
	h.view = c.String()

	h.dispatching = true
	defer func() { h.dispatching = false }()
	for _, l := range slices.Clone(h.listeners) {
		if h.registered(l.id) {
			l.fn()
		}
	}
}

func (h *Host) registered(id tourguide.ListenerID) bool {
	return slices.ContainsFunc(h.listeners, func(l listener) bool { return l.id == id })
}

// ordered returns content layers then root layers, each in mount order.
func (h *Host) ordered() []mounted {
	out := make([]mounted, 0, len(h.layers))
	for _, space := range []tourguide.Space{tourguide.Content, tourguide.Root} {
		for _, m := range h.layers {
			if m.space == space {
				out = append(out, m)
			}
		}
	}
	return out
}

func (h *Host) dispatchMouse(msg tea.MouseMsg) bool {
	ev, ok := toMouseEvent(msg)
	if !ok {
		return false
	}
	order := h.ordered()
	for i := len(order) - 1; i >= 0; i-- {
		e := ev
		if order[i].space == tourguide.Content {
			e.Y -= h.headerHeight
		}
		if order[i].layer.HandleMouse(e) {
			return true
		}
	}
	return false
}

func toMouseEvent(msg tea.MouseMsg) (tourguide.MouseEvent, bool) {
	ev := tourguide.MouseEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = tourguide.MousePress
	case tea.MouseActionRelease:
		ev.Action = tourguide.MouseRelease
	case tea.MouseActionMotion:
		ev.Action = tourguide.MouseMotion
	default:
		return ev, false
	}
	switch msg.Button {
	case tea.MouseButtonNone:
		ev.Button = tourguide.ButtonNone
	case tea.MouseButtonLeft:
		ev.Button = tourguide.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = tourguide.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = tourguide.ButtonRight
	case tea.MouseButtonWheelUp:
		ev.Button = tourguide.WheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = tourguide.WheelDown
	case tea.MouseButtonWheelLeft:
		ev.Button = tourguide.WheelLeft
	case tea.MouseButtonWheelRight:
		ev.Button = tourguide.WheelRight
	default:
		// back/forward buttons
		return ev, false
	}
	return ev, true
}

// IsAttached reports whether target was found in the last rendered view.
func (h *Host) IsAttached(target string) bool {
	_, ok := h.zones[target]
	return ok
}

// TargetBounds returns the target's screen bounds.
func (h *Host) TargetBounds(target string) (geom.Rect, bool) {
	r, ok := h.TargetWindowBounds(target)
	return r.Offset(0, h.headerHeight), ok
}

// TargetWindowBounds returns the target's bounds within the app's view.
func (h *Host) TargetWindowBounds(target string) (geom.Rect, bool) {
	z, ok := h.zones[target]
	if !ok {
		return geom.Rect{}, false
	}
	return geom.Rect{X: z.X, Y: z.Y, W: z.W, H: z.H}, true
}

// ContentOrigin is below the header.
func (h *Host) ContentOrigin() geom.Point { return geom.Point{Y: h.headerHeight} }

// Viewport is the terminal size.
func (h *Host) Viewport() geom.Size { return geom.Size{W: h.width, H: h.height} }

// Density returns the configured density.
func (h *Host) Density() float64 { return h.density }

// AddLayoutListener registers fn for every following layout pass.
func (h *Host) AddLayoutListener(fn func()) tourguide.ListenerID {
	h.nextID++
	h.listeners = append(h.listeners, listener{id: h.nextID, fn: fn})
	return h.nextID
}

// RemoveLayoutListener deregisters id.
func (h *Host) RemoveLayoutListener(id tourguide.ListenerID) {
	h.listeners = slices.DeleteFunc(h.listeners, func(l listener) bool { return l.id == id })
}

// Mount places l on top.
func (h *Host) Mount(space tourguide.Space, l tourguide.Layer) {
	h.layers = append(h.layers, mounted{space: space, layer: l})
	h.RequestLayout()
}

// Unmount removes l.
func (h *Host) Unmount(l tourguide.Layer) {
	h.layers = slices.DeleteFunc(h.layers, func(m mounted) bool { return m.layer == l })
	h.RequestLayout()
}

// RequestLayout asks for another pass. Outside a pass it is a no-op
// because every Update ends with a layout.
func (h *Host) RequestLayout() {
	if h.dispatching {
		h.relayout = true
	}
}

// Zones lists the target ids found in the last rendered view.
func (h *Host) Zones() []string {
	out := make([]string, 0, len(h.zones))
	for id := range h.zones {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Suggest returns up to limit known targets resembling id.
func (h *Host) Suggest(id string, limit int) []string {
	return fuzzy.Suggest(id, h.Zones(), limit)
}

// Layers returns the number of mounted layers.
func (h *Host) Layers() int { return len(h.layers) }
