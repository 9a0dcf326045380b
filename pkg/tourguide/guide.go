// ABOUTME: Guide is one walkthrough step: chained configuration, PlayOn, and CleanUp
// ABOUTME: Waits for the target's layout, mounts overlay, pointer and tooltip, then corrects the tooltip once

package tourguide

import (
	"fmt"

	"github.com/mauromedda/tourguide-go/internal/log"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/view"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
)

// Guide shows one step. Create one per step; it cannot be replayed.
type Guide struct {
	host  Host
	cfg   Config
	md    *view.MarkdownRenderer
	theme *theme.Theme

	state  State
	target string
	played Config
	layout Layout

	overlay *OverlayLayer
	pointer *PointerLayer
	tooltip *ToolTipLayer

	waits []*Once
}

// New creates a guide for h.
func New(h Host) *Guide {
	return &Guide{host: h}
}

// With sets the pointer animation technique.
func (g *Guide) With(t Technique) *Guide {
	g.cfg.Technique = t
	return g
}

// MotionType restricts the gestures that reach the application.
func (g *Guide) MotionType(m MotionType) *Guide {
	g.cfg.Motion = m
	return g
}

// SetOverlay sets the overlay; nil keeps an invisible one that still
// enforces MotionType.
func (g *Guide) SetOverlay(o *Overlay) *Guide {
	g.cfg.Overlay = o
	return g
}

// SetToolTip sets the tooltip; nil shows none.
func (g *Guide) SetToolTip(t *ToolTip) *Guide {
	g.cfg.ToolTip = t
	return g
}

// SetPointer sets the pointer; nil shows none.
func (g *Guide) SetPointer(p *Pointer) *Guide {
	g.cfg.Pointer = p
	return g
}

// SetTheme overrides the global theme for this guide.
func (g *Guide) SetTheme(t *theme.Theme) *Guide {
	g.theme = t
	return g
}

// SetMarkdownRenderer shares a markdown cache between guides.
func (g *Guide) SetMarkdownRenderer(md *view.MarkdownRenderer) *Guide {
	g.md = md
	return g
}

// PlayOn freezes the configuration and shows the step on target as soon
// as the host has laid it out.
func (g *Guide) PlayOn(target string) error {
	if g.host == nil {
		return ErrNoHost
	}
	if target == "" {
		return ErrNoTarget
	}
	if g.state != Configuring {
		return ErrPlayed
	}

	cfg := g.cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("play on %q: %w", target, err)
	}
	g.played = cfg
	g.target = target

	if g.host.IsAttached(target) {
		g.start()
		return nil
	}

	log.Debug("tourguide: waiting for %q to be laid out", target)
	g.state = WaitingForLayout
	g.waits = append(g.waits, OnLayoutWhen(g.host,
		func() bool { return g.host.IsAttached(target) },
		g.start,
	))
	return nil
}

func (g *Guide) start() {
	h := g.host
	screen, _ := h.TargetBounds(g.target)
	window, _ := h.TargetWindowBounds(g.target)
	f := Frame{
		Target:        screen,
		Window:        window,
		ContentOrigin: h.ContentOrigin(),
		Viewport:      h.Viewport(),
		Density:       h.Density(),
	}

	palette := g.palette()
	var tip *ToolTipLayer
	if g.played.ToolTip != nil {
		tip = newToolTipLayer(g.played.ToolTip, palette, g.markdown())
		f.ToolTipSize = tip.measure(f.Viewport.W)
	}
	g.layout = Plan(g.played, f)

	g.overlay = newOverlayLayer(g.played, g.layout, f.Viewport, palette)
	h.Mount(Content, g.overlay)
	if g.overlay.Policy() == ClicksDisabled {
		log.Warn("tourguide: overlay clicks are disabled and no handler is set; taps on the overlay do nothing")
	}

	if g.played.Pointer != nil {
		g.pointer = newPointerLayer(g.played, g.layout, palette)
		h.Mount(Content, g.pointer)
	}

	if tip != nil {
		tip.target = screen
		tip.adjust = g.layout.Adjust
		tip.placement = g.layout.ToolTip
		g.tooltip = tip
		h.Mount(Root, tip)
		g.waits = append(g.waits, OnNextLayout(h, func() {
			tip.correct()
			h.RequestLayout()
		}))
	}

	g.state = Active
	log.Debug("tourguide: playing on %q hole=%s", g.target, g.layout.Hole)
	h.RequestLayout()
}

func (g *Guide) palette() theme.Palette {
	if g.theme != nil {
		return g.theme.Palette
	}
	return theme.Current().Palette
}

func (g *Guide) markdown() *view.MarkdownRenderer {
	if g.md == nil {
		g.md = view.NewMarkdownRenderer("")
	}
	return g.md
}

// CleanUp removes everything the guide mounted and drops pending
// listeners. Calling it again does nothing further.
func (g *Guide) CleanUp() {
	for _, w := range g.waits {
		w.Cancel()
	}
	g.waits = nil
	if g.host != nil {
		if g.overlay != nil {
			g.host.Unmount(g.overlay)
		}
		if g.pointer != nil {
			g.host.Unmount(g.pointer)
		}
		if g.tooltip != nil {
			g.host.Unmount(g.tooltip)
		}
		g.host.RequestLayout()
	}
	g.state = CleanedUp
}

// Overlay returns the mounted overlay, or nil before the step starts.
func (g *Guide) Overlay() *OverlayLayer { return g.overlay }

// ToolTip returns the mounted tooltip, or nil.
func (g *Guide) ToolTip() *ToolTipLayer { return g.tooltip }

// Pointer returns the mounted pointer, or nil.
func (g *Guide) Pointer() *PointerLayer { return g.pointer }

// State returns the lifecycle stage.
func (g *Guide) State() State { return g.state }

// Config returns the frozen configuration once played, or the builder
// state before that.
func (g *Guide) Config() Config {
	if g.state == Configuring {
		return g.cfg
	}
	return g.played
}

// Target returns the id passed to PlayOn.
func (g *Guide) Target() string { return g.target }

// Layout returns the geometry computed when the step started.
func (g *Guide) Layout() Layout { return g.layout }
