// ABOUTME: Tour runner: turns tour script steps into guides and plays them one at a time
// ABOUTME: Layer handlers post messages back to the app; unknown targets get fuzzy suggestions

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/tourguide-go/internal/config"
	"github.com/mauromedda/tourguide-go/internal/log"
	"github.com/mauromedda/tourguide-go/pkg/tourguide"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/teahost"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/view"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
)

type tourRunner struct {
	host  *teahost.Host
	tour  *config.Tour
	theme *theme.Theme
	md    *view.MarkdownRenderer

	motion    tourguide.MotionType
	technique tourguide.Technique
	// static turns off enter animations for single-frame output.
	static bool

	startAt int
	current int
	guide   *tourguide.Guide
}

func newTourRunner(h *teahost.Host, tour *config.Tour, s *config.Settings, th *theme.Theme) (*tourRunner, error) {
	r := &tourRunner{host: h, tour: tour, theme: th}

	var err error
	if s.Motion != "" {
		if r.motion, err = tourguide.ParseMotionType(s.Motion); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
	}
	if s.Technique != "" {
		if r.technique, err = tourguide.ParseTechnique(s.Technique); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
	}

	style := "dark"
	if !lipgloss.HasDarkBackground() {
		style = "light"
	}
	r.md = view.NewMarkdownRenderer(style)
	return r, nil
}

// begin shows the first step chosen on the command line.
func (r *tourRunner) begin() {
	if err := r.show(r.startAt); err != nil {
		log.Error("tour: %v", err)
	}
}

func (r *tourRunner) active() bool { return r.guide != nil }

// target is the current step's target, or "" when no step is showing.
func (r *tourRunner) target() string {
	if r.guide == nil {
		return ""
	}
	return r.guide.Target()
}

// show replaces the current step with step i.
func (r *tourRunner) show(i int) error {
	r.stop()
	if i < 0 || i >= len(r.tour.Steps) {
		return fmt.Errorf("step %d out of range 1..%d", i+1, len(r.tour.Steps))
	}
	step := r.tour.Steps[i]
	g, err := r.build(step)
	if err != nil {
		return fmt.Errorf("step %d: %w", i+1, err)
	}

	if len(r.host.Zones()) > 0 && !r.host.IsAttached(step.Target) {
		if s := r.host.Suggest(step.Target, 3); len(s) > 0 {
			log.Warn("tour: target %q is not on screen (did you mean %s?)", step.Target, strings.Join(s, ", "))
		} else {
			log.Warn("tour: target %q is not on screen; waiting for it", step.Target)
		}
	}

	if err := g.PlayOn(step.Target); err != nil {
		return fmt.Errorf("step %d: %w", i+1, err)
	}
	r.guide, r.current = g, i
	return nil
}

// next advances, ending the tour after the last step.
func (r *tourRunner) next() {
	if r.current+1 >= len(r.tour.Steps) {
		r.stop()
		return
	}
	if err := r.show(r.current + 1); err != nil {
		log.Error("tour: %v", err)
	}
}

func (r *tourRunner) prev() {
	if r.current == 0 {
		return
	}
	if err := r.show(r.current - 1); err != nil {
		log.Error("tour: %v", err)
	}
}

func (r *tourRunner) stop() {
	if r.guide != nil {
		r.guide.CleanUp()
		r.guide = nil
	}
}

// build configures a guide for step without playing it.
func (r *tourRunner) build(step config.Step) (*tourguide.Guide, error) {
	tech, err := step.TechniqueOr(r.technique)
	if err != nil {
		return nil, err
	}
	motion, err := step.MotionOr(r.motion)
	if err != nil {
		return nil, err
	}
	style, err := step.HoleStyle()
	if err != nil {
		return nil, err
	}
	tipGravity, err := step.ToolTipGravity()
	if err != nil {
		return nil, err
	}
	ptrGravity, err := step.PointerAt()
	if err != nil {
		return nil, err
	}

	anim := tourguide.FadeIn
	if r.static {
		anim = tourguide.NoAnimation
	}
	advance := func(tourguide.MouseEvent) { r.host.Post(advanceMsg{}) }

	overlay := tourguide.NewOverlay().
		SetStyle(style).
		SetPadding(step.Padding).
		DisableClicks(step.DisableClick).
		SetEnterAnimation(anim)
	if step.Finish != "" {
		overlay.SetFinishButton(step.Finish, func() { r.host.Post(finishMsg{}) })
	}

	tip := tourguide.NewToolTip().
		SetTitle(step.Title).
		SetDescription(step.Description).
		SetMarkdown(step.Markdown).
		SetGravity(tipGravity).
		SetBorder(step.Border).
		SetWidth(step.Width).
		SetEnterAnimation(anim).
		SetOnClick(advance)

	g := tourguide.New(r.host).
		With(tech).
		MotionType(motion).
		SetOverlay(overlay).
		SetToolTip(tip).
		SetTheme(r.theme).
		SetMarkdownRenderer(r.md)
	if !step.NoPointer {
		g.SetPointer(tourguide.NewPointer().SetGravity(ptrGravity))
	}
	return g, nil
}
