// ABOUTME: Tests for the tour runner and demo app driven through the Bubble Tea host
// ABOUTME: Covers step navigation, handler messages, fuzzy warnings, and single-frame output

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/tourguide-go/internal/config"
	"github.com/mauromedda/tourguide-go/internal/keybindings"
	"github.com/mauromedda/tourguide-go/internal/log"
	"github.com/mauromedda/tourguide-go/pkg/tourguide"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/teahost"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
	"github.com/mauromedda/tourguide-go/pkg/tui/width"
)

func newTestRunner(t *testing.T, tour *config.Tour, s *config.Settings) (*teahost.Host, *demoApp, *tourRunner) {
	t.Helper()
	if s == nil {
		s = &config.Settings{}
	}
	app := newDemoApp(tour, nil)
	h := teahost.New(app,
		teahost.WithHeader(app.header),
		teahost.WithFrameInterval(time.Millisecond),
	)
	r, err := newTourRunner(h, tour, s, theme.Builtin("default"))
	if err != nil {
		t.Fatalf("newTourRunner: %v", err)
	}
	app.runner = r
	h.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h, app, r
}

// deliver runs cmd one level deep and feeds every message it yields back
// into the host.
func deliver(h *teahost.Host, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		h.Update(msg)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestBuiltinTour_TargetsExist(t *testing.T) {
	t.Parallel()

	tour := builtinTour()
	h, _, _ := newTestRunner(t, tour, nil)
	for i, s := range tour.Steps {
		if !h.IsAttached(s.Target) {
			t.Errorf("step %d target %q not rendered; zones %v", i+1, s.Target, h.Zones())
		}
	}
	if tour.Intro == "" {
		t.Error("built-in tour should carry an introduction")
	}
}

func TestRunner_ShowsStep(t *testing.T) {
	t.Parallel()

	h, _, r := newTestRunner(t, builtinTour(), nil)
	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !r.active() {
		t.Fatal("runner should be active")
	}
	if st := r.guide.State(); st != tourguide.Active {
		t.Fatalf("State = %v, want active", st)
	}

	want, _ := h.TargetBounds("new")
	if got := r.guide.Overlay().Hole(); got != want {
		t.Errorf("hole = %v, want %v", got, want)
	}
	if want.Y != 1 {
		t.Errorf("toolbar should sit under the one-line header, got y=%d", want.Y)
	}
	if h.Layers() != 3 {
		t.Errorf("layers = %d, want 3", h.Layers())
	}
}

func TestRunner_Navigation(t *testing.T) {
	t.Parallel()

	tour := builtinTour()
	h, _, r := newTestRunner(t, tour, nil)
	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}

	r.next()
	if r.current != 1 || r.target() != tour.Steps[1].Target {
		t.Fatalf("after next: step %d target %q", r.current, r.target())
	}
	r.prev()
	if r.current != 0 {
		t.Fatalf("after prev: step %d, want 0", r.current)
	}
	r.prev()
	if r.current != 0 || !r.active() {
		t.Fatal("prev on the first step should keep it showing")
	}
	if h.Layers() != 3 {
		t.Errorf("layers = %d, want 3 after switching steps", h.Layers())
	}

	if err := r.show(len(tour.Steps) - 1); err != nil {
		t.Fatalf("show last: %v", err)
	}
	r.next()
	if r.active() {
		t.Error("next on the last step should end the tour")
	}
	if h.Layers() != 0 {
		t.Errorf("layers = %d, want 0 after the tour ends", h.Layers())
	}
}

func TestRunner_ShowOutOfRange(t *testing.T) {
	t.Parallel()

	_, _, r := newTestRunner(t, builtinTour(), nil)
	if err := r.show(99); err == nil {
		t.Error("expected error for a step past the end")
	}
}

func TestRunner_ToolTipClickAdvances(t *testing.T) {
	t.Parallel()

	h, _, r := newTestRunner(t, builtinTour(), nil)
	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}
	h.Layout()

	b := r.guide.ToolTip().Bounds()
	_, cmd := h.Update(tea.MouseMsg{
		X:      b.X + b.W/2,
		Y:      b.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	deliver(h, cmd)

	if r.current != 1 {
		t.Errorf("step = %d, want 1 after clicking the tooltip", r.current)
	}
}

func TestRunner_FinishButtonEndsTour(t *testing.T) {
	t.Parallel()

	tour := builtinTour()
	h, app, r := newTestRunner(t, tour, nil)
	if err := r.show(len(tour.Steps) - 1); err != nil {
		t.Fatalf("show: %v", err)
	}
	h.Layout()

	b, ok := r.guide.Overlay().FinishButtonBounds()
	if !ok {
		t.Fatal("last step should show a finish button")
	}
	_, cmd := h.Update(tea.MouseMsg{
		X:      b.X + 1,
		Y:      b.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	deliver(h, cmd)

	if r.active() {
		t.Error("finish button should end the tour")
	}
	if app.status != "tour finished" {
		t.Errorf("status = %q, want %q", app.status, "tour finished")
	}
}

func TestApp_ClickOnTargetAdvances(t *testing.T) {
	t.Parallel()

	_, app, r := newTestRunner(t, builtinTour(), nil)
	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}

	// content-space coordinates, as the host forwards them
	app.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if app.status != "clicked new" {
		t.Errorf("status = %q, want %q", app.status, "clicked new")
	}
	if r.current != 1 {
		t.Errorf("step = %d, want 1", r.current)
	}
}

func TestApp_Keys(t *testing.T) {
	t.Parallel()

	_, app, r := newTestRunner(t, builtinTour(), nil)
	app.Update(startMsg{})
	if !r.active() || r.current != 0 {
		t.Fatal("startMsg should show the first step")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if r.current != 1 {
		t.Errorf("after n: step %d, want 1", r.current)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.current != 0 {
		t.Errorf("after left: step %d, want 0", r.current)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if r.active() {
		t.Error("esc should end the tour")
	}
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if !r.active() || r.current != 0 {
		t.Error("t should replay the tour from the start")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestRunner_SettingsDefaults(t *testing.T) {
	t.Parallel()

	tour := &config.Tour{Steps: []config.Step{{Target: "save"}, {Target: "open", Motion: "click_only"}}}
	_, _, r := newTestRunner(t, tour, &config.Settings{Motion: "swipe_only", Technique: "horizontal_right"})

	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}
	cfg := r.guide.Config()
	if cfg.Motion != tourguide.SwipeOnly {
		t.Errorf("motion = %v, want swipe_only from settings", cfg.Motion)
	}
	if cfg.Technique != tourguide.HorizontalRight {
		t.Errorf("technique = %v, want horizontal_right from settings", cfg.Technique)
	}

	r.next()
	if got := r.guide.Config().Motion; got != tourguide.ClickOnly {
		t.Errorf("motion = %v, want the step's click_only", got)
	}
}

func TestNewTourRunner_BadSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    config.Settings
	}{
		{"motion", config.Settings{Motion: "sideways"}},
		{"technique", config.Settings{Technique: "wiggle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := teahost.New(newDemoApp(builtinTour(), nil))
			if _, err := newTourRunner(h, builtinTour(), &tt.s, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunner_UnknownTargetSuggests(t *testing.T) {
	var buf bytes.Buffer
	prev := log.SetOutput(&buf)
	defer log.SetOutput(prev)

	tour := &config.Tour{Steps: []config.Step{{Target: "sav"}}}
	_, _, r := newTestRunner(t, tour, nil)
	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "did you mean save") {
		t.Errorf("log = %q, want a warning suggesting save", out)
	}
	if st := r.guide.State(); st != tourguide.WaitingForLayout {
		t.Errorf("State = %v, want waiting_for_layout", st)
	}
}

func TestPrintStep(t *testing.T) {
	t.Parallel()

	h, _, r := newTestRunner(t, builtinTour(), nil)
	var buf bytes.Buffer
	if err := printStep(h, r, 0, &buf, 80, 24); err != nil {
		t.Fatalf("printStep: %v", err)
	}

	out := width.StripANSI(buf.String())
	if !strings.Contains(out, "New file") {
		t.Errorf("output missing tooltip title:\n%s", out)
	}
	if !strings.Contains(out, "Editor basics") {
		t.Errorf("output missing header:\n%s", out)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 24 {
		t.Errorf("lines = %d, want 24", len(lines))
	}
	for i, l := range lines {
		if w := width.VisibleWidth(l); w > 80 {
			t.Errorf("line %d width = %d, want <= 80", i, w)
		}
	}
}

func TestPrintStep_MissingTarget(t *testing.T) {
	t.Parallel()

	tour := &config.Tour{Steps: []config.Step{{Target: "nowhere"}}}
	h, _, r := newTestRunner(t, tour, nil)
	if err := printStep(h, r, 0, &bytes.Buffer{}, 80, 24); err == nil {
		t.Error("expected error for a target that never renders")
	}
}

func TestListTargets(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRunner(t, builtinTour(), nil)
	var buf bytes.Buffer
	if err := listTargets(h, &buf, 80, 24); err != nil {
		t.Fatalf("listTargets: %v", err)
	}
	for _, id := range []string{"new", "open", "save", "search", "files", "editor", "help"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("missing target %q in\n%s", id, buf.String())
		}
	}
}

func TestApp_CustomKeybindings(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Bindings[config.ActionNext] = []string{"j"}
	app := newDemoApp(builtinTour(), keybindings.NewFromBindings(kb))
	h := teahost.New(app, teahost.WithHeader(app.header))
	r, err := newTourRunner(h, builtinTour(), &config.Settings{}, nil)
	if err != nil {
		t.Fatalf("newTourRunner: %v", err)
	}
	app.runner = r
	h.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if err := r.show(0); err != nil {
		t.Fatalf("show: %v", err)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if r.current != 0 {
		t.Errorf("n is no longer bound; step = %d, want 0", r.current)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if r.current != 1 {
		t.Errorf("after j: step %d, want 1", r.current)
	}
	if !strings.Contains(app.header(80), "j next") {
		t.Errorf("header should show the rebound key: %q", app.header(80))
	}
}
