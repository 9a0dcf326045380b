// ABOUTME: Demo application walked through by the tour: a mock editor with zone-marked controls
// ABOUTME: Handles tour navigation keys and reports clicks that reach it through the overlay

package main

import (
	_ "embed"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/tourguide-go/internal/config"
	"github.com/mauromedda/tourguide-go/internal/keybindings"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tui/width"
	"github.com/mauromedda/tourguide-go/pkg/tui/zone"
)

//go:embed tours/demo.md
var demoTour string

// builtinTour returns the tour played when no --tour is given.
func builtinTour() *config.Tour {
	t, err := config.ParseTour(demoTour, true)
	if err != nil {
		panic(fmt.Sprintf("built-in tour: %v", err))
	}
	return t
}

// Demo targets, in toolbar order.
var toolbar = []string{"new", "open", "save", "search"}

var demoFiles = []string{"main.go", "flags.go", "demo.go", "runner.go", "print.go", "README.md"}

// startMsg starts the tour once the program is running.
type startMsg struct{}

// advanceMsg moves to the next step.
type advanceMsg struct{}

// finishMsg ends the tour from its finish button.
type finishMsg struct{}

// demoApp is the application model. Use it through its pointer so the
// runner and the host share one instance.
type demoApp struct {
	tour   *config.Tour
	keys   *keybindings.Manager
	runner *tourRunner

	width, height int
	status        string
}

func newDemoApp(tour *config.Tour, keys *keybindings.Manager) *demoApp {
	if keys == nil {
		keys = keybindings.NewFromBindings(config.NewKeybindings())
	}
	return &demoApp{tour: tour, keys: keys, status: "ready"}
}

func (a *demoApp) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (a *demoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case startMsg:
		if a.runner != nil {
			a.runner.begin()
		}

	case advanceMsg:
		a.runner.next()

	case finishMsg:
		a.runner.stop()
		a.status = "tour finished"

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			id := a.hit(msg.X, msg.Y)
			a.status = "clicked " + id
			// clicking the highlighted target moves the tour on
			if a.runner != nil && a.runner.active() && id == a.runner.target() {
				a.runner.next()
			}
		}
	}
	return a, nil
}

func (a *demoApp) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := a.keys.ActionFor(msg.String())
	if action == config.ActionQuit {
		if a.runner != nil {
			a.runner.stop()
		}
		return tea.Quit
	}
	if a.runner == nil {
		return nil
	}

	switch action {
	case config.ActionNext:
		if a.runner.active() {
			a.runner.next()
		}
	case config.ActionPrev:
		if a.runner.active() {
			a.runner.prev()
		}
	case config.ActionEnd:
		if a.runner.active() {
			a.runner.stop()
			a.status = "tour ended"
		}
	case config.ActionReplay:
		if !a.runner.active() {
			if err := a.runner.show(0); err != nil {
				a.status = err.Error()
			}
		}
	}
	return nil
}

// hit names the target under the content-space cell (x, y).
func (a *demoApp) hit(x, y int) string {
	if a.runner == nil {
		return "nothing"
	}
	for _, id := range a.runner.host.Zones() {
		r, ok := a.runner.host.TargetWindowBounds(id)
		if ok && r.Contains(geom.Point{X: x, Y: y}) {
			return id
		}
	}
	return "nothing"
}

var (
	barStyle    = lipgloss.NewStyle().Reverse(true)
	buttonStyle = lipgloss.NewStyle().Bold(true)
	paneStyle   = lipgloss.NewStyle().Faint(true)
)

func (a *demoApp) View() string {
	w := max(a.width, 40)
	var b strings.Builder

	// toolbar
	parts := make([]string, len(toolbar))
	for i, id := range toolbar {
		parts[i] = zone.Mark(id, buttonStyle.Render("["+strings.ToUpper(id[:1])+id[1:]+"]"))
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", w))
	b.WriteByte('\n')

	// file list beside the editor pane
	bodyRows := max(a.height-4, len(demoFiles)+1)
	listW := 14
	pane := a.paneLines(w-listW-1, bodyRows)
	for i := range bodyRows {
		var f string
		switch {
		case i == 0:
			f = zone.Mark("files", buttonStyle.Render(width.PadRight(" Files", listW)))
		case i <= len(demoFiles):
			f = zone.Mark("file:"+demoFiles[i-1], width.PadRight(" "+demoFiles[i-1], listW))
		default:
			f = strings.Repeat(" ", listW)
		}
		p := pane[i]
		if i == 0 {
			p = zone.Mark("editor", p)
		}
		b.WriteString(f + "│" + p)
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteByte('\n')
	status := " " + a.status
	help := zone.Mark("help", buttonStyle.Render("[Help]"))
	gap := max(w-width.VisibleWidth(status)-width.VisibleWidth(help)-1, 1)
	b.WriteString(barStyle.Render(status+strings.Repeat(" ", gap)) + " " + help)
	return b.String()
}

// paneLines renders the tour introduction into the editor pane.
func (a *demoApp) paneLines(w, rows int) []string {
	text := "Replay the tour with " + strings.Join(a.keys.Bindings(config.ActionReplay), " or ") + "."
	if a.tour != nil && a.tour.Intro != "" {
		text = a.tour.Intro
	}
	var lines []string
	if a.runner != nil {
		lines = strings.Split(a.runner.md.Render(text, w), "\n")
	} else {
		lines = width.Wrap(text, w)
	}
	out := make([]string, rows)
	for i := range out {
		if i < len(lines) {
			out[i] = width.PadRight(width.TruncateToWidth(lines[i], w), w)
		} else {
			out[i] = paneStyle.Render(width.PadRight("~", w))
		}
	}
	return out
}

// header is the status line above the app; the host uses its height as
// the content origin.
func (a *demoApp) header(w int) string {
	title := "tourguide"
	if a.tour != nil && a.tour.Title != "" {
		title = a.tour.Title
	}
	step := a.keys.Help()
	if a.runner != nil && a.runner.active() {
		step = fmt.Sprintf("step %d/%d · %s", a.runner.current+1, len(a.tour.Steps), step)
	}
	return width.TruncateToWidth(barStyle.Render(width.PadRight(" "+title+" · "+step, w)), w)
}
