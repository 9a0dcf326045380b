// ABOUTME: CLI entry point for the tourguide demo: a small editor UI walked through by a tour
// ABOUTME: Parses flags, loads settings, theme and tour, then runs interactively or prints one step

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/tourguide-go/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/tourguide-go/internal/config"
	"github.com/mauromedda/tourguide-go/internal/keybindings"
	tglog "github.com/mauromedda/tourguide-go/internal/log"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/teahost"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("tourguide %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads everything and dispatches to print or interactive mode.
func run(args cliArgs, stdout io.Writer) error {
	if args.verbose {
		tglog.SetLevel(tglog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	settings, err := config.LoadWithHome(cwd, home, buildCLIOverrides(args))
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if settings.LogLevel != "" && !args.verbose {
		lvl, err := tglog.ParseLevel(settings.LogLevel)
		if err != nil {
			return err
		}
		tglog.SetLevel(lvl)
	}

	th, err := theme.Resolve(themeRef(settings.Theme, config.ThemesDir()))
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	theme.Set(th)

	tour, err := loadTour(cwd, args.tour)
	if err != nil {
		return err
	}

	keys := keybindings.New(config.GlobalKeybindingsFile(home), config.ProjectKeybindingsFile(cwd))
	for _, c := range keys.Conflicts() {
		tglog.Warn("keybindings: %q is bound to %v; %s wins", c.Key, c.Actions, keys.ActionFor(c.Key))
	}
	if args.keys {
		_, err := io.WriteString(stdout, keys.FormatAll())
		return err
	}

	app := newDemoApp(tour, keys)
	h := teahost.New(app,
		teahost.WithHeader(app.header),
		teahost.WithDensity(settings.Density),
		teahost.WithFrameInterval(settings.FrameInterval()),
	)
	runner, err := newTourRunner(h, tour, settings, th)
	if err != nil {
		return err
	}
	app.runner = runner

	first := args.step - 1
	if first < 0 || first >= len(tour.Steps) {
		return fmt.Errorf("step %d out of range 1..%d", args.step, len(tour.Steps))
	}
	runner.startAt = first

	switch {
	case args.list:
		cols, rows := terminalSize()
		return listTargets(h, stdout, cols, rows)
	case args.print:
		cols, rows := terminalSize()
		return printStep(h, runner, first, stdout, cols, rows)
	default:
		return runInteractive(h, settings.MouseEnabled())
	}
}

// buildCLIOverrides maps flags onto the highest-precedence settings layer.
func buildCLIOverrides(args cliArgs) *config.Settings {
	s := &config.Settings{
		Theme:   args.theme,
		Motion:  args.motion,
		Density: args.density,
	}
	if args.noMouse {
		off := false
		s.Mouse = &off
	}
	return s
}

// themeRef turns a bare theme name into a built-in reference or a file in
// themesDir; paths and explicit references pass through.
func themeRef(ref, themesDir string) string {
	if ref == "" || strings.Contains(ref, ":") || strings.ContainsRune(ref, filepath.Separator) {
		return ref
	}
	if theme.Builtin(ref) != nil {
		return "builtin:" + ref
	}
	p := filepath.Join(themesDir, ref+".json")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ref
}

func loadTour(cwd, name string) (*config.Tour, error) {
	if name == "" {
		return builtinTour(), nil
	}
	path, err := config.FindTour(cwd, name)
	if err != nil {
		return nil, err
	}
	return config.LoadTour(path)
}

// runInteractive runs the program on the alternate screen. Log output is
// held back until the terminal is restored.
func runInteractive(h *teahost.Host, mouse bool) error {
	var held bytes.Buffer
	prev := tglog.SetOutput(&held)
	defer func() {
		tglog.SetOutput(prev)
		_, _ = io.Copy(prev, &held)
	}()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(h, opts...).Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
