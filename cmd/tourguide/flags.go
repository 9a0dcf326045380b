// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --tour, --theme, --print, --step, --motion, --density, --keys, --verbose, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	tour    string
	theme   string
	print   bool
	step    int
	motion  string
	density float64
	noMouse bool
	verbose bool
	version bool
	list    bool
	keys    bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("tourguide", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&args.tour, "tour", "", "Tour script name or path (default: built-in demo tour)")
	fs.StringVar(&args.theme, "theme", "", "Theme: default, light, monochrome, builtin:<name>, or a JSON file")
	fs.BoolVar(&args.print, "print", false, "Render one step to stdout and exit")
	fs.IntVar(&args.step, "step", 1, "Step to show first (1-based)")
	fs.StringVar(&args.motion, "motion", "", "Default motion type: allow_all, click_only, swipe_only")
	fs.Float64Var(&args.density, "density", 0, "Cells per density-independent unit")
	fs.BoolVar(&args.noMouse, "no-mouse", false, "Do not capture the mouse")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.list, "list-targets", false, "List the demo's targets and exit")
	fs.BoolVar(&args.keys, "keys", false, "Show keybindings and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}
