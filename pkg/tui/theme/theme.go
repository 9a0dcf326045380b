// ABOUTME: Semantic colour theme for walkthrough overlays: Color, Palette, Theme
// ABOUTME: Colors hold lipgloss specs ("208", "#ff8800"); Style helpers build lipgloss styles

package theme

import "github.com/charmbracelet/lipgloss"

// Color is a terminal colour expressed as a lipgloss colour spec: an ANSI
// index ("1", "208") or a hex value ("#5f87af"). The zero Color means
// "terminal default".
type Color struct {
	spec string
}

// NewColor creates a Color from a lipgloss colour spec.
func NewColor(spec string) Color {
	return Color{spec: spec}
}

// Spec returns the raw colour spec.
func (c Color) Spec() string {
	return c.spec
}

// IsZero reports whether c is the terminal default colour.
func (c Color) IsZero() bool {
	return c.spec == ""
}

// Terminal returns c as a lipgloss colour.
func (c Color) Terminal() lipgloss.TerminalColor {
	if c.spec == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.spec)
}

// Fg returns a style with c as foreground.
func (c Color) Fg() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Terminal())
}

// Bg returns a style with c as background.
func (c Color) Bg() lipgloss.Style {
	return lipgloss.NewStyle().Background(c.Terminal())
}

// Palette maps overlay roles to colours.
type Palette struct {
	// Scrim
	Scrim     Color
	ScrimText Color

	// Tooltip
	TooltipBg     Color
	TooltipFg     Color
	TooltipTitle  Color
	TooltipBorder Color
	Shadow        Color

	// Pointer and finish button
	Pointer    Color
	Button     Color
	ButtonText Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the dark-terminal palette used when nothing else
// is configured.
func DefaultPalette() Palette {
	return Palette{
		Scrim:     NewColor("235"),
		ScrimText: NewColor("240"),

		TooltipBg:     NewColor("24"),
		TooltipFg:     NewColor("255"),
		TooltipTitle:  NewColor("229"),
		TooltipBorder: NewColor("39"),
		Shadow:        NewColor("233"),

		Pointer:    NewColor("214"),
		Button:     NewColor("214"),
		ButtonText: NewColor("16"),
	}
}
