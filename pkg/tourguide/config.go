// ABOUTME: Overlay, ToolTip and Pointer settings plus the frozen Config snapshot a guide plays
// ABOUTME: Constructors give the defaults; chained setters mirror the Guide's builder style

package tourguide

import (
	"errors"
	"fmt"

	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/view"
	"github.com/mauromedda/tourguide-go/pkg/tui/theme"
)

var (
	// ErrNoHost is returned when a guide has no host to play on.
	ErrNoHost = errors.New("tourguide: no host")
	// ErrNoTarget is returned by PlayOn for an empty target id.
	ErrNoTarget = errors.New("tourguide: no target")
	// ErrMotionConflict rejects an overlay that would swallow every tap
	// while only taps are allowed, leaving the user no way to proceed.
	ErrMotionConflict = errors.New("tourguide: clicks disabled with click-only motion and no handler")
	// ErrPlayed is returned when PlayOn is called on a guide that has
	// already been played.
	ErrPlayed = errors.New("tourguide: guide already played")
	// ErrGravity is returned for malformed gravity strings.
	ErrGravity = geom.ErrGravity
)

// Style is the shape of the hole.
type Style int

const (
	Rectangle Style = iota
	RoundedRectangle
	Circle
	NoHole
)

var styleNames = [...]string{"rectangle", "rounded_rectangle", "circle", "no_hole"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle parses a hole style name.
func ParseStyle(s string) (Style, error) {
	s = normalizeName(s)
	for i, n := range styleNames {
		if s == n {
			return Style(i), nil
		}
	}
	return Rectangle, fmt.Errorf("unknown hole style %q", s)
}

// Animation is an enter animation.
type Animation int

const (
	NoAnimation Animation = iota
	FadeIn
)

// fadeFrames is how many animation frames a FadeIn takes.
const fadeFrames = 3

// FinishButton is drawn at the bottom centre of the overlay.
type FinishButton struct {
	Label   string
	OnClick func()
}

// Overlay configures the scrim and its click behaviour.
type Overlay struct {
	BackgroundColor theme.Color
	Style           Style
	// Padding grows the hole by this many cells on every side.
	Padding int

	DisableClick            bool
	DisableClickThroughHole bool
	OnClick                 func(MouseEvent)

	EnterAnimation Animation
	FinishButton   *FinishButton
}

// NewOverlay returns an overlay with a rectangular hole that fades in.
func NewOverlay() *Overlay {
	return &Overlay{Style: Rectangle, EnterAnimation: FadeIn}
}

// SetBackgroundColor sets the scrim colour.
func (o *Overlay) SetBackgroundColor(c theme.Color) *Overlay {
	o.BackgroundColor = c
	return o
}

// SetStyle sets the hole shape.
func (o *Overlay) SetStyle(s Style) *Overlay {
	o.Style = s
	return o
}

// SetPadding grows the hole around the target.
func (o *Overlay) SetPadding(n int) *Overlay {
	o.Padding = n
	return o
}

// DisableClicks makes the overlay swallow taps when no handler is set.
func (o *Overlay) DisableClicks(v bool) *Overlay {
	o.DisableClick = v
	return o
}

// DisableClicksThroughHole stops taps inside the hole from reaching the
// target when a handler is set.
func (o *Overlay) DisableClicksThroughHole(v bool) *Overlay {
	o.DisableClickThroughHole = v
	return o
}

// SetOnClick sets the handler for taps on the overlay.
func (o *Overlay) SetOnClick(fn func(MouseEvent)) *Overlay {
	o.OnClick = fn
	return o
}

// SetEnterAnimation sets how the overlay appears.
func (o *Overlay) SetEnterAnimation(a Animation) *Overlay {
	o.EnterAnimation = a
	return o
}

// SetFinishButton adds a finish button with the given label.
func (o *Overlay) SetFinishButton(label string, onClick func()) *Overlay {
	o.FinishButton = &FinishButton{Label: label, OnClick: onClick}
	return o
}

// ToolTip configures the tooltip bubble.
type ToolTip struct {
	Title       string
	Description string
	// Markdown renders Description with glamour.
	Markdown bool

	BackgroundColor theme.Color
	TextColor       theme.Color
	Gravity         geom.Gravity
	Shadow          bool
	Border          bool
	// Width caps the tooltip width in cells; zero means the viewport.
	Width int

	EnterAnimation Animation
	OnClick        func(MouseEvent)

	// View replaces the built-in title and description view.
	View view.Renderer
}

// NewToolTip returns a shadowed tooltip centred under the target.
func NewToolTip() *ToolTip {
	return &ToolTip{Shadow: true, EnterAnimation: FadeIn}
}

// SetTitle sets the title line.
func (t *ToolTip) SetTitle(s string) *ToolTip {
	t.Title = s
	return t
}

// SetDescription sets the body text.
func (t *ToolTip) SetDescription(s string) *ToolTip {
	t.Description = s
	return t
}

// SetMarkdown renders the description as markdown.
func (t *ToolTip) SetMarkdown(v bool) *ToolTip {
	t.Markdown = v
	return t
}

// SetBackgroundColor sets the bubble colour.
func (t *ToolTip) SetBackgroundColor(c theme.Color) *ToolTip {
	t.BackgroundColor = c
	return t
}

// SetTextColor sets the body text colour.
func (t *ToolTip) SetTextColor(c theme.Color) *ToolTip {
	t.TextColor = c
	return t
}

// SetGravity sets where the tooltip sits relative to the target.
func (t *ToolTip) SetGravity(g geom.Gravity) *ToolTip {
	t.Gravity = g
	return t
}

// SetShadow toggles the drop shadow.
func (t *ToolTip) SetShadow(v bool) *ToolTip {
	t.Shadow = v
	return t
}

// SetBorder toggles the rounded border.
func (t *ToolTip) SetBorder(v bool) *ToolTip {
	t.Border = v
	return t
}

// SetWidth caps the tooltip width.
func (t *ToolTip) SetWidth(n int) *ToolTip {
	t.Width = n
	return t
}

// SetEnterAnimation sets how the tooltip appears.
func (t *ToolTip) SetEnterAnimation(a Animation) *ToolTip {
	t.EnterAnimation = a
	return t
}

// SetOnClick sets the handler for taps on the tooltip.
func (t *ToolTip) SetOnClick(fn func(MouseEvent)) *ToolTip {
	t.OnClick = fn
	return t
}

// SetView replaces the built-in view.
func (t *ToolTip) SetView(r view.Renderer) *ToolTip {
	t.View = r
	return t
}

// Pointer configures the animated pointer.
type Pointer struct {
	Gravity geom.Gravity
	Color   theme.Color
}

// NewPointer returns a pointer centred on the target.
func NewPointer() *Pointer {
	return &Pointer{}
}

// SetGravity sets the pointer position relative to the target.
func (p *Pointer) SetGravity(g geom.Gravity) *Pointer {
	p.Gravity = g
	return p
}

// SetColor sets the pointer colour.
func (p *Pointer) SetColor(c theme.Color) *Pointer {
	p.Color = c
	return p
}

// Config is the snapshot a guide plays. Nil parts are not shown.
type Config struct {
	Technique Technique
	Motion    MotionType
	Overlay   *Overlay
	ToolTip   *ToolTip
	Pointer   *Pointer
}

// Clone copies c so later changes to the original settings do not leak
// into a running guide.
func (c Config) Clone() Config {
	out := c
	if c.Overlay != nil {
		o := *c.Overlay
		if o.FinishButton != nil {
			fb := *o.FinishButton
			o.FinishButton = &fb
		}
		out.Overlay = &o
	}
	if c.ToolTip != nil {
		t := *c.ToolTip
		out.ToolTip = &t
	}
	if c.Pointer != nil {
		p := *c.Pointer
		out.Pointer = &p
	}
	return out
}

// Validate rejects combinations that cannot work.
func (c Config) Validate() error {
	if c.Technique < Click || c.Technique > VerticalDownward {
		return fmt.Errorf("invalid technique %d", int(c.Technique))
	}
	if c.Motion < AllowAll || c.Motion > SwipeOnly {
		return fmt.Errorf("invalid motion type %d", int(c.Motion))
	}
	if o := c.Overlay; o != nil {
		if o.Padding < 0 {
			return fmt.Errorf("overlay padding %d: must not be negative", o.Padding)
		}
		if o.Style < Rectangle || o.Style > NoHole {
			return fmt.Errorf("invalid hole style %d", int(o.Style))
		}
		if o.OnClick == nil && o.DisableClick && c.Motion == ClickOnly {
			return ErrMotionConflict
		}
	}
	if t := c.ToolTip; t != nil && t.Width < 0 {
		return fmt.Errorf("tooltip width %d: must not be negative", t.Width)
	}
	return nil
}
