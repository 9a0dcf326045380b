// ABOUTME: Gravity as an independent horizontal and vertical alignment pair
// ABOUTME: ResolveX/ResolveY place a satellite against a target on one axis; ParseGravity reads "top|left"

package geom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGravity is returned when a gravity string cannot be parsed.
var ErrGravity = errors.New("invalid gravity")

// HAlign is the horizontal component of a Gravity.
type HAlign int

const (
	// CenterH centres the satellite over the target. It is the zero value.
	CenterH HAlign = iota
	// Left aligns left edges.
	Left
	// Right aligns right edges.
	Right
)

// VAlign is the vertical component of a Gravity.
type VAlign int

const (
	// CenterV centres the satellite over the target. It is the zero value.
	CenterV VAlign = iota
	// Top aligns top edges.
	Top
	// Bottom aligns bottom edges.
	Bottom
)

// Gravity pairs one alignment per axis. The zero value is centred on both.
type Gravity struct {
	H HAlign
	V VAlign
}

// Common gravities.
var (
	Center       = Gravity{}
	TopLeft      = Gravity{H: Left, V: Top}
	TopRight     = Gravity{H: Right, V: Top}
	BottomLeft   = Gravity{H: Left, V: Bottom}
	BottomRight  = Gravity{H: Right, V: Bottom}
	TopCenter    = Gravity{V: Top}
	BottomCenter = Gravity{V: Bottom}
)

// HasHorizontal reports whether the gravity anchors to a left or right edge.
func (g Gravity) HasHorizontal() bool {
	return g.H != CenterH
}

// ResolveX returns the x of a satellite of width satW placed against a
// target spanning [targetX, targetX+targetW).
func ResolveX(h HAlign, targetX, targetW, satW int) int {
	switch h {
	case Right:
		return targetX + targetW - satW
	case Left:
		return targetX
	default:
		return targetX + targetW/2 - satW/2
	}
}

// ResolveY returns the y of a satellite of height satH placed against a
// target spanning [targetY, targetY+targetH).
func ResolveY(v VAlign, targetY, targetH, satH int) int {
	switch v {
	case Bottom:
		return targetY + targetH - satH
	case Top:
		return targetY
	default:
		return targetY + targetH/2 - satH/2
	}
}

// String renders g as pipe-separated flags, e.g. "top|left" or "center".
func (g Gravity) String() string {
	var parts []string
	switch g.V {
	case Top:
		parts = append(parts, "top")
	case Bottom:
		parts = append(parts, "bottom")
	}
	switch g.H {
	case Left:
		parts = append(parts, "left")
	case Right:
		parts = append(parts, "right")
	}
	if len(parts) == 0 {
		return "center"
	}
	return strings.Join(parts, "|")
}

// ParseGravity reads pipe- or comma-separated flags: left, right, top,
// bottom, center_horizontal, center_vertical, center. An axis may be named
// at most once; an empty string is Center.
func ParseGravity(s string) (Gravity, error) {
	var g Gravity
	var seenH, seenV bool
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})

	setH := func(h HAlign, flag string) error {
		if seenH {
			return fmt.Errorf("%w: %q sets the horizontal axis twice (%s)", ErrGravity, s, flag)
		}
		seenH = true
		g.H = h
		return nil
	}
	setV := func(v VAlign, flag string) error {
		if seenV {
			return fmt.Errorf("%w: %q sets the vertical axis twice (%s)", ErrGravity, s, flag)
		}
		seenV = true
		g.V = v
		return nil
	}

	for _, f := range fields {
		var err error
		switch f {
		case "left", "start":
			err = setH(Left, f)
		case "right", "end":
			err = setH(Right, f)
		case "center_horizontal":
			err = setH(CenterH, f)
		case "top":
			err = setV(Top, f)
		case "bottom":
			err = setV(Bottom, f)
		case "center_vertical":
			err = setV(CenterV, f)
		case "center":
			if err = setH(CenterH, f); err == nil {
				err = setV(CenterV, f)
			}
		default:
			err = fmt.Errorf("%w: unknown flag %q in %q", ErrGravity, f, s)
		}
		if err != nil {
			return Gravity{}, err
		}
	}
	return g, nil
}

// MarshalText implements encoding.TextMarshaler.
func (g Gravity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so gravities can be
// written as "top|left" in YAML and JSON.
func (g *Gravity) UnmarshalText(b []byte) error {
	parsed, err := ParseGravity(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
