// ABOUTME: Enumerations shared by the guide: Technique, MotionType, Space, State
// ABOUTME: Host-agnostic mouse events and their classification into gestures

package tourguide

import (
	"fmt"
	"strings"
)

// Technique selects the pointer animation.
type Technique int

const (
	Click Technique = iota
	HorizontalLeft
	HorizontalRight
	VerticalUpward
	VerticalDownward
)

var techniqueNames = [...]string{"click", "horizontal_left", "horizontal_right", "vertical_upward", "vertical_downward"}

func (t Technique) String() string {
	if t < 0 || int(t) >= len(techniqueNames) {
		return fmt.Sprintf("Technique(%d)", int(t))
	}
	return techniqueNames[t]
}

// ParseTechnique parses a technique name such as "click" or "vertical_upward".
func ParseTechnique(s string) (Technique, error) {
	s = normalizeName(s)
	for i, n := range techniqueNames {
		if s == n {
			return Technique(i), nil
		}
	}
	return Click, fmt.Errorf("unknown technique %q", s)
}

// MotionType restricts which gestures reach the application outside the
// hole.
type MotionType int

const (
	AllowAll MotionType = iota
	ClickOnly
	SwipeOnly
)

var motionNames = [...]string{"allow_all", "click_only", "swipe_only"}

func (m MotionType) String() string {
	if m < 0 || int(m) >= len(motionNames) {
		return fmt.Sprintf("MotionType(%d)", int(m))
	}
	return motionNames[m]
}

// ParseMotionType parses "allow_all", "click_only" or "swipe_only".
func ParseMotionType(s string) (MotionType, error) {
	s = normalizeName(s)
	for i, n := range motionNames {
		if s == n {
			return MotionType(i), nil
		}
	}
	return AllowAll, fmt.Errorf("unknown motion type %q", s)
}

// Allows reports whether g may pass under this restriction. Hovering is
// never restricted.
func (m MotionType) Allows(g Gesture) bool {
	switch g {
	case Tap:
		return m != SwipeOnly
	case Swipe:
		return m != ClickOnly
	default:
		return true
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// Space is the coordinate space a layer is mounted in.
type Space int

const (
	// Root is the whole screen.
	Root Space = iota
	// Content is the application area, offset by the host's ContentOrigin.
	Content
)

// State is the lifecycle stage of a Guide.
type State int

const (
	Configuring State = iota
	WaitingForLayout
	Active
	CleanedUp
)

func (s State) String() string {
	switch s {
	case Configuring:
		return "configuring"
	case WaitingForLayout:
		return "waiting_for_layout"
	case Active:
		return "active"
	case CleanedUp:
		return "cleaned_up"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MouseAction is what happened to the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// MouseButton identifies the button or wheel direction involved.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
	WheelLeft
	WheelRight
)

// IsWheel reports whether b is a scroll wheel direction.
func (b MouseButton) IsWheel() bool {
	return b >= WheelUp && b <= WheelRight
}

// MouseEvent is a mouse event in the coordinates of the receiving layer's
// space.
type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button MouseButton
}

// Gesture is the coarse class of a mouse event used by MotionType.
type Gesture int

const (
	Hover Gesture = iota
	Tap
	Swipe
)

func (g Gesture) String() string {
	switch g {
	case Tap:
		return "tap"
	case Swipe:
		return "swipe"
	default:
		return "hover"
	}
}

// Gesture classifies e. Wheel scrolling and dragging are swipes, button
// presses and releases are taps, and bare motion is hovering.
func (e MouseEvent) Gesture() Gesture {
	switch {
	case e.Button.IsWheel():
		return Swipe
	case e.Action == MouseMotion && e.Button != ButtonNone:
		return Swipe
	case e.Action == MouseMotion:
		return Hover
	default:
		return Tap
	}
}
