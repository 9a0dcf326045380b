// ABOUTME: Click policy for the overlay, resolved once per step from the overlay settings
// ABOUTME: Routes each gesture to the target, the overlay's handler, or nowhere

package tourguide

// ClickPolicy decides what the overlay does with mouse input.
type ClickPolicy int

const (
	// PassThrough leaves the overlay non-intercepting; only MotionType
	// filters gestures outside the hole.
	PassThrough ClickPolicy = iota
	// CustomHandler sends taps on the overlay to Overlay.OnClick.
	CustomHandler
	// ClicksDisabled swallows taps everywhere, the hole included.
	ClicksDisabled
)

func (p ClickPolicy) String() string {
	switch p {
	case CustomHandler:
		return "custom_handler"
	case ClicksDisabled:
		return "clicks_disabled"
	default:
		return "pass_through"
	}
}

// ResolveClickPolicy picks the policy for o. A handler wins over
// DisableClick. A nil overlay passes through.
func ResolveClickPolicy(o *Overlay) ClickPolicy {
	switch {
	case o == nil:
		return PassThrough
	case o.OnClick != nil:
		return CustomHandler
	case o.DisableClick:
		return ClicksDisabled
	default:
		return PassThrough
	}
}

// route reports whether the overlay consumes a gesture and whether the
// overlay's handler should see it. blockHole stops taps in the hole from
// reaching the target under CustomHandler.
func (p ClickPolicy) route(g Gesture, inHole bool, motion MotionType, blockHole bool) (consume, handle bool) {
	if p == PassThrough {
		if inHole {
			return false, false
		}
		return !motion.Allows(g), false
	}

	// intercepting overlay
	switch {
	case g == Hover:
		return false, false
	case !inHole:
		return true, p == CustomHandler && g == Tap
	case g == Swipe:
		return !motion.Allows(Swipe), false
	case p == CustomHandler && !blockHole:
		return false, false
	default:
		return true, p == CustomHandler
	}
}
