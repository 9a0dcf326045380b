// ABOUTME: Package tourguide highlights one target of a terminal UI behind a dimmed overlay
// ABOUTME: Guide places the hole, pointer and tooltip through a host-agnostic geometry engine

// Package tourguide draws walkthrough steps on top of a terminal
// application: a scrim with a hole over a target, an optional animated
// pointer and an optional tooltip.
//
// A Guide is configured with chained setters and started with PlayOn.
// It waits until the host reports the target as laid out, then mounts the
// overlay, pointer and tooltip in that order. The tooltip is placed in two
// passes: once from its measured size, and once more after it has been
// laid out at its final width, since wrapping can change its height.
//
// Everything runs on the host's UI goroutine. Guides are not safe for
// concurrent use.
package tourguide
