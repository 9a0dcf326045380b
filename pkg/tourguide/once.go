// ABOUTME: One-shot layout listeners that deregister themselves on first use
// ABOUTME: Used to wait for target attachment and for the tooltip's post-layout height

package tourguide

// Once runs a callback on the first layout pass where its condition holds,
// then removes itself from the host.
type Once struct {
	host Host
	id   ListenerID
	cond func() bool
	fn   func()
	done bool
}

// OnNextLayout runs fn once after the next layout pass.
func OnNextLayout(h Host, fn func()) *Once {
	return OnLayoutWhen(h, nil, fn)
}

// OnLayoutWhen runs fn once, after the first layout pass in which cond
// returns true. A nil cond always holds.
func OnLayoutWhen(h Host, cond func() bool, fn func()) *Once {
	o := &Once{host: h, cond: cond, fn: fn}
	o.id = h.AddLayoutListener(o.fire)
	return o
}

func (o *Once) fire() {
	if o.done {
		return
	}
	if o.cond != nil && !o.cond() {
		return
	}
	o.done = true
	o.host.RemoveLayoutListener(o.id)
	o.fn()
}

// Cancel deregisters the listener without running it.
func (o *Once) Cancel() {
	if o.done {
		return
	}
	o.done = true
	o.host.RemoveLayoutListener(o.id)
}

// Done reports whether the listener has fired or been cancelled.
func (o *Once) Done() bool { return o.done }
