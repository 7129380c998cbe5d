package deferred

type subscriber struct {
	onFulfilled func(value interface{})
	onRejected  func(reason error)
}

// Deferred represents the eventual result of an operation that may not have
// completed yet. It settles at most once, either fulfilled with a value or
// rejected with a reason, and never changes state afterwards.
//
// A Deferred's fields are owned by the goroutine driving its Scheduler; see
// the package documentation for the threading model.
type Deferred struct {
	state       State
	value       interface{}
	err         error
	subscribers []subscriber
	handled     bool
	sched       Scheduler
}

// New creates a pending Deferred and synchronously runs setup with the two
// settlement entry points bound to it. The setup function may settle the
// Deferred before returning, later through the scheduler, or never. A panic
// escaping setup rejects the Deferred.
func New(s Scheduler, setup func(resolve func(value interface{}), reject func(reason error))) *Deferred {
	if nil == s {
		panic("deferred: missing scheduler")
	}
	if nil == setup {
		panic("deferred: missing setup function")
	}

	d := &Deferred{state: StatePending, sched: s}

	func() {
		defer func() {
			if v := recover(); nil != v {
				d.Reject(recovered(v))
			}
		}()

		setup(d.Resolve, d.Reject)
	}()

	return d
}

// Resolve wraps value in a Deferred. An existing *Deferred is returned
// unchanged; any other value goes through the resolution algorithm, so a
// Thenable is adopted rather than used as a plain result.
func Resolve(s Scheduler, value interface{}) *Deferred {
	if d, ok := value.(*Deferred); ok && nil != d {
		return d
	}

	if nil == s {
		panic("deferred: missing scheduler")
	}

	d := &Deferred{state: StatePending, sched: s}
	d.resolveValue(value)

	return d
}

// Reject creates a freshly rejected Deferred.
func Reject(s Scheduler, reason error) *Deferred {
	if nil == s {
		panic("deferred: missing scheduler")
	}

	d := &Deferred{state: StatePending, sched: s}
	d.settleRejected(reason)

	return d
}

func (d *Deferred) State() State {
	return d.state
}

// Resolve settles d with value through the resolution algorithm. It is a
// no-op once d has settled.
func (d *Deferred) Resolve(value interface{}) {
	d.resolveValue(value)
}

// Reject settles d with reason. It is a no-op once d has settled.
func (d *Deferred) Reject(reason error) {
	d.settleRejected(reason)
}

// Subscribe registers a callback pair for d's outcome. While d is pending the
// pair is queued and invoked in registration order at settlement; on a
// settled Deferred the matching branch runs immediately, on the caller's
// stack. Use Then for the guarantee that a callback never runs synchronously
// inside the registering call.
func (d *Deferred) Subscribe(onFulfilled func(value interface{}), onRejected func(reason error)) {
	if nil != onRejected {
		d.handled = true
	}

	switch d.state {
	case StatePending:
		d.subscribers = append(d.subscribers, subscriber{onFulfilled: onFulfilled, onRejected: onRejected})

	case StateFulfilled:
		if nil != onFulfilled {
			onFulfilled(d.value)
		}

	case StateRejected:
		if nil != onRejected {
			onRejected(d.err)
		}
	}
}

func (d *Deferred) settleFulfilled(value interface{}) {
	if StatePending != d.state {
		return
	}

	d.state = StateFulfilled
	d.value = value

	// Release the queue before draining so a callback that subscribes again
	// goes through the settled path.
	subs := d.subscribers
	d.subscribers = nil

	for _, sub := range subs {
		if nil != sub.onFulfilled {
			sub.onFulfilled(d.value)
		}
	}
}

func (d *Deferred) settleRejected(reason error) {
	if StatePending != d.state {
		return
	}

	d.state = StateRejected
	d.err = reason

	subs := d.subscribers
	d.subscribers = nil

	for _, sub := range subs {
		if nil != sub.onRejected {
			sub.onRejected(d.err)
		}
	}

	d.scheduleUnhandledCheck()
}

// resolveValue is the single entry point deciding whether a value fulfils d
// directly or must be unwrapped first. Synchronously settled thenables are
// unwrapped iteratively, so arbitrarily deep nesting does not grow the stack;
// a thenable that settles later re-enters resolveValue from its callback.
func (d *Deferred) resolveValue(value interface{}) {
	for {
		if StatePending != d.state {
			return
		}

		if same, ok := value.(*Deferred); ok && same == d {
			d.settleRejected(&SelfResolutionError{})
			return
		}

		thenable, ok := value.(Thenable)
		if !ok {
			d.settleFulfilled(value)
			return
		}

		var (
			adopting = true
			done     bool
			next     interface{}
			advanced bool
		)

		onFulfilled := func(v interface{}) {
			if done {
				return
			}
			done = true

			if adopting {
				next = v
				advanced = true
			} else {
				d.resolveValue(v)
			}
		}

		onRejected := func(reason error) {
			if done {
				return
			}
			done = true

			d.settleRejected(reason)
		}

		err := adopt(thenable, onFulfilled, onRejected)
		adopting = false

		// A panic out of Subscribe only counts if neither fresh callback ran
		// first; a callback that already fired keeps precedence.
		if nil != err && !done {
			done = true
			d.settleRejected(err)
			return
		}

		if !advanced {
			// Either rejected synchronously or the thenable will settle later.
			return
		}

		value = next
	}
}

func adopt(thenable Thenable, onFulfilled func(value interface{}), onRejected func(reason error)) (err error) {
	defer func() {
		if v := recover(); nil != v {
			err = recovered(v)
		}
	}()

	thenable.Subscribe(onFulfilled, onRejected)

	return nil
}
