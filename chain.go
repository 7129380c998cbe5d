package deferred

// Then returns a new Deferred whose outcome is derived from running a handler
// against d's outcome. Either handler may be nil: a missing onFulfilled
// passes the value through, a missing onRejected propagates the reason. A
// handler's normal return resolves the child (so a returned Thenable is
// adopted); an error return, or a panic, rejects it.
//
// Handlers run through the scheduler, strictly after the caller of Then has
// returned control, even when d is already settled. Chains attached to the
// same parent settle in attachment order.
func (d *Deferred) Then(onFulfilled FulfillHandler, onRejected RejectHandler) *Deferred {
	child := &Deferred{state: StatePending, sched: d.sched}

	d.Subscribe(
		func(value interface{}) {
			d.sched.ScheduleSoon(func() {
				if nil == onFulfilled {
					child.resolveValue(value)
					return
				}

				child.complete(invoke(func() (interface{}, error) {
					return onFulfilled(value)
				}))
			})
		},
		func(reason error) {
			d.sched.ScheduleSoon(func() {
				if nil == onRejected {
					child.settleRejected(reason)
					return
				}

				child.complete(invoke(func() (interface{}, error) {
					return onRejected(reason)
				}))
			})
		},
	)

	return child
}

// Catch is shorthand for Then(nil, onRejected).
func (d *Deferred) Catch(onRejected RejectHandler) *Deferred {
	return d.Then(nil, onRejected)
}

// Finally runs onSettled once d settles, regardless of how, and passes the
// original outcome through to the returned Deferred. Two things take
// precedence over the original outcome: an error returned (or panicked) by
// onSettled, and a Thenable returned by it, whose own resolution or failure
// replaces the outcome entirely.
func (d *Deferred) Finally(onSettled FinallyHandler) *Deferred {
	if nil == onSettled {
		return d.Then(nil, nil)
	}

	return d.Then(
		func(value interface{}) (interface{}, error) {
			result, err := onSettled()
			if nil != err {
				return nil, err
			}

			if _, ok := result.(Thenable); ok {
				return result, nil
			}

			return value, nil
		},
		func(reason error) (interface{}, error) {
			result, err := onSettled()
			if nil != err {
				return nil, err
			}

			if _, ok := result.(Thenable); ok {
				return result, nil
			}

			return nil, reason
		},
	)
}

func (d *Deferred) complete(result interface{}, err error) {
	if nil != err {
		d.settleRejected(err)
	} else {
		d.resolveValue(result)
	}
}

func invoke(handler func() (interface{}, error)) (result interface{}, err error) {
	defer func() {
		if v := recover(); nil != v {
			result, err = nil, recovered(v)
		}
	}()

	return handler()
}
