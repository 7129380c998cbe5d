package deferred

// All returns a Deferred that fulfils with the entries' results, in entry
// order, once every entry has fulfilled, or rejects with the reason of the
// first entry to reject. The remaining entries still settle on their own;
// only the aggregate ignores them. No entries fulfils immediately with an
// empty sequence.
//
// Entries may be plain values, Thenables, or Deferreds; each is normalized
// through Resolve.
func All(s Scheduler, entries ...interface{}) *Deferred {
	results := make([]interface{}, len(entries))

	return New(s, func(resolve func(value interface{}), reject func(reason error)) {
		if 0 == len(entries) {
			resolve(results)
			return
		}

		remaining := len(entries)

		for idx, entry := range entries {
			idx := idx

			Resolve(s, entry).Then(
				func(value interface{}) (interface{}, error) {
					results[idx] = value
					remaining--

					if 0 == remaining {
						resolve(results)
					}

					return nil, nil
				},
				func(reason error) (interface{}, error) {
					reject(reason)

					return nil, nil
				},
			)
		}
	})
}

// Race returns a Deferred that adopts the outcome of whichever entry settles
// first, fulfilled or rejected, ignoring all others. With no entries the
// aggregate never settles.
func Race(s Scheduler, entries ...interface{}) *Deferred {
	return New(s, func(resolve func(value interface{}), reject func(reason error)) {
		for _, entry := range entries {
			Resolve(s, entry).Then(
				func(value interface{}) (interface{}, error) {
					resolve(value)

					return nil, nil
				},
				func(reason error) (interface{}, error) {
					reject(reason)

					return nil, nil
				},
			)
		}
	})
}

// AllSettled returns a Deferred that always fulfils, once every entry has
// settled, with one Outcome record per entry in entry order. No entries
// fulfils immediately with an empty sequence.
func AllSettled(s Scheduler, entries ...interface{}) *Deferred {
	outcomes := make([]Outcome, len(entries))

	return New(s, func(resolve func(value interface{}), reject func(reason error)) {
		if 0 == len(entries) {
			resolve(outcomes)
			return
		}

		remaining := len(entries)

		settle := func(idx int, outcome Outcome) {
			outcomes[idx] = outcome
			remaining--

			if 0 == remaining {
				resolve(outcomes)
			}
		}

		for idx, entry := range entries {
			idx := idx

			Resolve(s, entry).Then(
				func(value interface{}) (interface{}, error) {
					settle(idx, Outcome{State: StateFulfilled, Value: value})

					return nil, nil
				},
				func(reason error) (interface{}, error) {
					settle(idx, Outcome{State: StateRejected, Reason: reason})

					return nil, nil
				},
			)
		}
	})
}
