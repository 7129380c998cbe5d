package deferred

// State names the settlement phase of a Deferred. Transitions are monotonic:
// a Deferred leaves StatePending at most once and never re-enters it.
type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

type FulfillHandler func(value interface{}) (result interface{}, err error)
type RejectHandler func(reason error) (result interface{}, err error)
type FinallyHandler func() (result interface{}, err error)

// Scheduler is the only environmental dependency of this package. ScheduleSoon
// runs fn after the current synchronous execution unit finishes and before any
// timer-based callback queued at the same instant, preserving submission order
// among callbacks scheduled this way.
type Scheduler interface {
	ScheduleSoon(fn func())
}

// Thenable is the capability a value must expose for the resolution algorithm
// to adopt its eventual outcome instead of treating it as a plain result.
// *Deferred implements it; foreign deferred-like values may too.
//
// An implementation must eventually invoke one of the two callbacks.
// Misbehaving implementations (both branches, repeated invocations) are
// tolerated: only the first invocation takes effect on the adopting Deferred.
type Thenable interface {
	Subscribe(onFulfilled func(value interface{}), onRejected func(reason error))
}

// Deferrer is the full surface of a Deferred.
type Deferrer interface {
	Thenable
	Then(onFulfilled FulfillHandler, onRejected RejectHandler) *Deferred
	Catch(onRejected RejectHandler) *Deferred
	Finally(onSettled FinallyHandler) *Deferred
	Resolve(value interface{})
	Reject(reason error)
	State() State
}

// Outcome records how a single entry settled, for AllSettled aggregates.
// Value is meaningful when State is StateFulfilled, Reason when StateRejected.
type Outcome struct {
	State  State
	Value  interface{}
	Reason error
}
