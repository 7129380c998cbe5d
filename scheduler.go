package deferred

import (
	"sort"
	"time"
)

// Loop is a deterministic single-goroutine Scheduler: a FIFO "soon" queue
// plus a logical-clock timer queue. The soon queue is always drained before
// the next due timer fires, so work scheduled with ScheduleSoon runs ahead of
// any timer callback queued at the same instant.
//
// Loop is not safe for concurrent use. A multi-goroutine host must serialize
// all calls, including those made from within running callbacks.
type Loop struct {
	soon   []func()
	timers []loopTimer
	now    time.Duration
}

type loopTimer struct {
	due time.Duration
	fn  func()
}

func NewLoop() *Loop {
	return &Loop{}
}

// ScheduleSoon queues fn behind previously queued soon callbacks.
func (l *Loop) ScheduleSoon(fn func()) {
	l.soon = append(l.soon, fn)
}

// ScheduleAfter queues fn to run once the loop's logical clock has advanced
// by delay. Timers fire in due order; ties fire in submission order.
func (l *Loop) ScheduleAfter(delay time.Duration, fn func()) {
	due := l.now + delay

	idx := sort.Search(len(l.timers), func(i int) bool {
		return l.timers[i].due > due
	})

	l.timers = append(l.timers, loopTimer{})
	copy(l.timers[idx+1:], l.timers[idx:])
	l.timers[idx] = loopTimer{due: due, fn: fn}
}

// Run drains the loop until no work remains: all soon callbacks first, then
// the earliest timer, advancing the logical clock to its due time, and so on.
// Callbacks may queue further work; it is picked up in the same Run.
func (l *Loop) Run() {
	for {
		if len(l.soon) > 0 {
			fn := l.soon[0]
			l.soon = l.soon[1:]

			fn()
			continue
		}

		if 0 == len(l.timers) {
			return
		}

		timer := l.timers[0]
		l.timers = l.timers[1:]
		l.now = timer.due

		timer.fn()
	}
}
