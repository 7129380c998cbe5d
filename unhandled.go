package deferred

import "github.com/go-logr/logr"

var unhandledLogger = logr.Discard()

// SetLogger installs the logger used to report rejections that settle without
// any rejection branch attached. The default logger discards reports. Install
// a sink before scheduling work; the logger is package-wide and not
// synchronized.
func SetLogger(logger logr.Logger) {
	unhandledLogger = logger
}

// scheduleUnhandledCheck defers the unhandled-rejection decision by one
// scheduler slot, giving callers that reject and attach a handler within the
// same synchronous unit a chance to suppress the report.
func (d *Deferred) scheduleUnhandledCheck() {
	if d.handled || nil == d.sched {
		return
	}

	d.sched.ScheduleSoon(func() {
		if !d.handled {
			unhandledLogger.Info("unhandled rejection", "reason", d.err)
		}
	})
}
