// Package deferred implements a deferred-value primitive: an object
// representing the eventual result of an operation, with JS-promise
// semantics expressed in Go.
//
// A Deferred is a three-state machine (pending, fulfilled, rejected) that
// settles at most once. Continuations attach with Then, Catch and Finally;
// they never run synchronously inside the attaching call but are handed to a
// Scheduler, the package's only environmental dependency. Resolution unwraps
// nested Thenable values until a plain result or a rejection is reached.
// All, Race and AllSettled aggregate several deferreds into one.
//
// The execution model is single-threaded and cooperative: a Deferred's state
// belongs to the goroutine driving its Scheduler, and no operation blocks.
// Nothing in this package takes a lock; a host that touches a Deferred from
// several goroutines must serialize access itself, treating settlement plus
// the subscriber drain as one critical section. The Loop type is a
// deterministic in-process Scheduler suitable for such single-goroutine
// hosts and for tests.
package deferred
