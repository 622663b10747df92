package core

import "time"

// TimerID identifies a callback registered with a Scheduler.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	gen uint64
	fn  func()
}

// Scheduler runs deferred callbacks against a game clock that only moves
// when Advance is called. Every callback is stamped with the generation that
// was current when it was scheduled; Invalidate bumps the generation, and
// callbacks from an older generation are dropped instead of run.
//
// Scheduler is not safe for concurrent use. Games drive it from their
// Step method, which the platform calls from a single goroutine.
type Scheduler struct {
	now    time.Duration
	gen    uint64
	nextID TimerID
	timers []timer
}

// NewScheduler creates an empty scheduler at clock zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After registers fn to run once the clock has advanced by d.
// Callbacks with equal due times run in registration order.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{
		id:  s.nextID,
		due: s.now + max(0, d),
		gen: s.gen,
		fn:  fn,
	})
	return s.nextID
}

// Cancel removes a pending callback. Returns false if it already ran,
// was cancelled, or was discarded by Invalidate.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Invalidate starts a new generation and drops every pending callback.
func (s *Scheduler) Invalidate() {
	s.gen++
	s.timers = nil
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward by dt and runs every callback that came
// due, earliest first. A callback may schedule further callbacks; those run
// in the same call if they fall due before the new clock value. Returns the
// number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + max(0, dt)
	ran := 0

	for {
		idx := s.earliestDue(target)
		if idx < 0 {
			break
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		s.now = t.due

		// A callback from an earlier generation is stale.
		if t.gen != s.gen {
			continue
		}
		t.fn()
		ran++
	}

	s.now = target
	return ran
}

// earliestDue returns the index of the earliest timer due at or before
// target, or -1. Ties go to the lowest id.
func (s *Scheduler) earliestDue(target time.Duration) int {
	idx := -1
	for i, t := range s.timers {
		if t.due > target {
			continue
		}
		if idx < 0 || t.due < s.timers[idx].due ||
			(t.due == s.timers[idx].due && t.id < s.timers[idx].id) {
			idx = i
		}
	}
	return idx
}
