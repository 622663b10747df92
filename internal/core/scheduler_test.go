package core

import (
	"testing"
	"time"
)

func TestSchedulerRunsWhenDue(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(500*time.Millisecond, func() { fired++ })

	if n := s.Advance(499 * time.Millisecond); n != 0 || fired != 0 {
		t.Fatalf("callback ran early: n=%d fired=%d", n, fired)
	}
	if n := s.Advance(time.Millisecond); n != 1 || fired != 1 {
		t.Fatalf("callback should run exactly at its due time: n=%d fired=%d", n, fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after run, expected 0", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(1000*time.Millisecond, func() { order = append(order, "late") })
	s.After(500*time.Millisecond, func() { order = append(order, "early") })
	s.After(500*time.Millisecond, func() { order = append(order, "early-2") })

	s.Advance(2 * time.Second)

	expected := []string{"early", "early-2", "late"}
	if len(order) != len(expected) {
		t.Fatalf("ran %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
}

func TestSchedulerClockDuringCallback(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(300*time.Millisecond, func() { seen = s.Now() })

	s.Advance(time.Second)

	if seen != 300*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 300ms", seen)
	}
	if s.Now() != time.Second {
		t.Errorf("Now() after Advance = %v, expected 1s", s.Now())
	}
}

func TestSchedulerNestedSchedule(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(100*time.Millisecond, func() {
		s.After(100*time.Millisecond, func() { fired++ })
	})

	if n := s.Advance(250 * time.Millisecond); n != 2 {
		t.Errorf("Advance ran %d callbacks, expected 2", n)
	}
	if fired != 1 {
		t.Errorf("nested callback fired %d times, expected 1", fired)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel should report success for a pending callback")
	}
	if s.Cancel(id) {
		t.Error("Cancel twice should report false")
	}

	s.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled callback ran")
	}
}

func TestSchedulerInvalidate(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(time.Second, func() { fired++ })
	s.After(2*time.Second, func() { fired++ })

	gen := s.Generation()
	s.Invalidate()

	if s.Generation() != gen+1 {
		t.Errorf("Generation() = %d, expected %d", s.Generation(), gen+1)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Invalidate, expected 0", s.Pending())
	}

	s.Advance(5 * time.Second)
	if fired != 0 {
		t.Errorf("stale callbacks ran %d times", fired)
	}

	s.After(time.Second, func() { fired++ })
	s.Advance(time.Second)
	if fired != 1 {
		t.Errorf("callback from the new generation should run, fired=%d", fired)
	}
}

func TestSchedulerInvalidateFromCallback(t *testing.T) {
	s := NewScheduler()
	later := false
	s.After(100*time.Millisecond, func() { s.Invalidate() })
	s.After(200*time.Millisecond, func() { later = true })

	s.Advance(time.Second)
	if later {
		t.Error("callback scheduled before Invalidate must not run")
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(-time.Second, func() { fired = true })

	s.Advance(0)
	if !fired {
		t.Error("negative delay should be treated as due immediately")
	}
}

func TestInterval(t *testing.T) {
	iv := NewInterval(150 * time.Millisecond)

	tests := []struct {
		dt       time.Duration
		expected int
	}{
		{100 * time.Millisecond, 0},
		{50 * time.Millisecond, 1},  // 150 total
		{299 * time.Millisecond, 1}, // 299 carried, one period used
		{1 * time.Millisecond, 1},   // remainder reaches 150
		{450 * time.Millisecond, 3},
		{0, 0},
		{-time.Second, 0},
	}

	for i, tc := range tests {
		if got := iv.Advance(tc.dt); got != tc.expected {
			t.Errorf("step %d: Advance(%v) = %d, expected %d", i, tc.dt, got, tc.expected)
		}
	}
}

func TestIntervalReset(t *testing.T) {
	iv := NewInterval(time.Second)
	iv.Advance(900 * time.Millisecond)
	iv.Reset()

	if got := iv.Advance(200 * time.Millisecond); got != 0 {
		t.Errorf("Reset should discard partial progress, got %d periods", got)
	}
}

func TestIntervalZeroPeriod(t *testing.T) {
	iv := NewInterval(0)
	if got := iv.Advance(time.Hour); got != 0 {
		t.Errorf("zero period should never fire, got %d", got)
	}
}
