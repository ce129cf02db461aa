package tracker

import "time"

// Clock supplies the current wall-clock time to the engine.
//
// Created/updated timestamps and the overdue predicate all read time
// through this interface, never through time.Now directly. Injecting a
// fixed clock makes overdue evaluation and timestamp assertions
// deterministic in tests; production uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
