package timer

import "time"

// Handle cancels a scheduled callback.
type Handle interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was stopped.
	Stop() bool
}

// Scheduler invokes a callback once after a delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Handle
}

// RealScheduler schedules callbacks on the wall clock.
type RealScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (RealScheduler) AfterFunc(delay time.Duration, fn func()) Handle {
	return time.AfterFunc(delay, fn)
}
