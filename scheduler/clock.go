package scheduler

import "time"

// Clock is the time source of a Scheduler.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
