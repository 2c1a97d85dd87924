package scheduler

import (
	"time"
)

// Func is a scheduled callback. now is the time of the tick that runs it.
type Func func(now time.Time)

// Handle identifies a scheduled callback and cancels it.
type Handle struct {
	id uint64
	s  *Scheduler
}

// Cancel stops the callback. Cancelling twice, or cancelling the zero
// Handle, is a no-op.
func (h Handle) Cancel() {
	if h.s != nil {
		h.s.Cancel(h)
	}
}

// Active reports whether the callback is still scheduled.
func (h Handle) Active() bool {
	if h.s == nil {
		return false
	}
	_, ok := h.s.entries[h.id]
	return ok
}

type entry struct {
	id       uint64
	fn       Func
	interval time.Duration
	next     time.Time
}

// Scheduler runs frame callbacks and fixed interval callbacks from a single
// host loop that calls Tick once per frame. It is not safe for concurrent use.
type Scheduler struct {
	clock   Clock
	nextID  uint64
	entries map[uint64]*entry
	order   []uint64
	closed  bool
}

func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{
		clock:   clock,
		entries: make(map[uint64]*entry),
	}
}

func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// RequestFrame runs fn once on the next Tick. A callback that requests another
// frame from inside Tick runs on the following Tick, not the current one.
func (s *Scheduler) RequestFrame(fn Func) Handle {
	return s.add(&entry{fn: fn})
}

// Every runs fn on each Tick at least d after its previous run. A loop that
// falls behind runs fn once and realigns instead of catching up.
func (s *Scheduler) Every(d time.Duration, fn Func) Handle {
	if d <= 0 {
		return Handle{}
	}
	return s.add(&entry{fn: fn, interval: d, next: s.clock.Now().Add(d)})
}

func (s *Scheduler) add(e *entry) Handle {
	if s.closed || e.fn == nil {
		return Handle{}
	}
	s.nextID++
	e.id = s.nextID
	s.entries[e.id] = e
	s.order = append(s.order, e.id)
	return Handle{id: e.id, s: s}
}

func (s *Scheduler) Cancel(h Handle) {
	delete(s.entries, h.id)
}

// Tick runs every due callback once, in registration order.
func (s *Scheduler) Tick() {
	now := s.clock.Now()

	due := s.order
	s.order = nil
	kept := make([]uint64, 0, len(due))

	for _, id := range due {
		e, ok := s.entries[id]
		if !ok {
			continue
		}

		if e.interval == 0 {
			delete(s.entries, id)
			e.fn(now)
			continue
		}

		kept = append(kept, id)
		if now.Before(e.next) {
			continue
		}
		e.next = e.next.Add(e.interval)
		if !e.next.After(now) {
			e.next = now.Add(e.interval)
		}
		e.fn(now)
	}

	if s.closed {
		s.order = nil
		return
	}
	s.order = append(kept, s.order...)
}

// Pending is the number of callbacks still scheduled.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// Close cancels everything; later registrations are ignored.
func (s *Scheduler) Close() {
	s.closed = true
	s.entries = make(map[uint64]*entry)
	s.order = nil
}
