package sim

import (
	"sort"
	"time"
)

// Scheduler advances a logical clock in fixed ticks and runs periodic
// tasks and delayed effects against it. It never reads wall-clock time.
type Scheduler struct {
	tick    time.Duration
	now     time.Duration
	tasks   []*periodicTask
	queue   []delayedEffect
	seq     uint64
	stopped bool
}

type periodicTask struct {
	name   string
	period time.Duration
	next   time.Duration
	fn     func()
}

type delayedEffect struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewScheduler creates a scheduler whose clock moves by tick per Advance.
func NewScheduler(tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = time.Second / 60
	}
	return &Scheduler{tick: tick}
}

// Now returns the current logical time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Tick returns the base tick length.
func (s *Scheduler) Tick() time.Duration {
	return s.tick
}

// Every registers a periodic task. Tasks run in registration order and
// at most once per Advance, the first time one period after registration.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) {
	if period <= 0 {
		period = s.tick
	}
	s.stopped = false
	s.tasks = append(s.tasks, &periodicTask{
		name:   name,
		period: period,
		next:   s.now + period,
		fn:     fn,
	})
}

// After queues fn to run once delay has elapsed on the logical clock.
// Effects with equal deadlines run in the order they were queued.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	e := delayedEffect{at: s.now + max(delay, 0), seq: s.seq, fn: fn}
	s.seq++

	i := sort.Search(len(s.queue), func(i int) bool {
		q := s.queue[i]
		return q.at > e.at || (q.at == e.at && q.seq > e.seq)
	})
	s.queue = append(s.queue, delayedEffect{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = e
}

// Advance moves the clock by one tick, fires due delayed effects and
// then runs every due periodic task.
func (s *Scheduler) Advance() {
	s.now += s.tick

	for len(s.queue) > 0 && s.queue[0].at <= s.now {
		e := s.queue[0]
		s.queue = s.queue[1:]
		e.fn()
	}

	// Snapshot so tasks registered or stopped mid-advance do not disturb iteration
	tasks := s.tasks
	for _, t := range tasks {
		if s.stopped {
			return
		}
		if s.now < t.next {
			continue
		}
		t.fn()
		t.next += t.period
		if t.next <= s.now {
			t.next = s.now + t.period
		}
	}
}

// StopAll cancels every periodic task at once. Delayed effects stay
// queued; their callbacks are expected to check world state.
func (s *Scheduler) StopAll() {
	s.tasks = nil
	s.stopped = true
}

// Stopped reports whether StopAll was called since the last registration.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Reset clears all periodic tasks and delayed effects and rewinds the clock.
func (s *Scheduler) Reset() {
	s.tasks = nil
	s.queue = nil
	s.now = 0
	s.seq = 0
	s.stopped = false
}

// Tasks returns the names of registered periodic tasks in run order.
func (s *Scheduler) Tasks() []string {
	names := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		names[i] = t.name
	}
	return names
}

// Pending returns the number of queued delayed effects.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}
