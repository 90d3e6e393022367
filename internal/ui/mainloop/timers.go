package mainloop

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled timer.
type TimerID uint64

// Action is what a timer callback decides after running.
type Action struct {
	again bool
	at    time.Time
}

// Stop drops the timer.
func Stop() Action {
	return Action{}
}

// ContinueAt reschedules the timer at an explicit instant.
func ContinueAt(at time.Time) Action {
	return Action{again: true, at: at}
}

// Continues reports whether the timer is rescheduled, and when.
func (a Action) Continues() (time.Time, bool) {
	return a.at, a.again
}

// TimerFunc is a timer callback. now is the loop time the timer ran at.
type TimerFunc func(now time.Time) Action

type timer struct {
	id       TimerID
	deadline time.Time
	fn       TimerFunc
}

// Timers is a deadline-ordered timer queue for a single-threaded loop.
// Timers with equal deadlines run in insertion order.
type Timers struct {
	queue  []timer
	nextID TimerID
}

func NewTimers() *Timers {
	return &Timers{}
}

// Insert schedules fn at deadline.
func (t *Timers) Insert(deadline time.Time, fn TimerFunc) TimerID {
	t.nextID++
	t.push(timer{id: t.nextID, deadline: deadline, fn: fn})
	return t.nextID
}

func (t *Timers) push(tm timer) {
	i := sort.Search(len(t.queue), func(i int) bool {
		return t.queue[i].deadline.After(tm.deadline)
	})
	t.queue = append(t.queue, timer{})
	copy(t.queue[i+1:], t.queue[i:])
	t.queue[i] = tm
}

// Cancel removes a pending timer. It returns false if the timer already
// finished or never existed.
func (t *Timers) Cancel(id TimerID) bool {
	for i := range t.queue {
		if t.queue[i].id == id {
			t.queue = append(t.queue[:i], t.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Scheduled reports whether id is still queued.
func (t *Timers) Scheduled(id TimerID) bool {
	for i := range t.queue {
		if t.queue[i].id == id {
			return true
		}
	}
	return false
}

// Next returns the earliest deadline.
func (t *Timers) Next() (time.Time, bool) {
	if len(t.queue) == 0 {
		return time.Time{}, false
	}
	return t.queue[0].deadline, true
}

// Len returns the number of queued timers.
func (t *Timers) Len() int {
	return len(t.queue)
}

// RunDue runs the earliest timer if its deadline is not after now. Only one
// timer runs per call. A rescheduled timer keeps its ID.
func (t *Timers) RunDue(now time.Time) bool {
	if len(t.queue) == 0 || t.queue[0].deadline.After(now) {
		return false
	}

	tm := t.queue[0]
	t.queue = t.queue[1:]

	if at, again := tm.fn(now).Continues(); again {
		tm.deadline = at
		t.push(tm)
	}
	return true
}
