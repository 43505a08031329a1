// Package sched owns the repeating refresh ticks of the application.
//
// Each [Group] has at most one active repeat. [Scheduler.Every] cancels the
// group's previous repeat before installing the new one, so callers never
// have to remember to clear an old interval first. Cancellation works by
// generation: a [TickMsg] from a replaced or cancelled repeat is rejected by
// [Scheduler.Accept] and never rescheduled.
package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Group identifies a subsystem that owns one refresh loop.
type Group int

const (
	GroupClock Group = iota
	GroupTimer
)

func (g Group) String() string {
	switch g {
	case GroupClock:
		return "clock"
	case GroupTimer:
		return "timer"
	}
	return "unknown"
}

// TickMsg is delivered to the program when a repeat fires.
type TickMsg struct {
	Group Group
	Gen   uint64
	At    time.Time
}

type task struct {
	gen      uint64
	interval time.Duration
	active   bool
}

// Scheduler tracks the active repeat of every group. It is used from the
// program's update loop only and does no locking.
type Scheduler struct {
	tasks map[Group]*task
}

func New() *Scheduler {
	return &Scheduler{tasks: make(map[Group]*task)}
}

func (s *Scheduler) task(g Group) *task {
	t, ok := s.tasks[g]
	if !ok {
		t = &task{}
		s.tasks[g] = t
	}
	return t
}

// Every replaces the group's repeat with one firing every interval and
// returns the command that schedules its first tick.
func (s *Scheduler) Every(g Group, interval time.Duration) tea.Cmd {
	t := s.task(g)
	t.gen++
	t.interval = interval
	t.active = true
	return tick(g, t.gen, interval)
}

// Cancel stops the group's repeat. Pending ticks are dropped on arrival.
func (s *Scheduler) Cancel(g Group) {
	t := s.task(g)
	if !t.active {
		return
	}
	t.gen++
	t.active = false
}

// Active reports whether the group has a live repeat.
func (s *Scheduler) Active(g Group) bool {
	t, ok := s.tasks[g]
	return ok && t.active
}

// Interval returns the period of the group's repeat, or zero if inactive.
func (s *Scheduler) Interval(g Group) time.Duration {
	if !s.Active(g) {
		return 0
	}
	return s.tasks[g].interval
}

// Accept reports whether msg belongs to the group's current repeat.
func (s *Scheduler) Accept(msg TickMsg) bool {
	t, ok := s.tasks[msg.Group]
	return ok && t.active && t.gen == msg.Gen
}

// Next schedules the tick following msg, or returns nil if msg is stale.
func (s *Scheduler) Next(msg TickMsg) tea.Cmd {
	if !s.Accept(msg) {
		return nil
	}
	t := s.tasks[msg.Group]
	return tick(msg.Group, t.gen, t.interval)
}

func tick(g Group, gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return TickMsg{Group: g, Gen: gen, At: at}
	})
}
