package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/minigold/core"
)

// task is a deferred one-shot callback bound to an owning entity
type task struct {
	id    core.TaskID
	owner core.Entity
	due   time.Duration
	fn    func()
}

// Scheduler runs one-shot callbacks against simulated time
// Not safe for concurrent use; owned by the simulation thread under the world lock
// Tasks fire in due order, ties broken by scheduling order
type Scheduler struct {
	now    time.Duration
	nextID core.TaskID
	tasks  []task // Sorted by (due, id)
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now returns the scheduler's simulated clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// ScheduleOnce registers fn to run once after delay of simulated time
// Negative delay is treated as zero; the task runs on the next Advance
func (s *Scheduler) ScheduleOnce(owner core.Entity, delay time.Duration, fn func()) core.TaskID {
	if delay < 0 {
		delay = 0
	}
	t := task{
		id:    s.nextID,
		owner: owner,
		due:   s.now + delay,
		fn:    fn,
	}
	s.nextID++

	// Insert after every task due at or before t.due
	idx := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due > t.due
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[idx+1:], s.tasks[idx:])
	s.tasks[idx] = t

	return t.id
}

// Cancel removes a pending task, returns false if it already ran or never existed
func (s *Scheduler) Cancel(id core.TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner removes every pending task owned by the entity
// Returns the number of tasks removed
func (s *Scheduler) CancelOwner(owner core.Entity) int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.owner == owner {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	// Release closures held by the truncated tail
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = task{}
	}
	s.tasks = kept
	return removed
}

// Pending reports whether the task is still scheduled
func (s *Scheduler) Pending(id core.TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			return true
		}
	}
	return false
}

// PendingCount returns the number of scheduled tasks
func (s *Scheduler) PendingCount() int {
	return len(s.tasks)
}

// Advance moves the clock forward by dt and runs every task now due
// Callbacks may schedule or cancel tasks; a newly scheduled task that is already due runs in the same call
// Returns the number of callbacks executed
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].due <= s.now {
		t := s.tasks[0]
		s.tasks[0] = task{}
		s.tasks = s.tasks[1:]
		t.fn()
		ran++
	}
	return ran
}

// Clear drops all pending tasks and rewinds the clock
func (s *Scheduler) Clear() {
	s.tasks = nil
	s.now = 0
}
