package runner

import (
	"sync"

	"github.com/katalvlaran/supernode/config"
)

// Unit is one self-contained experiment handed to a worker.
type Unit struct {
	Index      int
	Experiment config.Experiment
	// Err marks a unit whose definition could not be read. It is reported
	// as failed and never executed.
	Err error
}

// Queue hands out units in order. Pop is the only critical section.
type Queue struct {
	mu    sync.Mutex
	units []Unit
	next  int
}

// NewQueue numbers experiments in order and queues them.
func NewQueue(exps []config.Experiment) *Queue {
	units := make([]Unit, len(exps))
	for i, e := range exps {
		units[i] = Unit{Index: i, Experiment: e}
	}
	return &Queue{units: units}
}

// Push queues one more experiment, or a failed placeholder when err is
// non-nil. Push before Run.
func (q *Queue) Push(e config.Experiment, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.units = append(q.units, Unit{Index: len(q.units), Experiment: e, Err: err})
}

// Pop claims the next unit; ok is false once the queue is drained.
func (q *Queue) Pop() (u Unit, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.next >= len(q.units) {
		return Unit{}, false
	}
	u = q.units[q.next]
	q.next++

	return u, true
}

// Len reports how many units were queued in total.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.units)
}
