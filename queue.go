package loupe

// Scheduler runs work on a later tick, outside the caller's stack.
type Scheduler interface {
	Defer(fn func())
}

// TaskQueue is a zero-delay Scheduler. Tasks run, in order, when the owner
// calls RunPending; tasks deferred while running wait for the next call.
type TaskQueue struct {
	pending []func()
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Defer queues fn.
func (q *TaskQueue) Defer(fn func()) {
	if fn != nil {
		q.pending = append(q.pending, fn)
	}
}

// Len returns the number of queued tasks.
func (q *TaskQueue) Len() int {
	return len(q.pending)
}

// RunPending runs the tasks queued before the call and returns how many ran.
func (q *TaskQueue) RunPending() int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = nil
	for i, fn := range batch {
		batch[i] = nil
		fn()
	}
	return len(batch)
}
