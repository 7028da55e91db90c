package maskinput

// Scheduler runs follow-up work on a later turn of the UI loop.
type Scheduler interface {
	Defer(task func())
}

// TaskQueue is a FIFO Scheduler drained explicitly by the owner of the loop.
type TaskQueue struct {
	tasks []func()
}

func (q *TaskQueue) Defer(task func()) {
	if task == nil {
		return
	}
	q.tasks = append(q.tasks, task)
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int { return len(q.tasks) }

// Run executes the tasks queued before the call. Tasks deferred while
// running wait for the next Run.
func (q *TaskQueue) Run() int {
	tasks := q.tasks
	q.tasks = nil
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
