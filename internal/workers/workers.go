package workers

// Workers aggregates background workers so the application can start and
// stop them as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts workers down in reverse registration order, blocking until
// each has exited.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
