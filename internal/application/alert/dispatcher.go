// Package alert contains the notification monitors and the asynchronous
// dispatcher they run on. Delivery is best-effort: alerts must never fail or
// slow down the operation that triggered them.
package alert

import (
	"context"
	"log/slog"
)

// DefaultQueueSize is the dispatcher's task buffer size.
const DefaultQueueSize = 256

// Task is a unit of alert work executed by the dispatcher worker.
type Task func(ctx context.Context)

// Dispatcher is a buffered-channel work queue with a single worker goroutine.
// Submission never blocks: when the queue is full the task is dropped and the
// drop is logged.
type Dispatcher struct {
	tasks  chan Task
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher with the given queue size.
// A size below 1 falls back to DefaultQueueSize.
func NewDispatcher(queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		tasks:  make(chan Task, queueSize),
		logger: logger,
	}
}

// Submit enqueues a task without blocking. Returns false when the queue is
// full and the task was dropped.
func (d *Dispatcher) Submit(task Task) bool {
	select {
	case d.tasks <- task:
		return true
	default:
		d.logger.Warn("alert queue full, dropping task")
		return false
	}
}

// Run consumes tasks until the context is cancelled. A panicking task is
// logged and does not take the worker down.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("alert dispatcher started", "queue_size", cap(d.tasks))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("alert dispatcher stopping")
			return
		case task := <-d.tasks:
			d.runTask(ctx, task)
		}
	}
}

func (d *Dispatcher) runTask(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("alert task panicked", "panic", r)
		}
	}()
	task(ctx)
}
