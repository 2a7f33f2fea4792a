package alert

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_RunsSubmittedTasks(t *testing.T) {
	d := NewDispatcher(8, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	var ran atomic.Int32
	executed := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		ok := d.Submit(func(context.Context) {
			ran.Add(1)
			executed <- struct{}{}
		})
		if !ok {
			t.Fatal("expected submission to succeed")
		}
	}

	for i := 0; i < 3; i++ {
		select {
		case <-executed:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for task execution")
		}
	}
	if got := ran.Load(); got != 3 {
		t.Errorf("expected 3 tasks run, got %d", got)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop on context cancellation")
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	// No worker running: the queue fills up and further submissions drop.
	d := NewDispatcher(2, testLogger())

	if !d.Submit(func(context.Context) {}) {
		t.Fatal("expected first submission to succeed")
	}
	if !d.Submit(func(context.Context) {}) {
		t.Fatal("expected second submission to succeed")
	}
	if d.Submit(func(context.Context) {}) {
		t.Fatal("expected third submission to be dropped")
	}
}

func TestDispatcher_SurvivesPanickingTask(t *testing.T) {
	d := NewDispatcher(4, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Submit(func(context.Context) { panic("boom") })

	executed := make(chan struct{})
	d.Submit(func(context.Context) { close(executed) })

	select {
	case <-executed:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive a panicking task")
	}
}
