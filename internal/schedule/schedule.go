// Package schedule provides cancellable periodic tasks. Each caller gets an
// explicit handle and is responsible for stopping it on teardown; no timer
// outlives its owner.
package schedule

import (
	"context"
	"time"
)

// Task is a handle to a running periodic job.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Every runs fn immediately and then once per interval until the task is
// stopped or the parent context is cancelled.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context)) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)

		fn(ctx)

		timer := time.NewTimer(interval)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				fn(ctx)
				timer.Reset(interval)
			}
		}
	}()

	return t
}

// Stop cancels the task and waits for the in-flight run, if any, to finish.
func (t *Task) Stop() {
	t.cancel()
	<-t.done
}
