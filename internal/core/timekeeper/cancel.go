package timekeeper

import (
	"sync"
	"sync/atomic"
)

// CancelHandle is the only way to stop a running TimerLoop from outside.
type CancelHandle struct {
	flag atomic.Bool
	once sync.Once
	done chan struct{}
}

func newCancelHandle() *CancelHandle {
	return &CancelHandle{done: make(chan struct{})}
}

// Cancel sets the flag. Calling it more than once is a no-op.
func (handle *CancelHandle) Cancel() {
	handle.once.Do(func() {
		handle.flag.Store(true)
		close(handle.done)
	})
}

// Cancelled reports whether Cancel has been called.
func (handle *CancelHandle) Cancelled() bool {
	return handle.flag.Load()
}

// Done is closed once Cancel has been called.
func (handle *CancelHandle) Done() <-chan struct{} {
	return handle.done
}
