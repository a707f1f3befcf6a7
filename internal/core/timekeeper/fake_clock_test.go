package timekeeper

import (
	"sync"
	"time"
)

// fakeClock advances its time on every After call. Once limit sleeps have
// happened After never fires, parking the loop until it is cancelled.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps int
	limit  int
	jitter func(sleep int) time.Duration
}

func newFakeClock(start time.Time, limit int) *fakeClock {
	return &fakeClock{now: start, limit: limit}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) After(d time.Duration) <-chan time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.sleeps >= clock.limit {
		return nil
	}
	extra := time.Duration(0)
	if clock.jitter != nil {
		extra = clock.jitter(clock.sleeps)
	}
	clock.sleeps++
	clock.now = clock.now.Add(d + extra)

	ch := make(chan time.Time, 1)
	ch <- clock.now
	return ch
}

func (clock *fakeClock) Sleeps() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.sleeps
}
