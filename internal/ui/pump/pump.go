// Package pump polls a result stream on a fixed cadence without blocking and
// hands the newest result to a renderer.
package pump

import (
	"context"
	"time"

	"chronotimer/internal/core/timekeeper"
)

// Source is the consumer side of a timekeeper.ResultStream.
type Source interface {
	Poll() (timekeeper.Result, bool)
	Finished() bool
}

// DrainLatest consumes every pending result and returns the newest one.
// A fatal result is returned in preference to values queued before it.
func DrainLatest(source Source) (timekeeper.Result, bool) {
	var latest timekeeper.Result
	found := false
	for {
		result, ok := source.Poll()
		if !ok {
			return latest, found
		}
		latest = result
		found = true
	}
}

// Run polls source every interval until ctx ends or the stream is finished.
// render runs on the polling goroutine; GUI callers marshal it themselves.
func Run(ctx context.Context, source Source, every time.Duration, render func(timekeeper.Result)) {
	if every <= 0 {
		every = time.Millisecond
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		if result, ok := DrainLatest(source); ok {
			render(result)
		}
		if source.Finished() {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
