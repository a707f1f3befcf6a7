package timekeeper

import "sync"

// ResultStream is an unbounded FIFO handing results from the loop to a presenter.
type ResultStream struct {
	mu     sync.Mutex
	queue  []Result
	closed bool
}

func newResultStream() *ResultStream {
	return &ResultStream{}
}

func (stream *ResultStream) push(result Result) {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	if stream.closed {
		return
	}
	stream.queue = append(stream.queue, result)
}

func (stream *ResultStream) close() {
	stream.mu.Lock()
	stream.closed = true
	stream.mu.Unlock()
}

// Poll returns the oldest pending result without blocking.
func (stream *ResultStream) Poll() (Result, bool) {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	if len(stream.queue) == 0 {
		return Result{}, false
	}
	result := stream.queue[0]
	stream.queue[0] = Result{}
	stream.queue = stream.queue[1:]
	if len(stream.queue) == 0 {
		stream.queue = nil
	}
	return result, true
}

func (stream *ResultStream) pending() int {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	return len(stream.queue)
}

// Finished reports whether the producer stopped and every result was consumed.
func (stream *ResultStream) Finished() bool {
	stream.mu.Lock()
	defer stream.mu.Unlock()
	return stream.closed && len(stream.queue) == 0
}
