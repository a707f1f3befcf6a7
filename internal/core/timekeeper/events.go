package timekeeper

import "time"

// State represents the TimerLoop lifecycle.
type State string

const (
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// StopReason explains why the loop reached StateStopped. It is empty while running.
type StopReason string

const (
	ReasonUserCancelled StopReason = "user_cancelled"
	ReasonFatalError    StopReason = "fatal_error"
)

// ResultKind distinguishes display values from terminal errors.
type ResultKind string

const (
	ResultValue ResultKind = "value"
	ResultFatal ResultKind = "fatal"
)

// Result is produced once per due tick and consumed once by a presenter.
type Result struct {
	Kind ResultKind
	Text string
	// Tick is the zero-based schedule slot this result was computed for.
	Tick int64
	// Due is loop start plus Tick intervals.
	Due time.Time
	At  time.Time
}

// IsFatal reports whether the result terminated the loop.
func (result Result) IsFatal() bool {
	return result.Kind == ResultFatal
}

// Status is a snapshot of the loop state.
type Status struct {
	State   State
	Reason  StopReason
	Message string
}

func valueResult(text string) Result {
	return Result{Kind: ResultValue, Text: text}
}

func fatalResult(text string) Result {
	return Result{Kind: ResultFatal, Text: text}
}
