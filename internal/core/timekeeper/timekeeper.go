package timekeeper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chronotimer/internal/core/chrono"
	"chronotimer/internal/core/model"
)

const (
	ClockLayout          = "2006-01-02 15:04:05"
	ClockLayoutNoSeconds = "2006-01-02 15:04"
)

// Options contains runtime collaborators for TimeKeeper.
type Options struct {
	Clock  Clock
	Logger *slog.Logger
}

// TimeKeeper drives a drift-compensated countdown or clock loop.
type TimeKeeper struct {
	mu      sync.Mutex
	config  model.TimerConfig
	options Options
	state   State
	reason  StopReason
	message string
	started bool
	stream  *ResultStream
	cancel  *CancelHandle
	done    chan struct{}
}

// New creates a TimeKeeper in StateRunning for a validated config.
func New(config model.TimerConfig, options Options) (*TimeKeeper, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("timer config: %w", err)
	}
	if options.Clock == nil {
		options.Clock = RealClock()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	return &TimeKeeper{
		config:  config,
		options: options,
		state:   StateRunning,
		stream:  newResultStream(),
		cancel:  newCancelHandle(),
		done:    make(chan struct{}),
	}, nil
}

// Start validates config and launches a TimeKeeper on a background goroutine.
func Start(ctx context.Context, config model.TimerConfig, options Options) (*ResultStream, *CancelHandle, error) {
	keeper, err := New(config, options)
	if err != nil {
		return nil, nil, err
	}
	stream, cancel := keeper.Start(ctx)
	return stream, cancel, nil
}

// Start launches the loop. Cancelling ctx has the same effect as the handle.
// Repeated calls return the same stream and handle.
func (keeper *TimeKeeper) Start(ctx context.Context) (*ResultStream, *CancelHandle) {
	keeper.mu.Lock()
	if keeper.started {
		keeper.mu.Unlock()
		return keeper.stream, keeper.cancel
	}
	keeper.started = true
	keeper.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				keeper.cancel.Cancel()
			case <-keeper.done:
			}
		}()
	}

	keeper.options.Logger.Debug("timer loop starting",
		"mode", keeper.config.Mode,
		"interval", keeper.config.Interval,
		"unit", keeper.config.Unit,
		"precision", keeper.config.Precision)

	go keeper.run()
	return keeper.stream, keeper.cancel
}

// Status returns the current state and stop reason.
func (keeper *TimeKeeper) Status() Status {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Status{
		State:   keeper.state,
		Reason:  keeper.reason,
		Message: keeper.message,
	}
}

// Done is closed when the loop has stopped.
func (keeper *TimeKeeper) Done() <-chan struct{} {
	return keeper.done
}

func (keeper *TimeKeeper) run() {
	clock := keeper.options.Clock
	interval := keeper.config.Interval
	sleep := keeper.config.PollInterval()
	if sleep <= 0 {
		sleep = interval
	}

	start := clock.Now()
	var tick int64
	for {
		if keeper.cancel.Cancelled() {
			keeper.stop(ReasonUserCancelled, "")
			return
		}

		now := clock.Now()
		due := start.Add(time.Duration(tick) * interval)
		// One result per wake. Overdue slots are worked off one per wake.
		if !now.Before(due) {
			result := keeper.compute(now)
			result.Tick = tick
			result.Due = due
			result.At = now
			tick++

			if keeper.cancel.Cancelled() {
				keeper.stop(ReasonUserCancelled, "")
				return
			}
			keeper.stream.push(result)
			if result.IsFatal() {
				keeper.stop(ReasonFatalError, result.Text)
				return
			}
		}

		select {
		case <-keeper.cancel.Done():
		case <-clock.After(sleep):
		}
	}
}

func (keeper *TimeKeeper) compute(now time.Time) Result {
	if keeper.config.Mode == model.ModeClock {
		return valueResult(FormatClock(now, keeper.config.ShowSeconds))
	}

	target, err := chrono.TargetMillis(keeper.config.Target, keeper.config.ZoneOffset)
	if err != nil {
		return fatalResult(fmt.Sprintf("Failed to parse target time: %v", err))
	}
	delta := float64(target - now.UnixMilli())
	formatted, err := chrono.FormatDelta(delta, chrono.Unit(keeper.config.Unit), keeper.config.Precision)
	if err != nil {
		return fatalResult(err.Error())
	}
	return valueResult(formatted)
}

func (keeper *TimeKeeper) stop(reason StopReason, message string) {
	keeper.mu.Lock()
	keeper.state = StateStopped
	keeper.reason = reason
	keeper.message = message
	keeper.mu.Unlock()

	keeper.cancel.Cancel()
	keeper.stream.close()
	keeper.options.Logger.Debug("timer loop stopped", "reason", reason)
	close(keeper.done)
}

// FormatClock renders now for clock mode.
func FormatClock(now time.Time, showSeconds bool) string {
	if showSeconds {
		return now.Format(ClockLayout)
	}
	return now.Format(ClockLayoutNoSeconds)
}
