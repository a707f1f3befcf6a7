package timekeeper

import (
	"context"
	"regexp"
	"strconv"
	"testing"
	"time"

	"chronotimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakeStart = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

func countdownConfig(interval time.Duration, unit string, precision int) model.TimerConfig {
	return model.TimerConfig{
		Target:    "2030-01-01 00:00:05",
		Interval:  interval,
		Precision: precision,
		Unit:      unit,
		Mode:      model.ModeCountdown,
	}
}

func waitDone(t *testing.T, keeper *TimeKeeper) {
	t.Helper()
	select {
	case <-keeper.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timer loop did not stop")
	}
}

func drain(stream *ResultStream) []Result {
	var results []Result
	for {
		result, ok := stream.Poll()
		if !ok {
			return results
		}
		results = append(results, result)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(countdownConfig(0, "ms", 0), Options{})
	assert.ErrorIs(t, err, model.ErrInvalidInterval)

	_, _, err = Start(context.Background(), countdownConfig(time.Second, "ms", -1), Options{})
	assert.ErrorIs(t, err, model.ErrInvalidPrecision)
}

func TestNewStartsRunning(t *testing.T) {
	keeper, err := New(countdownConfig(time.Second, "ms", 0), Options{})
	require.NoError(t, err)
	assert.Equal(t, StateRunning, keeper.Status().State)
}

func TestCountdownMillisecondsDecreasing(t *testing.T) {
	clock := newFakeClock(fakeStart, 6)
	keeper, err := New(countdownConfig(time.Second, "ms", 0), Options{Clock: clock})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	require.Eventually(t, func() bool { return clock.Sleeps() == 6 }, time.Second, time.Millisecond)
	cancel.Cancel()
	waitDone(t, keeper)

	results := drain(stream)
	texts := make([]string, 0, len(results))
	for _, result := range results {
		assert.Equal(t, ResultValue, result.Kind)
		texts = append(texts, result.Text)
	}
	assert.Equal(t, []string{"5000", "3400", "2600", "1800", "1000"}, texts)

	previous := 1e18
	for _, text := range texts {
		value, err := strconv.ParseFloat(text, 64)
		require.NoError(t, err)
		assert.Less(t, value, previous)
		previous = value
	}
	assert.Equal(t, ReasonUserCancelled, keeper.Status().Reason)
}

func TestCountdownUnitAndPrecision(t *testing.T) {
	clock := newFakeClock(fakeStart, 0)
	config := countdownConfig(time.Second, "s", 3)
	config.Target = "2030-01-01 08:00:05"
	config.ZoneOffset = 8 * time.Hour
	keeper, err := New(config, Options{Clock: clock})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	require.Eventually(t, func() bool { return stream.pending() == 1 }, time.Second, time.Millisecond)
	cancel.Cancel()
	waitDone(t, keeper)

	result, ok := stream.Poll()
	require.True(t, ok)
	assert.Equal(t, "5.000", result.Text)
}

func TestDriftAnchoredSchedule(t *testing.T) {
	clock := newFakeClock(fakeStart, 200)
	clock.jitter = func(sleep int) time.Duration {
		return time.Duration(sleep%6) * 10 * time.Millisecond
	}
	interval := 100 * time.Millisecond
	keeper, err := New(countdownConfig(interval, "ms", 0), Options{Clock: clock})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	require.Eventually(t, func() bool { return clock.Sleeps() == 200 }, time.Second, time.Millisecond)
	cancel.Cancel()
	waitDone(t, keeper)

	results := drain(stream)
	require.Greater(t, len(results), 50)
	for index, result := range results {
		assert.Equal(t, int64(index), result.Tick)
		assert.Equal(t, fakeStart.Add(time.Duration(result.Tick)*interval), result.Due)
		assert.False(t, result.At.Before(result.Due))
	}
	assert.Equal(t, fakeStart.Add(50*100*time.Millisecond), results[50].Due)
}

func TestStallWorksOffOverdueSlotsOnePerWake(t *testing.T) {
	clock := newFakeClock(fakeStart, 4)
	clock.jitter = func(sleep int) time.Duration {
		if sleep == 0 {
			return time.Second
		}
		return 0
	}
	keeper, err := New(countdownConfig(100*time.Millisecond, "ms", 0), Options{Clock: clock})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	require.Eventually(t, func() bool { return stream.pending() == 5 }, time.Second, time.Millisecond)
	cancel.Cancel()
	waitDone(t, keeper)

	results := drain(stream)
	require.Len(t, results, 5)
	seen := map[time.Time]bool{}
	for index, result := range results {
		assert.Equal(t, int64(index), result.Tick)
		assert.False(t, seen[result.At], "two results computed on one wake")
		seen[result.At] = true
	}
	assert.Greater(t, results[1].At.Sub(results[1].Due), 100*time.Millisecond)
}

func TestFatalInvalidUnit(t *testing.T) {
	config := countdownConfig(20*time.Millisecond, "xx", 0)
	keeper, err := New(config, Options{})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	waitDone(t, keeper)
	time.Sleep(50 * time.Millisecond)

	results := drain(stream)
	require.Len(t, results, 1)
	assert.Equal(t, ResultFatal, results[0].Kind)
	assert.Equal(t, "invalid unit: 'xx'", results[0].Text)
	assert.True(t, stream.Finished())
	assert.True(t, cancel.Cancelled())

	status := keeper.Status()
	assert.Equal(t, StateStopped, status.State)
	assert.Equal(t, ReasonFatalError, status.Reason)
	assert.Equal(t, "invalid unit: 'xx'", status.Message)
}

func TestStartReportsParseFailure(t *testing.T) {
	config := countdownConfig(20*time.Millisecond, "d", 2)
	config.Target = "2025/11/22"
	stream, cancel, err := Start(context.Background(), config, Options{})
	require.NoError(t, err)

	var result Result
	require.Eventually(t, func() bool {
		var ok bool
		result, ok = stream.Poll()
		return ok
	}, 2*time.Second, 5*time.Millisecond)

	assert.True(t, result.IsFatal())
	assert.Equal(t, int64(0), result.Tick)
	require.Eventually(t, stream.Finished, 2*time.Second, 5*time.Millisecond)
	assert.True(t, cancel.Cancelled())
}

func TestFatalResultText(t *testing.T) {
	config := countdownConfig(20*time.Millisecond, "d", 2)
	config.Target = "2025/11/22"
	keeper, err := New(config, Options{})
	require.NoError(t, err)

	stream, _ := keeper.Start(context.Background())
	waitDone(t, keeper)

	results := drain(stream)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsFatal())
	assert.Contains(t, results[0].Text, "Failed to parse target time")
}

func TestClockModeWithoutSeconds(t *testing.T) {
	clock := newFakeClock(fakeStart.Add(13*time.Hour+7*time.Minute+42*time.Second), 3)
	config := model.TimerConfig{Interval: time.Second, Mode: model.ModeClock, ShowSeconds: false, Unit: "ignored"}
	keeper, err := New(config, Options{Clock: clock})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	require.Eventually(t, func() bool { return clock.Sleeps() == 3 }, time.Second, time.Millisecond)
	cancel.Cancel()
	waitDone(t, keeper)

	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)
	results := drain(stream)
	require.NotEmpty(t, results)
	for _, result := range results {
		assert.Regexp(t, pattern, result.Text)
	}
	assert.Equal(t, "2030-01-01 13:07", results[0].Text)
}

func TestClockModeWithSeconds(t *testing.T) {
	assert.Equal(t, "2030-01-01 00:00:00", FormatClock(fakeStart, true))
	assert.Equal(t, "2030-01-01 00:00", FormatClock(fakeStart, false))
}

func TestCancellationStopsEmission(t *testing.T) {
	keeper, err := New(model.TimerConfig{Interval: 50 * time.Millisecond, Mode: model.ModeClock}, Options{})
	require.NoError(t, err)

	stream, cancel := keeper.Start(context.Background())
	require.Eventually(t, func() bool { return stream.pending() >= 2 }, 2*time.Second, 5*time.Millisecond)

	cancelled := time.Now()
	cancel.Cancel()
	cancel.Cancel()
	waitDone(t, keeper)
	assert.Less(t, time.Since(cancelled), 500*time.Millisecond)

	produced := len(drain(stream))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, stream.pending())
	assert.Positive(t, produced)
	assert.True(t, stream.Finished())
	assert.Equal(t, ReasonUserCancelled, keeper.Status().Reason)
}

func TestContextCancellation(t *testing.T) {
	keeper, err := New(model.TimerConfig{Interval: 20 * time.Millisecond, Mode: model.ModeClock}, Options{})
	require.NoError(t, err)

	ctx, cancelCtx := context.WithCancel(context.Background())
	_, handle := keeper.Start(ctx)
	cancelCtx()
	waitDone(t, keeper)

	assert.True(t, handle.Cancelled())
	assert.Equal(t, StateStopped, keeper.Status().State)
	assert.Equal(t, ReasonUserCancelled, keeper.Status().Reason)
}

func TestStartIsIdempotent(t *testing.T) {
	keeper, err := New(model.TimerConfig{Interval: 20 * time.Millisecond, Mode: model.ModeClock}, Options{})
	require.NoError(t, err)

	first, firstCancel := keeper.Start(context.Background())
	second, secondCancel := keeper.Start(context.Background())
	assert.Same(t, first, second)
	assert.Same(t, firstCancel, secondCancel)

	firstCancel.Cancel()
	waitDone(t, keeper)
}
