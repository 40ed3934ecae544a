package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logger"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) {
	clock.now = clock.now.Add(delta)
}

type recordingView struct {
	label    string
	progress float32
	running  bool
	status   string
}

func (view *recordingView) SetLabel(text string)         { view.label = text }
func (view *recordingView) SetProgress(fraction float32) { view.progress = fraction }
func (view *recordingView) SetRunning(running bool)      { view.running = running }
func (view *recordingView) SetStatus(text string)        { view.status = text }

func newTestController(t *testing.T) (*Controller, *fakeClock, *recordingView, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	clock := &fakeClock{now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
	view := &recordingView{}
	controller := NewController(pomodoro.New(model.DefaultTimerConfig()), clock, view, log)
	return controller, clock, view, logs
}

func TestControllerScenario(t *testing.T) {
	controller, clock, view, logs := newTestController(t)
	status := &recordingView{}
	controller.SetStatus(status)

	controller.Tick()
	assert.Equal(t, "25:0", view.label)
	assert.Equal(t, float32(0), view.progress)
	assert.False(t, view.running)
	assert.Equal(t, "25:0", status.status)

	clock.Advance(3 * time.Second)
	startedAt := clock.now
	controller.Start()
	require.True(t, controller.State().IsRunning())
	assert.True(t, controller.State().Start.Equal(startedAt))
	assert.True(t, view.running)
	assert.True(t, status.running)
	require.Equal(t, 1, logs.FilterMessage("pomodoro started").Len())

	clock.Advance(65 * time.Second)
	controller.Tick()
	assert.Equal(t, "1:5", view.label)
	assert.InDelta(t, 0.0433, view.progress, 1e-4)
	assert.Equal(t, "1:5", status.status)

	clock.Advance(1435 * time.Second)
	controller.Tick()
	assert.Equal(t, "25:0", view.label)
	assert.InDelta(t, 1.0, view.progress, 1e-6)

	clock.Advance(100 * time.Second)
	controller.Tick()
	assert.Equal(t, "26:40", view.label)
	assert.InDelta(t, 1.0667, view.progress, 1e-4)
	assert.True(t, controller.State().Start.Equal(startedAt))
}

func TestSecondStartIsIgnored(t *testing.T) {
	controller, clock, _, logs := newTestController(t)

	controller.Start()
	first := controller.State().Start

	clock.Advance(time.Minute)
	controller.Start()
	assert.True(t, controller.State().Start.Equal(first))
	assert.Equal(t, 1, logs.FilterMessage("pomodoro started").Len())
}

func TestControllerDefaults(t *testing.T) {
	controller := NewController(pomodoro.New(model.DefaultTimerConfig()), nil, nil, nil)
	view := controller.Tick()
	assert.Equal(t, "25:0", view.Label)
	assert.False(t, controller.State().IsRunning())
}

func TestRunDispatchesFrames(t *testing.T) {
	controller, clock, view, _ := newTestController(t)
	controller.Start()
	clock.Advance(65 * time.Second)

	events := make(chan timekeeper.Event, 2)
	events <- timekeeper.Event{Type: timekeeper.EventFrame, At: clock.now}
	events <- timekeeper.Event{Type: "other"}
	close(events)

	dispatched := 0
	controller.Run(events, func(fn func()) {
		dispatched++
		fn()
	})

	assert.Equal(t, 1, dispatched)
	assert.Equal(t, "1:5", view.label)
}
