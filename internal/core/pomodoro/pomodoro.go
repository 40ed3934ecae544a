package pomodoro

import (
	"strconv"
	"time"

	"pomodoro/internal/core/model"
)

// View holds the values produced for a single frame.
type View struct {
	Label    string
	Progress float32
	Next     State
}

// Timer computes per-frame display values for a fixed work duration.
type Timer struct {
	config model.TimerConfig
}

// New creates a Timer. A non-positive work duration falls back to the default.
func New(config model.TimerConfig) *Timer {
	if config.WorkDuration <= 0 {
		config.WorkDuration = model.DefaultWorkDuration
	}
	return &Timer{config: config}
}

// WorkDuration returns the configured session length.
func (timer *Timer) WorkDuration() time.Duration {
	return timer.config.WorkDuration
}

// Progress returns elapsed running time as a fraction of the work duration.
// The result is not clamped and exceeds 1 once the session has elapsed.
func (timer *Timer) Progress(state State, now time.Time) float32 {
	if !state.IsRunning() {
		return 0
	}
	return float32(elapsed(state, now).Seconds()) / float32(timer.config.WorkDuration.Seconds())
}

// Render runs one frame: it derives the label and progress for state at now
// and returns the state to use for the next frame.
func (timer *Timer) Render(state State, now time.Time, startTriggered bool) View {
	view := View{
		Progress: timer.Progress(state, now),
		Next:     state,
	}

	if !state.IsRunning() {
		view.Label = FormatDuration(uint64(timer.config.WorkDuration / time.Second))
		view.Next = Idle()
		if startTriggered {
			view.Next = Running(now)
		}
		return view
	}

	view.Label = FormatDuration(ElapsedSeconds(state, now))
	view.Next = Running(state.Start)
	return view
}

// ElapsedSeconds returns whole seconds since the state started running.
func ElapsedSeconds(state State, now time.Time) uint64 {
	if !state.IsRunning() {
		return 0
	}
	return uint64(elapsed(state, now) / time.Second)
}

// FormatDuration renders seconds as "minutes:seconds" without zero padding,
// so 65 becomes "1:5".
func FormatDuration(seconds uint64) string {
	return strconv.FormatUint(seconds/60, 10) + ":" + strconv.FormatUint(seconds%60, 10)
}

func elapsed(state State, now time.Time) time.Duration {
	delta := now.Sub(state.Start)
	if delta < 0 {
		return 0
	}
	return delta
}
