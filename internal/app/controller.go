// Package app runs the per-frame update that connects the timer to the UI.
package app

import (
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/logger"
)

// View receives the values computed for each frame.
type View interface {
	SetLabel(text string)
	SetProgress(fraction float32)
	SetRunning(running bool)
}

// Status mirrors the timer in secondary surfaces such as the system tray.
type Status interface {
	SetStatus(text string)
	SetRunning(running bool)
}

// Controller owns the timer state. All methods must be called from the UI
// goroutine.
type Controller struct {
	timer  *pomodoro.Timer
	clock  pomodoro.Clock
	view   View
	status Status
	log    *logger.Logger
	state  pomodoro.State
}

// NewController creates a controller in the idle state.
func NewController(timer *pomodoro.Timer, clock pomodoro.Clock, view View, log *logger.Logger) *Controller {
	if clock == nil {
		clock = pomodoro.SystemClock
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		timer: timer,
		clock: clock,
		view:  view,
		log:   log,
		state: pomodoro.Idle(),
	}
}

// SetStatus attaches an optional status surface.
func (controller *Controller) SetStatus(status Status) {
	controller.status = status
}

// State returns the current timer state.
func (controller *Controller) State() pomodoro.State {
	return controller.state
}

// Frame runs one update. startTriggered reports whether the start action
// fired during this frame.
func (controller *Controller) Frame(startTriggered bool) pomodoro.View {
	now := controller.clock.Now()
	view := controller.timer.Render(controller.state, now, startTriggered)

	if !controller.state.IsRunning() && view.Next.IsRunning() {
		controller.log.Infow("pomodoro started",
			"start", view.Next.Start,
			"work_duration", controller.timer.WorkDuration(),
		)
	}

	if controller.view != nil {
		controller.view.SetLabel(view.Label)
		controller.view.SetProgress(view.Progress)
		controller.view.SetRunning(view.Next.IsRunning())
	}
	if controller.status != nil {
		controller.status.SetStatus(view.Label)
		controller.status.SetRunning(view.Next.IsRunning())
	}

	controller.state = view.Next
	return view
}

// Tick runs a frame with no input.
func (controller *Controller) Tick() pomodoro.View {
	return controller.Frame(false)
}

// Start runs a frame carrying the start action.
func (controller *Controller) Start() pomodoro.View {
	return controller.Frame(true)
}
