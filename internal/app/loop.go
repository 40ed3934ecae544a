package app

import "pomodoro/internal/core/timekeeper"

// Dispatcher runs fn on the UI goroutine, for example fyne.Do.
type Dispatcher func(fn func())

// Run forwards frame events to the controller until events is closed.
func (controller *Controller) Run(events <-chan timekeeper.Event, dispatch Dispatcher) {
	for event := range events {
		if event.Type != timekeeper.EventFrame {
			continue
		}
		dispatch(func() {
			controller.Tick()
		})
	}
}
