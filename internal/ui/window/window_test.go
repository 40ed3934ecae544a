package window

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	return New(app, Config{Title: "Pomodoro", Width: 320, Height: 160})
}

func TestNewShowsIdleLayout(t *testing.T) {
	mainWindow := newTestWindow(t)

	assert.Equal(t, "Pomodoro", mainWindow.heading.Text)
	assert.Equal(t, "Pomodoro", mainWindow.Fyne().Title())
	assert.Equal(t, "Start", mainWindow.startButton.Text)
	assert.True(t, mainWindow.startButton.Visible())
	assert.Equal(t, 0.0, mainWindow.progress.Value)
}

func TestStartButtonInvokesHandler(t *testing.T) {
	mainWindow := newTestWindow(t)

	taps := 0
	mainWindow.SetOnStart(func() { taps++ })
	test.Tap(mainWindow.startButton)
	test.Tap(mainWindow.startButton)

	assert.Equal(t, 2, taps)
}

func TestTapWithoutHandlerIsSafe(t *testing.T) {
	mainWindow := newTestWindow(t)
	assert.NotPanics(t, func() { test.Tap(mainWindow.startButton) })
}

func TestViewUpdates(t *testing.T) {
	mainWindow := newTestWindow(t)

	mainWindow.SetLabel("1:5")
	mainWindow.SetProgress(0.5)
	assert.Equal(t, "1:5", mainWindow.durationLabel.Text)
	assert.InDelta(t, 0.5, mainWindow.progress.Value, 1e-6)

	mainWindow.SetProgress(1.25)
	assert.InDelta(t, 1.25, mainWindow.progress.Value, 1e-6)

	mainWindow.SetRunning(true)
	assert.False(t, mainWindow.startButton.Visible())
	mainWindow.SetRunning(false)
	assert.True(t, mainWindow.startButton.Visible())
}
