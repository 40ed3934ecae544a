package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Config defines main window visuals.
type Config struct {
	Title  string
	Width  float32
	Height float32
}

// Window is the single timer screen: heading, progress bar, duration label
// and a start button that is only present while idle.
type Window struct {
	window        fyne.Window
	heading       *widget.Label
	progress      *widget.ProgressBar
	durationLabel *widget.Label
	startButton   *widget.Button
	onStart       func()
}

// New creates the main window. Closing it quits the application.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetMaster()

	heading := widget.NewLabelWithStyle(config.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	heading.SizeName = theme.SizeNameHeadingText

	progress := widget.NewProgressBar()
	durationLabel := widget.NewLabel("")
	startButton := widget.NewButton("Start", nil)
	startButton.Importance = widget.HighImportance

	window.SetContent(container.NewVBox(heading, progress, durationLabel, startButton))

	mainWindow := &Window{
		window:        window,
		heading:       heading,
		progress:      progress,
		durationLabel: durationLabel,
		startButton:   startButton,
	}
	startButton.OnTapped = func() {
		if mainWindow.onStart != nil {
			mainWindow.onStart()
		}
	}

	if config.Width > 0 && config.Height > 0 {
		window.Resize(fyne.NewSize(config.Width, config.Height))
	}
	return mainWindow
}

// SetOnStart sets the start handler.
func (mainWindow *Window) SetOnStart(handler func()) {
	mainWindow.onStart = handler
}

// SetLabel updates the duration text.
func (mainWindow *Window) SetLabel(text string) {
	if mainWindow.durationLabel.Text == text {
		return
	}
	mainWindow.durationLabel.SetText(text)
}

// SetProgress feeds the raw fraction to the progress bar, which clamps the
// fill to its own range.
func (mainWindow *Window) SetProgress(fraction float32) {
	mainWindow.progress.SetValue(float64(fraction))
}

// SetRunning hides the start button once the countdown is running.
func (mainWindow *Window) SetRunning(running bool) {
	if running {
		mainWindow.startButton.Hide()
		return
	}
	mainWindow.startButton.Show()
}

// Show displays and focuses the window.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// HideOnClose keeps the process alive in the system tray when the window
// is closed.
func (mainWindow *Window) HideOnClose() {
	mainWindow.window.SetCloseIntercept(mainWindow.window.Hide)
}

// Fyne returns the underlying fyne window.
func (mainWindow *Window) Fyne() fyne.Window {
	return mainWindow.window
}
