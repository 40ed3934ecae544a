package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnQuit  func()
}

// Icons are swapped when the timer starts.
type Icons struct {
	Idle    fyne.Resource
	Running fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app         App
	icons       Icons
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	menu        *fyne.Menu
	running     bool
	statusLabel string
}

// New creates a tray manager and installs its menu and idle icon.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem("Show", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})

	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("Pomodoro", manager.statusItem, show, manager.startItem, fyne.NewMenuItemSeparator(), quit)
	app.SetSystemTrayMenu(manager.menu)
	if icons.Idle != nil {
		app.SetSystemTrayIcon(icons.Idle)
	}

	return manager
}

// SetStatus updates the status label. Unchanged labels are not re-sent.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning disables the start entry and switches the icon.
func (manager *Manager) SetRunning(running bool) {
	if running == manager.running {
		return
	}
	manager.running = running
	manager.startItem.Disabled = running

	icon := manager.icons.Idle
	if running {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
