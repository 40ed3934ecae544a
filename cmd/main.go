package main

import (
	"errors"
	"fmt"
	"os"

	"pomodoro/internal/app"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logger"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomodoro"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	settings, settingsErr := storage.LoadSettings(appName)
	log := logger.Get(settings.LogLevel)
	defer func() {
		_ = log.Sync()
	}()
	if settingsErr != nil {
		log.Warnw("using default settings", "error", settingsErr)
	}

	guard, err := acquireInstance(platform.AcquireSingleInstance, log)
	if err != nil {
		return err
	}
	if guard == nil {
		return nil
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := fyneapp.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustLogo(resources.LogoRunning))

	mainWindow := window.New(fyneApp, window.Config{
		Title:  appName,
		Width:  settings.WindowWidth,
		Height: settings.WindowHeight,
	})

	timer := pomodoro.New(model.DefaultTimerConfig())
	controller := app.NewController(timer, pomodoro.SystemClock, mainWindow, log)
	mainWindow.SetOnStart(func() {
		controller.Start()
	})

	if settings.SystemTray {
		wireTray(fyneApp, mainWindow, controller, log)
	}

	keeper := timekeeper.New(timekeeper.Config{FrameInterval: settings.FrameInterval})
	events := keeper.Subscribe(1)
	go controller.Run(events, fyne.Do)

	fyneApp.Lifecycle().SetOnStarted(func() {
		log.Infow("pomodoro ready",
			"work_duration", timer.WorkDuration(),
			"frame_interval", keeper.FrameInterval(),
		)
		keeper.Start()
	})

	controller.Tick()
	mainWindow.Show()
	fyneApp.Run()

	keeper.Stop()
	log.Infow("pomodoro stopped")
	return nil
}

type instanceAcquirer func(appName string) (*platform.InstanceGuard, error)

// acquireInstance returns a nil guard and no error when another timer is
// already running, so a second launch exits cleanly.
func acquireInstance(acquire instanceAcquirer, log *logger.Logger) (*platform.InstanceGuard, error) {
	guard, err := acquire(appName)
	if err == nil {
		return guard, nil
	}
	if errors.Is(err, platform.ErrAlreadyRunning) {
		log.Infow("another instance is running, exiting", "error", err)
		return nil, nil
	}
	log.Errorw("single instance", "error", err)
	return nil, fmt.Errorf("acquire single instance: %w", err)
}

func wireTray(fyneApp fyne.App, mainWindow *window.Window, controller *app.Controller, log *logger.Logger) {
	start := func() {
		controller.Start()
	}
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Infow("system tray unsupported on this platform")
		return
	}

	trayManager := tray.New(desktopApp, tray.Icons{
		Idle:    resources.MustLogo(resources.LogoIdle),
		Running: resources.MustLogo(resources.LogoRunning),
	}, tray.Callbacks{
		OnShow:  mainWindow.Show,
		OnStart: start,
		OnQuit:  fyneApp.Quit,
	})
	controller.SetStatus(trayManager)
	mainWindow.HideOnClose()
}
