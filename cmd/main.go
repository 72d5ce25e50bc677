package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoross/internal/app"
	"pomodoross/internal/config"
	"pomodoross/internal/core/activity"
	"pomodoross/internal/core/breaker"
	"pomodoross/internal/core/timing"
	"pomodoross/internal/platform"
	"pomodoross/internal/settings"
	"pomodoross/internal/storage"
	"pomodoross/internal/ui/effects"
	"pomodoross/internal/ui/overlay"
	"pomodoross/internal/ui/tray"
)

const (
	appName = "PomodoroSS"
	appID   = "com.pomodoross.app"
	version = "0.3.0"

	deviceActiveWithin = 2 * time.Second
	deviceRefresh      = time.Second
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Println(err)
			return
		}
		log.Printf("pomodoross: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	options, err := config.Parse(args)
	if err != nil {
		return err
	}
	if options.Version {
		fmt.Printf("%s %s\n", appName, version)
		return nil
	}

	settingsPath, err := storage.ResolvePath(appName, options.Config)
	if err != nil {
		return err
	}
	current, err := storage.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	options.Apply(&current)
	if err := current.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if options.WriteConfig {
		if err := storage.SaveSettings(settingsPath, current); err != nil {
			return err
		}
		log.Printf("settings: written to %s", settingsPath)
		return nil
	}

	guard, err := platform.AcquireSingleInstance(appName)
	switch {
	case errors.Is(err, platform.ErrPortInUse):
		log.Printf("single instance: %v; running without the lock", err)
	case err != nil:
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	loop := newLoop(current)

	if options.Headless {
		return runHeadless(loop)
	}
	return runDesktop(loop, current)
}

func newLoop(current settings.Settings) *app.Loop {
	clock := timing.NewClock(nil)

	activityConfig := current.ActivityConfig()
	monitor := activity.New(activityConfig.Capacity, activity.NewWeightTable(activityConfig.Weights))
	monitor.SetNow(clock.Now)

	scheduler := breaker.New(current.SchedulerConfig())
	loopConfig := current.LoopConfig()
	loop := app.New(loopConfig, clock, monitor, scheduler, nil)

	idleProvider := platform.NewIdleProvider()
	if _, err := idleProvider.IdleDuration(); err != nil {
		log.Printf("activity: idle detection unavailable, idle reset disabled: %v", err)
		return loop
	}
	devices := platform.NewDeviceSource(idleProvider, deviceActiveWithin, deviceRefresh)
	loop.SetDeviceSource(devices)
	if loopConfig.Idle.ResetEnabled {
		loop.SetIdleChecker(devices)
	}
	return loop
}

func runHeadless(loop *app.Loop) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("pomodoross: running headless")
	return loop.Run(ctx)
}

func runDesktop(loop *app.Loop, current settings.Settings) error {
	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform, running headless")
		return runHeadless(loop)
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Pomodoro SS is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)
	desktopApp.SetSystemTrayIcon(theme.HistoryIcon())

	overlayConfig := overlay.DefaultConfig()
	overlayWindow := overlay.New(fyneApp, overlayConfig)
	trayManager := tray.New(desktopApp, loop.Commands())
	loop.SetEffects(effects.New(overlayWindow, trayManager, fyneApp))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		loopErr <- err
		fyne.Do(fyneApp.Quit)
	}()

	log.Printf("pomodoross: work %s, break %s", current.WorkDuration, current.BreakDuration)
	fyneApp.Run()

	cancel()
	select {
	case err := <-loopErr:
		return err
	case <-time.After(2 * time.Second):
		return errors.New("loop did not stop")
	}
}
