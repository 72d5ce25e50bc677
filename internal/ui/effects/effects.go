package effects

import (
	"fyne.io/fyne/v2"

	"pomodoross/internal/app"
)

// Overlay covers the screen during a blocking break.
type Overlay interface {
	Show()
	Hide()
	SetStatus(status string)
}

// Tray shows the mode and status in the system tray.
type Tray interface {
	SetMode(mode app.Mode)
	SetStatus(status string)
}

// Notifier sends desktop notifications. fyne.App satisfies it.
type Notifier interface {
	SendNotification(notification *fyne.Notification)
}

// Desktop applies loop effects to fyne surfaces. The loop runs on its own
// goroutine, so every call is marshalled onto the fyne main goroutine.
type Desktop struct {
	overlay  Overlay
	tray     Tray
	notifier Notifier
	run      func(func())
}

// New creates the adapter. Any collaborator may be nil.
func New(overlay Overlay, tray Tray, notifier Notifier) *Desktop {
	return &Desktop{
		overlay:  overlay,
		tray:     tray,
		notifier: notifier,
		run:      fyne.Do,
	}
}

// BlockInput shows or hides the overlay.
func (desktop *Desktop) BlockInput(block bool) error {
	if desktop.overlay == nil {
		return nil
	}
	desktop.run(func() {
		if block {
			desktop.overlay.Show()
			return
		}
		desktop.overlay.Hide()
	})
	return nil
}

// Notify sends a desktop notification.
func (desktop *Desktop) Notify(summary, body string) error {
	if desktop.notifier == nil {
		return nil
	}
	notification := fyne.NewNotification(summary, body)
	desktop.run(func() {
		desktop.notifier.SendNotification(notification)
	})
	return nil
}

// SetMode switches the tray menu.
func (desktop *Desktop) SetMode(mode app.Mode) {
	if desktop.tray == nil {
		return
	}
	desktop.run(func() {
		desktop.tray.SetMode(mode)
	})
}

// SetStatus updates the tray and overlay status lines.
func (desktop *Desktop) SetStatus(status string) {
	desktop.run(func() {
		if desktop.tray != nil {
			desktop.tray.SetStatus(status)
		}
		if desktop.overlay != nil {
			desktop.overlay.SetStatus(status)
		}
	})
}
