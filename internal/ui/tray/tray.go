package tray

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"pomodoross/internal/app"
)

const (
	menuTitle      = "Pomodoro SS"
	shortSkip      = 5 * time.Minute
	longSkip       = 10 * time.Minute
	statusFallback = "starting..."
)

// Host shows a menu in the system tray. desktop.App satisfies it.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager rebuilds the tray menu for the current mode and forwards
// clicks to the loop without blocking the UI thread.
type Manager struct {
	host     Host
	commands chan<- app.Command
	mode     app.Mode
	status   string
	menu     *fyne.Menu
}

// New creates a tray manager in Normal mode and installs its menu.
func New(host Host, commands chan<- app.Command) *Manager {
	manager := &Manager{
		host:     host,
		commands: commands,
		mode:     app.ModeNormal,
	}
	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.status {
		return
	}
	manager.status = status
	manager.refreshMenu()
}

// SetMode switches the set of menu items.
func (manager *Manager) SetMode(mode app.Mode) {
	if mode == manager.mode {
		return
	}
	manager.mode = mode
	manager.refreshMenu()
}

// Mode returns the current mode.
func (manager *Manager) Mode() app.Mode {
	return manager.mode
}

// Menu returns the menu last installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu() {
	manager.menu = fyne.NewMenu(menuTitle, manager.menuItems()...)
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func (manager *Manager) menuItems() []*fyne.MenuItem {
	items := []*fyne.MenuItem{
		label(fmt.Sprintf("Mode: %s", modeLabel(manager.mode))),
		label(fmt.Sprintf("Status: %s", manager.statusText())),
	}
	if manager.mode != app.ModeNormal {
		return items
	}

	quit := fyne.NewMenuItem("Quit", manager.send(app.Quit()))
	quit.IsQuit = true

	return append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Restart work", manager.send(app.RestartWork())),
		fyne.NewMenuItem("Skip work 5 minutes", manager.send(app.SkipWork(shortSkip))),
		fyne.NewMenuItem("Restart work with 10 minutes", manager.send(app.SkipWork(longSkip))),
		fyne.NewMenuItemSeparator(),
		quit,
	)
}

func (manager *Manager) send(command app.Command) func() {
	return func() {
		if !app.TrySend(manager.commands, command) {
			log.Printf("tray: command dropped: %s", command.Kind)
		}
	}
}

func (manager *Manager) statusText() string {
	if manager.status == "" {
		return statusFallback
	}
	return manager.status
}

func label(text string) *fyne.MenuItem {
	item := fyne.NewMenuItem(text, nil)
	item.Disabled = true
	return item
}

func modeLabel(mode app.Mode) string {
	switch mode {
	case app.ModeInBreak:
		return "In break"
	case app.ModeRestricted:
		return "Restricted"
	default:
		return "Normal"
	}
}
