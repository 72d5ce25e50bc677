package tray

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoross/internal/app"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func labels(menu *fyne.Menu) []string {
	result := make([]string, 0, len(menu.Items))
	for _, item := range menu.Items {
		if item.IsSeparator {
			continue
		}
		result = append(result, item.Label)
	}
	return result
}

func findItem(t *testing.T, menu *fyne.Menu, text string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == text {
			return item
		}
	}
	require.Failf(t, "menu item not found", "%q", text)
	return nil
}

func TestNormalMenu(t *testing.T) {
	host := &fakeHost{}
	New(host, make(chan app.Command, 1))

	require.Len(t, host.menus, 1)
	assert.Equal(t, []string{
		"Mode: Normal",
		"Status: starting...",
		"Restart work",
		"Skip work 5 minutes",
		"Restart work with 10 minutes",
		"Quit",
	}, labels(host.menus[0]))
}

func TestMenuItemsSendCommands(t *testing.T) {
	tests := []struct {
		item string
		want app.Command
	}{
		{item: "Restart work", want: app.RestartWork()},
		{item: "Skip work 5 minutes", want: app.SkipWork(5 * time.Minute)},
		{item: "Restart work with 10 minutes", want: app.SkipWork(10 * time.Minute)},
		{item: "Quit", want: app.Quit()},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			commands := make(chan app.Command, 1)
			manager := New(&fakeHost{}, commands)

			findItem(t, manager.Menu(), tt.item).Action()

			require.Len(t, commands, 1)
			assert.Equal(t, tt.want, <-commands)
		})
	}
}

func TestFullChannelDropsCommand(t *testing.T) {
	commands := make(chan app.Command, 1)
	manager := New(&fakeHost{}, commands)
	commands <- app.Quit()

	assert.NotPanics(t, findItem(t, manager.Menu(), "Restart work").Action)
	assert.Equal(t, app.Quit(), <-commands)
}

func TestBreakModesHideActions(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, make(chan app.Command, 1))

	manager.SetMode(app.ModeRestricted)
	assert.Equal(t, []string{"Mode: Restricted", "Status: starting..."}, labels(manager.Menu()))

	manager.SetMode(app.ModeInBreak)
	assert.Equal(t, app.ModeInBreak, manager.Mode())
	assert.Equal(t, []string{"Mode: In break", "Status: starting..."}, labels(manager.Menu()))

	manager.SetMode(app.ModeInBreak)
	assert.Len(t, host.menus, 3, "same mode does not rebuild")
}

func TestSetStatus(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, make(chan app.Command, 1))

	manager.SetStatus("next break in 24:59")
	manager.SetStatus("next break in 24:59")

	assert.Len(t, host.menus, 2)
	assert.Equal(t, "Status: next break in 24:59", manager.Menu().Items[1].Label)
}
