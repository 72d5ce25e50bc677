package effects

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoross/internal/app"
)

type fakeOverlay struct {
	visible bool
	status  string
}

func (overlay *fakeOverlay) Show() {
	overlay.visible = true
}

func (overlay *fakeOverlay) Hide() {
	overlay.visible = false
}

func (overlay *fakeOverlay) SetStatus(status string) {
	overlay.status = status
}

type fakeTray struct {
	mode   app.Mode
	status string
}

func (tray *fakeTray) SetMode(mode app.Mode) {
	tray.mode = mode
}

func (tray *fakeTray) SetStatus(status string) {
	tray.status = status
}

type fakeNotifier struct {
	sent []*fyne.Notification
}

func (notifier *fakeNotifier) SendNotification(notification *fyne.Notification) {
	notifier.sent = append(notifier.sent, notification)
}

func newTestDesktop(overlay Overlay, tray Tray, notifier Notifier) *Desktop {
	desktop := New(overlay, tray, notifier)
	desktop.run = func(fn func()) { fn() }
	return desktop
}

var _ app.Effects = (*Desktop)(nil)

func TestBlockInputTogglesOverlay(t *testing.T) {
	overlay := &fakeOverlay{}
	desktop := newTestDesktop(overlay, nil, nil)

	require.NoError(t, desktop.BlockInput(true))
	assert.True(t, overlay.visible)

	require.NoError(t, desktop.BlockInput(false))
	assert.False(t, overlay.visible)
}

func TestNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	desktop := newTestDesktop(nil, nil, notifier)

	require.NoError(t, desktop.Notify("Break time", "Step away"))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Break time", notifier.sent[0].Title)
	assert.Equal(t, "Step away", notifier.sent[0].Content)
}

func TestModeAndStatus(t *testing.T) {
	overlay := &fakeOverlay{}
	tray := &fakeTray{}
	desktop := newTestDesktop(overlay, tray, nil)

	desktop.SetMode(app.ModeRestricted)
	desktop.SetStatus("break ends in 04:00")

	assert.Equal(t, app.ModeRestricted, tray.mode)
	assert.Equal(t, "break ends in 04:00", tray.status)
	assert.Equal(t, "break ends in 04:00", overlay.status)
}

func TestNilCollaborators(t *testing.T) {
	desktop := newTestDesktop(nil, nil, nil)

	assert.NoError(t, desktop.BlockInput(true))
	assert.NoError(t, desktop.Notify("a", "b"))
	assert.NotPanics(t, func() {
		desktop.SetMode(app.ModeNormal)
		desktop.SetStatus("x")
	})
}
