package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines overlay visuals.
type Config struct {
	Opacity    uint8
	Fullscreen bool
	Title      string
	Message    string
}

// DefaultConfig covers the whole screen with a nearly opaque backdrop.
func DefaultConfig() Config {
	return Config{
		Opacity:    230,
		Fullscreen: true,
		Title:      "Pomodoro SS",
		Message:    "Time for a break. Step away from the keyboard.",
	}
}

// Window is the break overlay. While it is shown it covers the screen and
// takes focus, which is how input gets blocked. Methods must run on the fyne
// main goroutine.
type Window struct {
	window       fyne.Window
	config       Config
	background   *canvas.Rectangle
	titleLabel   *canvas.Text
	messageLabel *canvas.Text
	statusLabel  *canvas.Text
	visible      bool
}

const (
	overlayWidthFraction  = float32(0.3)
	overlayHeightFraction = float32(0.25)
	defaultScreenWidth    = float32(1920)
	defaultScreenHeight   = float32(1080)
)

var (
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	accentColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden overlay window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: config.Opacity})

	titleLabel := canvas.NewText(config.Title, textColor)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 28

	messageLabel := canvas.NewText(config.Message, textColor)
	messageLabel.Alignment = fyne.TextAlignCenter
	messageLabel.TextSize = 18

	statusLabel := canvas.NewText("--:--", accentColor)
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	statusLabel.TextSize = 36

	content := container.NewCenter(container.NewVBox(titleLabel, messageLabel, statusLabel))
	window.SetContent(container.NewStack(background, content))
	// Closing the overlay by hand must not end the break.
	window.SetCloseIntercept(func() {})

	return &Window{
		window:       window,
		config:       config,
		background:   background,
		titleLabel:   titleLabel,
		messageLabel: messageLabel,
		statusLabel:  statusLabel,
	}
}

// Show covers the screen.
func (overlay *Window) Show() {
	overlay.applyWindowMode()
	overlay.window.Show()
	overlay.window.RequestFocus()
	overlay.visible = true
}

// Hide releases the screen.
func (overlay *Window) Hide() {
	if overlay.config.Fullscreen {
		overlay.window.SetFullScreen(false)
	}
	overlay.window.Hide()
	overlay.visible = false
}

// Visible reports whether the overlay is shown.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// SetStatus updates the countdown line.
func (overlay *Window) SetStatus(status string) {
	if overlay.statusLabel.Text == status {
		return
	}
	overlay.statusLabel.Text = status
	overlay.statusLabel.Refresh()
}

// Status returns the countdown line.
func (overlay *Window) Status() string {
	return overlay.statusLabel.Text
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.background.FillColor = color.NRGBA{A: config.Opacity}
	overlay.titleLabel.Text = config.Title
	overlay.messageLabel.Text = config.Message
	canvas.Refresh(overlay.background)
	overlay.titleLabel.Refresh()
	overlay.messageLabel.Refresh()
	if overlay.visible {
		overlay.applyWindowMode()
	}
}

func (overlay *Window) applyWindowMode() {
	if overlay.config.Fullscreen {
		overlay.window.SetFullScreen(true)
		return
	}
	overlay.window.SetFullScreen(false)
	overlay.resizeToScreenFraction()
}

func (overlay *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := overlay.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * overlayWidthFraction
	height := screenSize.Height * overlayHeightFraction
	minSize := overlay.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	overlay.window.Resize(fyne.NewSize(width, height))
	overlay.window.CenterOnScreen()
}
