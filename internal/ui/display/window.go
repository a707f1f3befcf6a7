package display

import (
	"chronotimer/internal/core/model"
	"chronotimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

const placeholderText = "--"

// Config defines display window visuals.
type Config struct {
	Title      string
	Width      float32
	Height     float32
	Header     string
	Footer     string
	HeaderSize float32
	TimeSize   float32
	FooterSize float32
	Clock      bool
	Fullscreen bool
}

// ConfigFromSettings selects countdown or clock visuals from persisted settings.
func ConfigFromSettings(settings model.Settings) Config {
	config := Config{
		Title:  settings.WindowTitle,
		Width:  float32(settings.WindowWidth),
		Height: float32(settings.WindowHeight),
	}
	if settings.ClockMode.Enable {
		config.Clock = true
		config.Fullscreen = settings.ClockMode.Fullscreen
		config.TimeSize = float32(settings.ClockMode.FontSize)
		return config
	}
	config.Header = settings.Header
	config.Footer = settings.Footer
	config.HeaderSize = float32(settings.HeaderFontSize)
	config.TimeSize = float32(settings.TimeFontSize)
	config.FooterSize = float32(settings.FooterFontSize)
	return config
}

// Window shows the countdown or clock value.
type Window struct {
	window  fyne.Window
	config  Config
	header  *canvas.Text
	value   *canvas.Text
	footer  *canvas.Text
	onClose func()
}

// New creates the display window. It is not shown until Show is called.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	foreground := theme.Color(theme.ColorNameForeground)

	header := canvas.NewText(config.Header, foreground)
	header.Alignment = fyne.TextAlignCenter
	header.TextSize = config.HeaderSize

	value := canvas.NewText(placeholderText, foreground)
	value.Alignment = fyne.TextAlignCenter
	value.TextStyle = fyne.TextStyle{Monospace: true}
	value.TextSize = config.TimeSize

	footer := canvas.NewText(config.Footer, foreground)
	footer.Alignment = fyne.TextAlignCenter
	footer.TextSize = config.FooterSize

	if config.Clock {
		header.Hide()
		footer.Hide()
	}

	window.SetContent(container.New(&stackLayout{gap: 4}, header, value, footer))

	display := &Window{
		window: window,
		config: config,
		header: header,
		value:  value,
		footer: footer,
	}
	window.SetCloseIntercept(func() {
		if display.onClose != nil {
			display.onClose()
		}
		window.Close()
	})
	display.applyWindowMode()
	return display
}

// SetOnClose sets the handler run when the user closes the window.
func (display *Window) SetOnClose(handler func()) {
	display.onClose = handler
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// Render shows a tick result. Call it on the UI goroutine.
func (display *Window) Render(result timekeeper.Result) {
	if result.IsFatal() {
		display.value.Color = theme.Color(theme.ColorNameError)
		display.value.TextSize = errorTextSize(display.config.TimeSize)
	}
	display.value.Text = result.Text
	display.value.Refresh()
}

// Text returns the currently displayed value.
func (display *Window) Text() string {
	return display.value.Text
}

func (display *Window) applyWindowMode() {
	if display.config.Clock && display.config.Fullscreen {
		display.window.SetFullScreen(true)
		return
	}
	display.window.SetFullScreen(false)
	if display.config.Width > 0 && display.config.Height > 0 {
		display.window.Resize(fyne.NewSize(display.config.Width, display.config.Height))
	}
	if !display.config.Clock {
		display.window.SetFixedSize(true)
	}
	display.window.CenterOnScreen()
}

// Diagnostics are longer than values; keep them readable in small windows.
func errorTextSize(timeSize float32) float32 {
	size := timeSize / 3
	if size < theme.TextSize() {
		return theme.TextSize()
	}
	return size
}
