package preferences

import (
	"fmt"
	"strings"

	"chronotimer/internal/core/model"
	"chronotimer/internal/storage"
	"chronotimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window is the config file editor.
type Window struct {
	window   fyne.Window
	messages resources.Messages
	base     model.Settings
	onSaved  func(path string, settings model.Settings)

	timeFields [6]*widget.Entry
	code       *widget.Label

	interval  *widget.Entry
	precision *widget.Entry

	header         *widget.Entry
	footer         *widget.Entry
	headerFontSize *widget.Entry
	timeFontSize   *widget.Entry
	footerFontSize *widget.Entry

	windowTitle  *widget.Entry
	windowWidth  *widget.Entry
	windowHeight *widget.Entry

	unit *widget.RadioGroup

	clockEnable     *widget.Check
	clockFullscreen *widget.Check
	clockShowSecond *widget.Check
	clockFontSize   *widget.Entry

	path   *widget.Entry
	status *widget.Label
}

// New creates the editor window pre-filled with default settings.
func New(app fyne.App, messages resources.Messages, path string) *Window {
	window := app.NewWindow("ChronoTimer Config Editor")

	prefs := &Window{
		window:          window,
		messages:        messages,
		base:            model.DefaultSettings(),
		code:            widget.NewLabel(""),
		interval:        widget.NewEntry(),
		precision:       widget.NewEntry(),
		header:          widget.NewEntry(),
		footer:          widget.NewEntry(),
		headerFontSize:  widget.NewEntry(),
		timeFontSize:    widget.NewEntry(),
		footerFontSize:  widget.NewEntry(),
		windowTitle:     widget.NewEntry(),
		windowWidth:     widget.NewEntry(),
		windowHeight:    widget.NewEntry(),
		unit:            widget.NewRadioGroup(unitOptions(), nil),
		clockEnable:     widget.NewCheck("Clock mode", nil),
		clockFullscreen: widget.NewCheck("Fullscreen", nil),
		clockShowSecond: widget.NewCheck("Show seconds", nil),
		clockFontSize:   widget.NewEntry(),
		path:            widget.NewEntry(),
		status:          widget.NewLabel(""),
	}
	prefs.code.TextStyle = fyne.TextStyle{Monospace: true}
	prefs.unit.Horizontal = false
	prefs.unit.Required = true
	prefs.path.SetText(path)

	for index := range prefs.timeFields {
		entry := widget.NewEntry()
		entry.SetPlaceHolder(timeFieldNames[index])
		entry.OnChanged = func(string) {
			prefs.updatePreview()
		}
		prefs.timeFields[index] = entry
	}

	form, _ := formFromSettings(prefs.base)
	prefs.fill(form)

	window.SetContent(prefs.layout())
	window.Resize(fyne.NewSize(560, 640))
	return prefs
}

// SetOnSaved registers a handler run after a successful save.
func (prefs *Window) SetOnSaved(handler func(path string, settings model.Settings)) {
	prefs.onSaved = handler
}

// Show displays the editor window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Status returns the last status line.
func (prefs *Window) Status() string {
	return prefs.status.Text
}

// Code returns the target preview.
func (prefs *Window) Code() string {
	return prefs.code.Text
}

// Open loads path into the form.
func (prefs *Window) Open(path string) error {
	if strings.TrimSpace(path) == "" {
		prefs.setStatus(prefs.messages.NoSuchFile)
		return fmt.Errorf("open config: %s", prefs.messages.NoSuchFile)
	}

	settings, err := storage.Load(path)
	if err != nil {
		prefs.setStatus(statusFor(prefs.messages, err))
		return err
	}

	prefs.base = settings
	form, formErr := formFromSettings(settings)
	prefs.fill(form)
	if formErr != nil {
		prefs.setStatus(statusFor(prefs.messages, formErr))
		return formErr
	}
	prefs.setStatus(prefs.messages.FileLoaded)
	return nil
}

// Save writes the form to path.
func (prefs *Window) Save(path string) error {
	if strings.TrimSpace(path) == "" {
		prefs.setStatus(prefs.messages.NoSuchFile)
		return fmt.Errorf("save config: %s", prefs.messages.NoSuchFile)
	}

	settings, err := prefs.collect().apply(prefs.base)
	if err != nil {
		prefs.setStatus(statusFor(prefs.messages, err))
		return err
	}
	if err := storage.Save(path, settings); err != nil {
		prefs.setStatus(statusFor(prefs.messages, err))
		return err
	}

	prefs.base = settings
	prefs.setStatus(prefs.messages.FileSaved)
	if prefs.onSaved != nil {
		prefs.onSaved(path, settings)
	}
	return nil
}

func (prefs *Window) layout() fyne.CanvasObject {
	timeRow := container.NewGridWithColumns(6,
		prefs.timeFields[0], prefs.timeFields[1], prefs.timeFields[2],
		prefs.timeFields[3], prefs.timeFields[4], prefs.timeFields[5],
	)

	form := widget.NewForm(
		widget.NewFormItem("Target", timeRow),
		widget.NewFormItem("Code", prefs.code),
		widget.NewFormItem("Interval (ms)", prefs.interval),
		widget.NewFormItem("Precision", prefs.precision),
		widget.NewFormItem("Header", prefs.header),
		widget.NewFormItem("Footer", prefs.footer),
		widget.NewFormItem("Header font size", prefs.headerFontSize),
		widget.NewFormItem("Time font size", prefs.timeFontSize),
		widget.NewFormItem("Footer font size", prefs.footerFontSize),
		widget.NewFormItem("Window title", prefs.windowTitle),
		widget.NewFormItem("Window width", prefs.windowWidth),
		widget.NewFormItem("Window height", prefs.windowHeight),
	)

	clock := container.NewVBox(
		widget.NewLabelWithStyle("Clock mode", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.clockEnable,
		prefs.clockFullscreen,
		prefs.clockShowSecond,
		container.NewBorder(nil, nil, widget.NewLabel("Font size"), nil, prefs.clockFontSize),
	)
	unit := container.NewVBox(
		widget.NewLabelWithStyle("Unit", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.unit,
	)

	browseButton := widget.NewButton("Browse...", prefs.handleBrowse)
	openButton := widget.NewButton("Open", prefs.handleOpen)
	saveButton := widget.NewButton("Save", prefs.handleSave)
	fileRow := container.NewBorder(nil, nil, widget.NewLabel("File"), browseButton, prefs.path)
	buttons := container.NewHBox(openButton, saveButton, layout.NewSpacer(), prefs.status)

	body := container.NewVBox(form, container.NewGridWithColumns(2, unit, clock))
	return container.NewBorder(fileRow, buttons, nil, nil, container.NewVScroll(body))
}

func (prefs *Window) fill(form formValues) {
	texts := [6]string{form.Year, form.Month, form.Day, form.Hour, form.Minute, form.Second}
	for index, text := range texts {
		prefs.timeFields[index].SetText(text)
	}
	prefs.interval.SetText(form.Interval)
	prefs.precision.SetText(form.Precision)
	prefs.header.SetText(form.Header)
	prefs.footer.SetText(form.Footer)
	prefs.headerFontSize.SetText(form.HeaderFontSize)
	prefs.timeFontSize.SetText(form.TimeFontSize)
	prefs.footerFontSize.SetText(form.FooterFontSize)
	prefs.windowTitle.SetText(form.WindowTitle)
	prefs.windowWidth.SetText(form.WindowWidth)
	prefs.windowHeight.SetText(form.WindowHeight)
	prefs.unit.SetSelected(form.UnitLabel)
	prefs.clockEnable.SetChecked(form.ClockEnable)
	prefs.clockFullscreen.SetChecked(form.ClockFullscreen)
	prefs.clockShowSecond.SetChecked(form.ClockShowSecond)
	prefs.clockFontSize.SetText(form.ClockFontSize)
	prefs.updatePreview()
}

func (prefs *Window) collect() formValues {
	return formValues{
		Year:            prefs.timeFields[0].Text,
		Month:           prefs.timeFields[1].Text,
		Day:             prefs.timeFields[2].Text,
		Hour:            prefs.timeFields[3].Text,
		Minute:          prefs.timeFields[4].Text,
		Second:          prefs.timeFields[5].Text,
		Interval:        prefs.interval.Text,
		Precision:       prefs.precision.Text,
		Header:          prefs.header.Text,
		Footer:          prefs.footer.Text,
		HeaderFontSize:  prefs.headerFontSize.Text,
		TimeFontSize:    prefs.timeFontSize.Text,
		FooterFontSize:  prefs.footerFontSize.Text,
		WindowTitle:     prefs.windowTitle.Text,
		WindowWidth:     prefs.windowWidth.Text,
		WindowHeight:    prefs.windowHeight.Text,
		UnitLabel:       prefs.unit.Selected,
		ClockEnable:     prefs.clockEnable.Checked,
		ClockFullscreen: prefs.clockFullscreen.Checked,
		ClockShowSecond: prefs.clockShowSecond.Checked,
		ClockFontSize:   prefs.clockFontSize.Text,
	}
}

// updatePreview is the single handler behind every date-time input.
func (prefs *Window) updatePreview() {
	code, err := prefs.collect().preview()
	if err != nil {
		prefs.code.SetText("")
		return
	}
	prefs.code.SetText(code)
}

func (prefs *Window) setStatus(text string) {
	prefs.status.SetText(text)
}

func (prefs *Window) handleOpen() {
	_ = prefs.Open(prefs.path.Text)
}

func (prefs *Window) handleSave() {
	_ = prefs.Save(prefs.path.Text)
}

func (prefs *Window) handleBrowse() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			prefs.setStatus(statusFor(prefs.messages, err))
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		prefs.path.SetText(reader.URI().Path())
		_ = prefs.Open(reader.URI().Path())
	}, prefs.window)
}
