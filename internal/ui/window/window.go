// Package window implements the desktop timer window.
package window

import (
	"fmt"
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/guide"
)

// Controls are invoked when the user presses a button.
type Controls struct {
	OnToggle func()
	OnReset  func()
	OnAdjust func(timer.Session, timer.Direction)
}

// Window manages the main timer UI.
type Window struct {
	window        fyne.Window
	controls      Controls
	sessionLabel  *canvas.Text
	timerLabel    *canvas.Text
	workLabel     *widget.Label
	breakLabel    *widget.Label
	toggleButton  *widget.Button
	resetButton   *widget.Button
	workDecrease  *widget.Button
	workIncrease  *widget.Button
	breakDecrease *widget.Button
	breakIncrease *widget.Button
	helpButton    *widget.Button
	running       bool
}

var (
	workColor  = color.NRGBA{R: 37, G: 99, B: 235, A: 255}
	breakColor = color.NRGBA{R: 22, G: 163, B: 74, A: 255}
)

// New creates the timer window showing state.
func New(app fyne.App, state timer.State, controls Controls) *Window {
	window := app.NewWindow("Pomodoro Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	sessionLabel := canvas.NewText("", workColor)
	sessionLabel.Alignment = fyne.TextAlignCenter
	sessionLabel.TextStyle = fyne.TextStyle{Bold: true}
	sessionLabel.TextSize = 24

	timerLabel := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 72

	view := &Window{
		window:       window,
		controls:     controls,
		sessionLabel: sessionLabel,
		timerLabel:   timerLabel,
		workLabel:    widget.NewLabel(""),
		breakLabel:   widget.NewLabel(""),
	}

	view.workDecrease = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		view.adjust(timer.SessionWork, timer.DirectionDecrease)
	})
	view.workIncrease = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		view.adjust(timer.SessionWork, timer.DirectionIncrease)
	})
	view.breakDecrease = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		view.adjust(timer.SessionBreak, timer.DirectionDecrease)
	})
	view.breakIncrease = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		view.adjust(timer.SessionBreak, timer.DirectionIncrease)
	})
	view.toggleButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if view.controls.OnToggle != nil {
			view.controls.OnToggle()
		}
	})
	view.resetButton = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if view.controls.OnReset != nil {
			view.controls.OnReset()
		}
	})
	view.helpButton = widget.NewButtonWithIcon("What is Pomodoro Technique", theme.HelpIcon(), view.ShowHelp)
	view.helpButton.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle("Pomodoro Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("A timer for the Pomodoro Technique.", fyne.TextAlignCenter, fyne.TextStyle{})

	durations := container.NewGridWithColumns(2,
		container.NewHBox(view.workDecrease, view.workLabel, view.workIncrease),
		container.NewHBox(view.breakDecrease, view.breakLabel, view.breakIncrease),
	)
	buttons := container.NewHBox(layout.NewSpacer(), view.toggleButton, view.resetButton, layout.NewSpacer())

	content := container.NewVBox(
		title,
		subtitle,
		sessionLabel,
		timerLabel,
		container.NewCenter(durations),
		buttons,
		container.NewCenter(view.helpButton),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(420, 460))

	view.Render(state)
	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetCloseIntercept replaces the default close behaviour.
func (view *Window) SetCloseIntercept(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// Hide hides the window without closing it.
func (view *Window) Hide() {
	view.window.Hide()
}

// Render updates all widgets from state. It must run on the UI goroutine.
func (view *Window) Render(state timer.State) {
	view.sessionLabel.Text = sessionTitle(state.CurrentSession)
	view.sessionLabel.Color = sessionColor(state.CurrentSession)
	view.sessionLabel.Refresh()

	view.timerLabel.Text = timer.FormatTime(state.CurrentTime)
	view.timerLabel.Refresh()

	view.workLabel.SetText(durationCaption("Work", state.WorkDuration))
	view.breakLabel.SetText(durationCaption("Break", state.BreakDuration))

	view.running = state.Running()
	if view.running {
		view.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
}

// ShowHelp opens the explanation of the technique.
func (view *Window) ShowHelp() {
	body := widget.NewLabel(guide.Text())
	body.Wrapping = fyne.TextWrapWord
	items := []fyne.CanvasObject{body}
	if link, err := url.Parse(guide.ReadMoreURL); err == nil {
		items = append(items, widget.NewHyperlink("Read more", link))
	}
	content := container.NewVBox(items...)
	info := dialog.NewCustom(guide.Title, "Close", content, view.window)
	info.Resize(fyne.NewSize(400, 360))
	info.Show()
}

func (view *Window) adjust(session timer.Session, direction timer.Direction) {
	if view.controls.OnAdjust != nil {
		view.controls.OnAdjust(session, direction)
	}
}

func sessionTitle(session timer.Session) string {
	if session == timer.SessionBreak {
		return "Break"
	}
	return "Work"
}

func sessionColor(session timer.Session) color.Color {
	if session == timer.SessionBreak {
		return breakColor
	}
	return workColor
}

func durationCaption(name string, seconds int) string {
	return fmt.Sprintf("%s %d min", name, seconds/60)
}
