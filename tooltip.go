package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// tooltipDelay is how long the pointer must rest before the tip appears.
const tooltipDelay = 600 * time.Millisecond

// Tooltip wraps any canvas object and shows a short help text while the
// pointer hovers over it.
type Tooltip struct {
	widget.BaseWidget

	content fyne.CanvasObject
	text    string
	window  fyne.Window

	popup     *widget.PopUp
	showTimer *time.Timer
}

// WithTooltip attaches a hover tooltip to content, shown on the given
// window's canvas.
func WithTooltip(content fyne.CanvasObject, text string, window fyne.Window) *Tooltip {
	t := &Tooltip{
		content: content,
		text:    text,
		window:  window,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *Tooltip) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

func (t *Tooltip) MouseIn(*desktop.MouseEvent) {
	t.cancelPending()
	t.showTimer = time.AfterFunc(tooltipDelay, func() {
		fyne.Do(func() {
			t.show()
		})
	})
}

func (t *Tooltip) MouseMoved(*desktop.MouseEvent) {
}

func (t *Tooltip) MouseOut() {
	t.cancelPending()
	t.hide()
}

func (t *Tooltip) show() {
	if t.popup != nil {
		return
	}

	label := widget.NewLabel(t.text)
	t.popup = widget.NewPopUp(label, t.window.Canvas())

	// Place the tip just under the wrapped widget.
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(t)
	t.popup.ShowAtPosition(pos.Add(fyne.NewPos(0, t.Size().Height+4)))
}

func (t *Tooltip) hide() {
	if t.popup == nil {
		return
	}
	t.popup.Hide()
	t.popup = nil
}

func (t *Tooltip) cancelPending() {
	if t.showTimer != nil {
		t.showTimer.Stop()
		t.showTimer = nil
	}
}
