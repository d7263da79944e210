package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RingWindow is the fullscreen window shown while the alarm rings. The only
// way out is holding the dismiss button for the configured time.
type RingWindow struct {
	window          fyne.Window
	app             fyne.App
	holdTimeSeconds int
	onDismiss       func()

	dismissProgress float64
	dismissTicker   *time.Ticker
	dismissHeld     bool
	dismissed       bool
}

func NewRingWindow(app fyne.App, holdTimeSeconds int, onDismiss func()) *RingWindow {
	rw := &RingWindow{
		app:             app,
		holdTimeSeconds: holdTimeSeconds,
		onDismiss:       onDismiss,
	}

	rw.window = app.NewWindow("Alarm")
	rw.window.SetFullScreen(true)
	rw.buildUI()

	// Closing the window by any other path still counts as a dismiss, so
	// the ring can never keep playing behind a closed window.
	rw.window.SetOnClosed(func() {
		rw.dismiss()
	})

	return rw
}

func (rw *RingWindow) buildUI() {
	title := canvas.NewText("Wake up!", nil)
	title.TextSize = 48
	title.Alignment = fyne.TextAlignCenter

	timeLabel := widget.NewLabel(time.Now().Format("3:04 PM"))
	timeLabel.Alignment = fyne.TextAlignCenter

	var dismissButton *HoldButton
	dismissButton = NewHoldButton(fmt.Sprintf("Dismiss (Hold %ds)", rw.holdTimeSeconds), func() {
		rw.startDismissProgress(dismissButton)
	}, func() {
		rw.stopDismissProgress(dismissButton)
	})

	content := container.NewVBox(
		container.NewPadded(title),
		timeLabel,
		widget.NewSeparator(),
		container.NewCenter(dismissButton),
	)

	rw.window.SetContent(container.NewPadded(container.NewCenter(content)))
}

func (rw *RingWindow) startDismissProgress(button *HoldButton) {
	if rw.dismissHeld {
		return
	}

	rw.dismissHeld = true
	rw.dismissProgress = 0
	fyne.Do(func() {
		button.SetProgress(0)
	})

	tickInterval := 50 * time.Millisecond
	totalTicks := float64(rw.holdTimeSeconds*1000) / float64(tickInterval.Milliseconds())
	progressIncrement := 1.0 / totalTicks

	rw.dismissTicker = time.NewTicker(tickInterval)

	go func() {
		for range rw.dismissTicker.C {
			if !rw.dismissHeld {
				return
			}

			rw.dismissProgress += progressIncrement
			currentProgress := rw.dismissProgress

			fyne.Do(func() {
				button.SetProgress(currentProgress)
			})

			if currentProgress >= 1.0 {
				rw.dismissTicker.Stop()
				fyne.Do(func() {
					rw.dismiss()
					rw.window.Close()
				})
				return
			}
		}
	}()
}

func (rw *RingWindow) stopDismissProgress(button *HoldButton) {
	rw.dismissHeld = false
	if rw.dismissTicker != nil {
		rw.dismissTicker.Stop()
	}
	rw.dismissProgress = 0
	fyne.Do(func() {
		button.SetProgress(0)
	})
}

// dismiss invokes the callback exactly once no matter which path closed the
// window.
func (rw *RingWindow) dismiss() {
	if rw.dismissed {
		return
	}
	rw.dismissed = true
	if rw.onDismiss != nil {
		rw.onDismiss()
	}
}

func (rw *RingWindow) Show() {
	rw.window.Show()
	rw.window.RequestFocus()
}

// Close closes the window without treating it as a user dismiss; used when
// the timer was dismissed elsewhere (tray, disable).
func (rw *RingWindow) Close() {
	rw.dismissed = true
	rw.window.Close()
}
