package main

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SettingsWindow is the single settings form: alarm time, countdown cues,
// dismiss hold time, autostart.
type SettingsWindow struct {
	window  fyne.Window
	chime   *Chime
	onClose func()

	hourEntry      *widget.Entry
	minuteEntry    *widget.Entry
	preAlarmCheck  *widget.Check
	intervalSelect *widget.Select
	holdSelect     *widget.Select
	autoStartCheck *widget.Check

	saveStatusLabel *widget.Label
}

func NewSettingsWindow(chime *Chime, onClose func()) *SettingsWindow {
	sw := &SettingsWindow{
		chime:   chime,
		onClose: onClose,
	}

	sw.window = chime.app.NewWindow("Chime - Settings")
	sw.buildUI()
	sw.window.SetOnClosed(func() {
		if sw.onClose != nil {
			sw.onClose()
		}
	})

	return sw
}

func (sw *SettingsWindow) buildUI() {
	config := sw.chime.timer.Config()

	sw.hourEntry = widget.NewEntry()
	sw.hourEntry.SetText(strconv.Itoa(config.Hour))
	sw.minuteEntry = widget.NewEntry()
	sw.minuteEntry.SetText(strconv.Itoa(config.Minute))

	sw.preAlarmCheck = widget.NewCheck("Announce the countdown before the alarm", nil)
	sw.preAlarmCheck.SetChecked(config.PreAlarmEnabled)

	sw.intervalSelect = widget.NewSelect([]string{"1", "5", "10", "15", "30"}, nil)
	sw.intervalSelect.SetSelected(strconv.Itoa(config.PreAlarmInterval))

	sw.holdSelect = widget.NewSelect([]string{"1", "3", "5", "10"}, nil)
	sw.holdSelect.SetSelected(strconv.Itoa(sw.chime.store.HoldSeconds()))

	sw.autoStartCheck = widget.NewCheck("Launch Chime when you log in", nil)
	sw.autoStartCheck.SetChecked(sw.chime.store.AutoStart())

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	saveButton := widget.NewButton("Save", func() {
		sw.save()
	})
	saveButton.Importance = widget.HighImportance

	hourHelp := widget.NewLabel("Hour on the 12-hour face; the alarm rings at both AM and PM")
	hourHelp.Importance = widget.MediumImportance
	hourHelp.Wrapping = fyne.TextWrapWord

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Alarm hour (0-11):"), sw.hourEntry,
		widget.NewLabel("Alarm minute (0-59):"), sw.minuteEntry,
		widget.NewLabel("Countdown cues:"), sw.preAlarmCheck,
		widget.NewLabel("Cue every (minutes):"), sw.intervalSelect,
		widget.NewLabel("Dismiss hold (seconds):"), sw.holdSelect,
		widget.NewLabel("Auto start:"), sw.autoStartCheck,
	)

	content := container.NewVBox(
		widget.NewLabel("Alarm Settings"),
		widget.NewSeparator(),
		form,
		hourHelp,
		widget.NewSeparator(),
		container.NewHBox(sw.saveStatusLabel, layout.NewSpacer(), saveButton),
	)

	sw.window.SetContent(container.NewPadded(content))
}

// save applies the form. Non-numeric hour/minute input is ignored and the
// prior value retained, never an error surfaced to the timer.
func (sw *SettingsWindow) save() {
	timer := sw.chime.timer

	if hours, err := strconv.Atoi(sw.hourEntry.Text); err == nil {
		timer.SetHours(hours)
	} else {
		log.Printf("Ignoring non-numeric hour input %q", sw.hourEntry.Text)
	}
	if minutes, err := strconv.Atoi(sw.minuteEntry.Text); err == nil {
		timer.SetMinutes(minutes)
	} else {
		log.Printf("Ignoring non-numeric minute input %q", sw.minuteEntry.Text)
	}

	interval := timer.Config().PreAlarmInterval
	if parsed, err := strconv.Atoi(sw.intervalSelect.Selected); err == nil {
		interval = parsed
	}
	timer.SetPreAlarm(sw.preAlarmCheck.Checked, interval)

	if holdSeconds, err := strconv.Atoi(sw.holdSelect.Selected); err == nil {
		sw.chime.store.SetHoldSeconds(holdSeconds)
	}

	sw.chime.store.SetAutoStart(sw.autoStartCheck.Checked)
	if err := setupAutostart(sw.autoStartCheck.Checked); err != nil {
		log.Printf("Error setting autostart: %v", err)
		sw.saveStatusLabel.Importance = widget.DangerImportance
		sw.saveStatusLabel.SetText("Failed to set autostart")
		return
	}

	// The entries may have wrapped; show what was actually stored.
	config := timer.Config()
	sw.hourEntry.SetText(strconv.Itoa(config.Hour))
	sw.minuteEntry.SetText(strconv.Itoa(config.Minute))

	sw.saveStatusLabel.Importance = widget.SuccessImportance
	sw.saveStatusLabel.SetText(fmt.Sprintf("Saved - alarm at %02d:%02d", config.Hour, config.Minute))
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

func (sw *SettingsWindow) Focus() {
	sw.window.RequestFocus()
	sw.window.Show()
}
