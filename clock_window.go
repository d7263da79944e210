package main

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/chime/pkg/alarm"
	"github.com/borgmon/chime/pkg/face"
)

// ClockWindow is the main window: the analog face with a draggable alarm
// hand, the countdown readout, and the toggles.
type ClockWindow struct {
	window fyne.Window
	chime  *Chime

	face           *clockFace
	timeLabel      *widget.Label
	countdownLabel *widget.Label
	armedCheck     *widget.Check
	preAlarmCheck  *widget.Check
	keepAwakeCheck *widget.Check

	// Guards against check OnChanged callbacks firing during programmatic
	// refresh.
	refreshing bool
}

func NewClockWindow(chime *Chime) *ClockWindow {
	cw := &ClockWindow{
		chime: chime,
	}

	cw.window = chime.app.NewWindow("Chime")
	cw.window.Resize(fyne.NewSize(420, 560))
	cw.window.SetMaster()
	cw.buildUI()
	cw.Refresh()

	return cw
}

func (cw *ClockWindow) buildUI() {
	timer := cw.chime.timer

	cw.face = newClockFace(timer, func(hour, minute int) {
		timer.SetHours(hour)
		timer.SetMinutes(minute)
	})

	cw.timeLabel = widget.NewLabel("")
	cw.timeLabel.Alignment = fyne.TextAlignCenter
	cw.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	cw.countdownLabel = widget.NewLabel("")
	cw.countdownLabel.Alignment = fyne.TextAlignCenter

	cw.armedCheck = widget.NewCheck("Alarm", func(checked bool) {
		if cw.refreshing {
			return
		}
		timer.SetEnabled(checked)
	})

	cw.preAlarmCheck = widget.NewCheck("Countdown cues", func(checked bool) {
		if cw.refreshing {
			return
		}
		timer.SetPreAlarm(checked, timer.Config().PreAlarmInterval)
	})

	cw.keepAwakeCheck = widget.NewCheck("Keep awake", func(checked bool) {
		if cw.refreshing {
			return
		}
		cw.chime.store.SetKeepAwake(checked)
		cw.chime.applyKeepAwake()
	})

	fullscreenButton := widget.NewButton("Fullscreen", func() {
		cw.window.SetFullScreen(!cw.window.FullScreen())
	})

	testButton := widget.NewButton("Test alarm", func() {
		timer.TestTrigger()
	})

	settingsButton := widget.NewButton("Settings", func() {
		cw.chime.showSettingsWindow()
	})

	toggles := container.NewHBox(
		WithTooltip(cw.armedCheck, "Arm or disarm the alarm", cw.window),
		WithTooltip(cw.preAlarmCheck, "Chime every few minutes while the alarm approaches", cw.window),
		WithTooltip(cw.keepAwakeCheck, "Keep the display awake", cw.window),
		WithTooltip(fullscreenButton, "Toggle fullscreen", cw.window),
	)

	buttons := container.NewHBox(testButton, settingsButton)

	bottom := container.NewVBox(
		cw.timeLabel,
		cw.countdownLabel,
		widget.NewSeparator(),
		container.NewCenter(toggles),
		container.NewCenter(buttons),
	)

	cw.window.SetContent(container.NewBorder(nil, bottom, nil, nil, cw.face))
}

// Refresh redraws the face and labels from the current timer state. Always
// called after the timer has settled, never mid-transition.
func (cw *ClockWindow) Refresh() {
	cw.refreshing = true
	defer func() { cw.refreshing = false }()

	now := cw.chime.timer.Now()
	config := cw.chime.timer.Config()

	cw.timeLabel.SetText(now.Format("3:04:05 PM"))

	if config.Enabled {
		countdown := cw.chime.timer.Countdown(now)
		cw.countdownLabel.SetText(fmt.Sprintf("Alarm %02d:%02d in %dh %02dm %02ds",
			config.Hour, config.Minute, countdown.Hours, countdown.Minutes, countdown.Seconds))
	} else {
		cw.countdownLabel.SetText(fmt.Sprintf("Alarm %02d:%02d off", config.Hour, config.Minute))
	}

	cw.armedCheck.SetChecked(config.Enabled)
	cw.preAlarmCheck.SetChecked(config.PreAlarmEnabled)
	cw.keepAwakeCheck.SetChecked(cw.chime.store.KeepAwake())

	cw.face.Refresh()
}

func (cw *ClockWindow) Show() {
	cw.window.Show()
}

// clockFace renders the analog face and lets the user drag the alarm hand.
type clockFace struct {
	widget.BaseWidget

	timer       *alarm.Timer
	onAlarmDrag func(hour, minute int)
}

func newClockFace(timer *alarm.Timer, onAlarmDrag func(hour, minute int)) *clockFace {
	f := &clockFace{
		timer:       timer,
		onAlarmDrag: onAlarmDrag,
	}
	f.ExtendBaseWidget(f)
	return f
}

func (f *clockFace) CreateRenderer() fyne.WidgetRenderer {
	rim := canvas.NewCircle(color.Transparent)
	rim.StrokeColor = theme.ForegroundColor()
	rim.StrokeWidth = 3

	hub := canvas.NewCircle(theme.ForegroundColor())

	marks := make([]*canvas.Line, 12)
	for i := range marks {
		marks[i] = canvas.NewLine(theme.ForegroundColor())
		marks[i].StrokeWidth = 2
	}

	hourHand := canvas.NewLine(theme.ForegroundColor())
	hourHand.StrokeWidth = 5
	minuteHand := canvas.NewLine(theme.ForegroundColor())
	minuteHand.StrokeWidth = 3
	secondHand := canvas.NewLine(theme.PrimaryColor())
	secondHand.StrokeWidth = 1
	alarmHand := canvas.NewLine(theme.WarningColor())
	alarmHand.StrokeWidth = 4

	return &clockFaceRenderer{
		face:       f,
		rim:        rim,
		hub:        hub,
		marks:      marks,
		hourHand:   hourHand,
		minuteHand: minuteHand,
		secondHand: secondHand,
		alarmHand:  alarmHand,
	}
}

// setAlarmFromPointer converts a pointer position on the face to an alarm
// time and pushes it to the timer.
func (f *clockFace) setAlarmFromPointer(pos fyne.Position) {
	size := f.Size()
	cx, cy := float64(size.Width)/2, float64(size.Height)/2

	angle := face.AngleFromPoint(cx, cy, float64(pos.X), float64(pos.Y))
	hour, minute := face.AlarmTimeFromAngle(angle)
	f.onAlarmDrag(hour, minute)
	f.Refresh()
}

func (f *clockFace) Dragged(e *fyne.DragEvent) {
	f.setAlarmFromPointer(e.Position)
}

func (f *clockFace) DragEnd() {
}

func (f *clockFace) Tapped(e *fyne.PointEvent) {
	f.setAlarmFromPointer(e.Position)
}

type clockFaceRenderer struct {
	face *clockFace

	rim        *canvas.Circle
	hub        *canvas.Circle
	marks      []*canvas.Line
	hourHand   *canvas.Line
	minuteHand *canvas.Line
	secondHand *canvas.Line
	alarmHand  *canvas.Line
}

func (r *clockFaceRenderer) Layout(size fyne.Size) {
	cx := float64(size.Width) / 2
	cy := float64(size.Height) / 2
	radius := cx
	if cy < cx {
		radius = cy
	}
	radius -= 8

	r.rim.Resize(fyne.NewSize(float32(radius*2), float32(radius*2)))
	r.rim.Move(fyne.NewPos(float32(cx-radius), float32(cy-radius)))

	const hubRadius = 5
	r.hub.Resize(fyne.NewSize(hubRadius*2, hubRadius*2))
	r.hub.Move(fyne.NewPos(float32(cx-hubRadius), float32(cy-hubRadius)))

	for i, mark := range r.marks {
		angle := float64(i) / 12 * 2 * math.Pi
		x1, y1 := face.Point(cx, cy, radius*0.92, angle)
		x2, y2 := face.Point(cx, cy, radius, angle)
		mark.Position1 = fyne.NewPos(float32(x1), float32(y1))
		mark.Position2 = fyne.NewPos(float32(x2), float32(y2))
	}

	r.positionHands(cx, cy, radius)
}

// positionHands aims every hand at the current time and alarm setting.
func (r *clockFaceRenderer) positionHands(cx, cy, radius float64) {
	now := r.face.timer.Now()
	config := r.face.timer.Config()

	center := fyne.NewPos(float32(cx), float32(cy))

	aim := func(line *canvas.Line, length, angle float64) {
		x, y := face.Point(cx, cy, length, angle)
		line.Position1 = center
		line.Position2 = fyne.NewPos(float32(x), float32(y))
	}

	aim(r.hourHand, radius*0.5, face.HourAngle(now.Hour(), now.Minute()))
	aim(r.minuteHand, radius*0.75, face.MinuteAngle(now.Minute(), now.Second()))
	aim(r.secondHand, radius*0.85, face.SecondAngle(now.Second()))
	aim(r.alarmHand, radius*0.65, face.AlarmAngle(config.Hour, config.Minute))

	if config.Enabled {
		r.alarmHand.StrokeColor = theme.WarningColor()
	} else {
		r.alarmHand.StrokeColor = theme.DisabledColor()
	}
}

func (r *clockFaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 240)
}

func (r *clockFaceRenderer) Refresh() {
	size := r.face.Size()
	cx := float64(size.Width) / 2
	cy := float64(size.Height) / 2
	radius := cx
	if cy < cx {
		radius = cy
	}
	radius -= 8

	r.positionHands(cx, cy, radius)

	r.hourHand.Refresh()
	r.minuteHand.Refresh()
	r.secondHand.Refresh()
	r.alarmHand.Refresh()
}

func (r *clockFaceRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.rim}
	for _, mark := range r.marks {
		objects = append(objects, mark)
	}
	objects = append(objects, r.alarmHand, r.hourHand, r.minuteHand, r.secondHand, r.hub)
	return objects
}

func (r *clockFaceRenderer) Destroy() {
}
