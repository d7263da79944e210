package alarm

import (
	"log"
	"time"
)

// Notifier is the external alert sink. Start begins a repeating audible
// alert that runs until Stop; Stop must be idempotent and always safe to
// call. Announce is a one-shot pre-alarm countdown notice and may degrade
// silently when voice or audio resources are unavailable.
type Notifier interface {
	Start()
	Stop()
	Announce(minutesRemaining int)
}

// Countdown is the time remaining until the next alarm occurrence.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds returns the countdown as whole seconds.
func (c Countdown) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}

const minutesPerDay = 24 * 60

// Timer owns the alarm state: the persisted config plus the transient
// trigger state. All mutation happens through its methods; callers drive it
// from a single goroutine (UI thread or test), matching how it is polled.
type Timer struct {
	clock    Clock
	store    Store
	notifier Notifier

	config Config

	triggered         bool
	lastCheckedMinute int // minute-of-day of the last match check, -1 before first tick
	lastPreAlarmMin   int // minute-of-day of the last announcement, -1 before first

	// OnChange, when set, runs at the end of every Tick and lifecycle
	// transition so the UI re-renders a settled state snapshot.
	OnChange func()
}

// NewTimer loads the persisted config (or defaults) and returns a timer in
// the idle, not-ringing state. A restart never resumes ringing.
func NewTimer(clock Clock, store Store, notifier Notifier) *Timer {
	return &Timer{
		clock:             clock,
		store:             store,
		notifier:          notifier,
		config:            loadConfig(store),
		lastCheckedMinute: -1,
		lastPreAlarmMin:   -1,
	}
}

// Config returns a copy of the current settings.
func (t *Timer) Config() Config {
	return t.config
}

// Now returns the current time from the injected time source, so callers
// rendering timer state stay consistent with the trigger logic.
func (t *Timer) Now() time.Time {
	return t.clock.Now()
}

// Triggered reports whether the alarm is currently ringing.
func (t *Timer) Triggered() bool {
	return t.triggered
}

// SetHours sets the alarm hour, wrapping any integer into [0,11].
func (t *Timer) SetHours(h int) {
	t.config.Hour = wrap(h, 12)
	t.persist()
}

// SetMinutes sets the alarm minute, wrapping any integer into [0,59].
func (t *Timer) SetMinutes(m int) {
	t.config.Minute = wrap(m, 60)
	t.persist()
}

// SetPreAlarm enables or disables the countdown announcements and sets the
// announcement interval in minutes (values below 1 are clamped to 1).
func (t *Timer) SetPreAlarm(enabled bool, intervalMinutes int) {
	if intervalMinutes < 1 {
		intervalMinutes = 1
	}
	t.config.PreAlarmEnabled = enabled
	t.config.PreAlarmInterval = intervalMinutes
	t.persist()
}

// Enable arms the alarm.
func (t *Timer) Enable() {
	t.config.Enabled = true
	t.persist()
}

// Disable disarms the alarm. Disarming while ringing silences it too.
func (t *Timer) Disable() {
	if t.triggered {
		t.silence()
	}
	t.config.Enabled = false
	t.persist()
}

// SetEnabled arms or disarms in one call, for toggle widgets.
func (t *Timer) SetEnabled(enabled bool) {
	if enabled {
		t.Enable()
	} else {
		t.Disable()
	}
}

// Trigger starts the alarm ringing. No-op while already ringing, so a slow
// dismiss cannot stack notification sessions.
func (t *Timer) Trigger() {
	if t.triggered {
		return
	}
	t.triggered = true
	t.notifier.Start()
	t.changed()
}

// Dismiss silences a ringing alarm and disarms it. Dismissing an idle alarm
// is a no-op. Stop on the notifier is always invoked exactly once per ring.
func (t *Timer) Dismiss() {
	if !t.triggered {
		return
	}
	t.silence()
	t.config.Enabled = false
	t.persist()
}

// TestTrigger rings the alarm immediately, bypassing the match detector.
// No-op while already ringing.
func (t *Timer) TestTrigger() {
	if t.triggered {
		return
	}
	log.Println("Test alarm triggered")
	t.Trigger()
}

func (t *Timer) silence() {
	t.triggered = false
	t.notifier.Stop()
}

// Tick is one poll of the time source. Correctness needs at least one tick
// per minute; extra ticks inside the same minute are deduplicated by the
// minute-of-day guards. Detectors run before OnChange so the UI always sees
// a settled snapshot.
func (t *Timer) Tick() {
	now := t.clock.Now()
	minute := minuteOfDay(now)

	if minute != t.lastCheckedMinute {
		t.lastCheckedMinute = minute
		if t.matchesNow(now) {
			log.Printf("Alarm firing at %s", now.Format("3:04 PM"))
			t.Trigger()
			return // Trigger already notified the observer
		}
	}

	if m, ok := t.preAlarmDue(now); ok {
		t.notifier.Announce(m)
	}

	t.changed()
}

// matchesNow is the edge-triggered alarm match: true only when armed, not
// already ringing, and the current time equals the stored 12-hour alarm
// time. A 12-hour alarm matches both its AM and PM occurrence.
func (t *Timer) matchesNow(now time.Time) bool {
	if !t.config.Enabled || t.triggered {
		return false
	}
	return now.Hour()%12 == t.config.Hour && now.Minute() == t.config.Minute
}

// preAlarmDue decides whether a countdown announcement is due this tick.
// It fires at most once per minute-of-day, only while the alarm is armed,
// pre-alarm is on, and nothing is ringing, and only on whole multiples of
// the configured interval.
func (t *Timer) preAlarmDue(now time.Time) (int, bool) {
	if !t.config.PreAlarmEnabled || !t.config.Enabled || t.triggered {
		return 0, false
	}

	minute := minuteOfDay(now)
	if minute == t.lastPreAlarmMin {
		return 0, false
	}

	remaining := t.MinutesUntil(now)
	if remaining <= 0 || remaining%t.config.PreAlarmInterval != 0 {
		return 0, false
	}

	t.lastPreAlarmMin = minute
	return remaining, true
}

// MinutesUntil returns the whole minutes until the next alarm occurrence,
// ignoring seconds.
func (t *Timer) MinutesUntil(now time.Time) int {
	return minutesUntil(minuteOfDay(now), t.config.Hour, t.config.Minute)
}

// Countdown returns the exact time remaining until the next alarm
// occurrence. The 12-hour alarm has two candidate occurrences per day, so
// the result is always in [0, 12h).
func (t *Timer) Countdown(now time.Time) Countdown {
	deltaMinutes := minutesUntil(minuteOfDay(now), t.config.Hour, t.config.Minute)

	seconds := deltaMinutes*60 - now.Second()
	if seconds < 0 {
		// Inside the alarm minute with seconds already elapsed: treat as
		// "now", never negative.
		seconds = 0
	}

	return Countdown{
		Hours:   seconds / 3600,
		Minutes: (seconds % 3600) / 60,
		Seconds: seconds % 60,
	}
}

// NextOccurrence returns the wall-clock time of the next alarm occurrence.
func (t *Timer) NextOccurrence(now time.Time) time.Time {
	delta := minutesUntil(minuteOfDay(now), t.config.Hour, t.config.Minute)
	next := now.Add(time.Duration(delta) * time.Minute)
	return next.Truncate(time.Minute)
}

func (t *Timer) persist() {
	t.config.normalize()
	saveConfig(t.store, t.config)
	t.changed()
}

func (t *Timer) changed() {
	if t.OnChange != nil {
		t.OnChange()
	}
}

// minuteOfDay encodes a wall-clock time as hour*60+minute in [0,1439].
func minuteOfDay(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}

// minutesUntil picks the nearest of the two daily occurrences of a 12-hour
// alarm time. Candidates are hour:minute and hour+12:minute; the smallest
// one at or after the current minute wins, wrapping to tomorrow's AM
// occurrence when both have passed. Inside the alarm minute itself the
// delta is 0: the occurrence counts as "now" for the whole minute.
func minutesUntil(currentMinute, alarmHour, alarmMinute int) int {
	first := alarmHour*60 + alarmMinute
	second := (alarmHour+12)*60 + alarmMinute

	switch {
	case first >= currentMinute:
		return first - currentMinute
	case second >= currentMinute:
		return second - currentMinute
	default:
		return minutesPerDay - currentMinute + first
	}
}
