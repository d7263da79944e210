package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) set(hour, min, sec int) {
	f.now = time.Date(2025, 8, 9, hour, min, sec, 0, time.UTC)
}

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *memStore) Set(key, value string) {
	s.data[key] = value
}

type recordingNotifier struct {
	starts    int
	stops     int
	announced []int
}

func (n *recordingNotifier) Start() { n.starts++ }
func (n *recordingNotifier) Stop()  { n.stops++ }

func (n *recordingNotifier) Announce(mins int) {
	n.announced = append(n.announced, mins)
}

func newTestTimer() (*Timer, *fakeClock, *memStore, *recordingNotifier) {
	clock := &fakeClock{}
	clock.set(12, 0, 0)
	store := newMemStore()
	notifier := &recordingNotifier{}
	return NewTimer(clock, store, notifier), clock, store, notifier
}

func TestCountdownBounds(t *testing.T) {
	timer, clock, _, _ := newTestTimer()

	for hour := 0; hour < 12; hour++ {
		for _, minute := range []int{0, 13, 59} {
			timer.SetHours(hour)
			timer.SetMinutes(minute)

			for _, now := range []struct{ h, m, s int }{
				{0, 0, 0}, {6, 59, 59}, {11, 59, 1}, {12, 0, 0}, {23, 59, 59},
				{hour, minute, 0}, {hour, minute, 30},
			} {
				clock.set(now.h, now.m, now.s)
				seconds := timer.Countdown(clock.Now()).TotalSeconds()
				assert.GreaterOrEqual(t, seconds, 0,
					"alarm %02d:%02d at %02d:%02d:%02d", hour, minute, now.h, now.m, now.s)
				assert.Less(t, seconds, 12*3600,
					"alarm %02d:%02d at %02d:%02d:%02d", hour, minute, now.h, now.m, now.s)
			}
		}
	}
}

func TestCountdownTransitionAcrossAlarmMinute(t *testing.T) {
	timer, clock, _, _ := newTestTimer()
	timer.SetHours(7)
	timer.SetMinutes(0)

	clock.set(6, 59, 59)
	c := timer.Countdown(clock.Now())
	assert.Equal(t, Countdown{Hours: 0, Minutes: 0, Seconds: 1}, c)
	assert.Equal(t, 1, timer.MinutesUntil(clock.Now()))

	// The whole alarm minute counts as "now": the minute delta drops from
	// 1 to 0 and the countdown never jumps to the PM occurrence.
	clock.set(7, 0, 0)
	assert.Equal(t, 0, timer.MinutesUntil(clock.Now()))
	assert.Equal(t, Countdown{}, timer.Countdown(clock.Now()))

	// Seconds already elapsed inside the alarm minute clamp to zero
	// rather than going negative.
	clock.set(7, 0, 30)
	assert.Equal(t, 0, timer.Countdown(clock.Now()).TotalSeconds())

	// One minute past the alarm, the next occurrence is the PM one.
	clock.set(7, 1, 0)
	assert.Equal(t, 12*60-1, timer.MinutesUntil(clock.Now()))

	// The PM occurrence minute is "now" as well.
	clock.set(19, 0, 0)
	assert.Equal(t, 0, timer.MinutesUntil(clock.Now()))
}

func TestMatchFiresAtBothOccurrences(t *testing.T) {
	timer, clock, _, notifier := newTestTimer()
	timer.SetHours(7)
	timer.SetMinutes(0)
	timer.Enable()

	clock.set(7, 0, 0)
	timer.Tick()
	require.True(t, timer.Triggered(), "AM occurrence should fire")
	require.Equal(t, 1, notifier.starts)

	timer.Dismiss()
	timer.Enable()

	clock.set(19, 0, 0)
	timer.Tick()
	require.True(t, timer.Triggered(), "PM occurrence should fire")
	require.Equal(t, 2, notifier.starts)
}

func TestMatchFiresAtMostOncePerMinute(t *testing.T) {
	timer, clock, _, notifier := newTestTimer()
	timer.SetHours(7)
	timer.SetMinutes(30)
	timer.Enable()

	// Polls arrive far more often than once a minute.
	for sec := 0; sec < 10; sec++ {
		clock.set(7, 30, sec)
		timer.Tick()
		if sec == 0 {
			// Dismiss immediately; later ticks in the same minute must not
			// re-fire even though the time still matches.
			timer.Dismiss()
			timer.Enable()
		}
	}

	assert.Equal(t, 1, notifier.starts)
}

func TestMatchRespectsEnabledAndTriggered(t *testing.T) {
	timer, clock, _, notifier := newTestTimer()
	timer.SetHours(7)
	timer.SetMinutes(0)

	clock.set(7, 0, 0)
	timer.Tick()
	assert.False(t, timer.Triggered(), "disarmed alarm must not fire")
	assert.Zero(t, notifier.starts)

	timer.Enable()
	timer.TestTrigger()
	require.Equal(t, 1, notifier.starts)

	clock.set(19, 0, 0)
	timer.Tick()
	assert.Equal(t, 1, notifier.starts, "no re-fire while ringing")
}

func TestTriggerIdempotent(t *testing.T) {
	timer, _, _, notifier := newTestTimer()

	timer.Trigger()
	timer.Trigger()
	timer.TestTrigger()

	assert.True(t, timer.Triggered())
	assert.Equal(t, 1, notifier.starts)
}

func TestDismissIdempotentAndDisarms(t *testing.T) {
	timer, _, _, notifier := newTestTimer()
	timer.Enable()
	timer.Trigger()

	timer.Dismiss()
	state := timer.Config()
	timer.Dismiss()

	assert.False(t, timer.Triggered())
	assert.False(t, timer.Config().Enabled, "dismiss disarms the alarm")
	assert.Equal(t, state, timer.Config())
	assert.Equal(t, 1, notifier.stops)
}

func TestDisableWhileRingingDismisses(t *testing.T) {
	timer, _, _, notifier := newTestTimer()
	timer.Enable()
	timer.Trigger()

	timer.Disable()

	assert.False(t, timer.Triggered())
	assert.False(t, timer.Config().Enabled)
	assert.Equal(t, 1, notifier.stops)

	timer.Disable()
	assert.Equal(t, 1, notifier.stops, "stop invoked exactly once")
}

func TestPreAlarmAnnouncesOnIntervalMultiples(t *testing.T) {
	timer, clock, _, notifier := newTestTimer()
	timer.SetHours(8) // 8:00 AM and PM
	timer.SetMinutes(0)
	timer.SetPreAlarm(true, 5)
	timer.Enable()

	// 37 minutes out: not a multiple of 5, nothing announced.
	clock.set(7, 23, 0)
	timer.Tick()
	assert.Empty(t, notifier.announced)

	// 35 minutes out: announce once, even across repeated polls in the
	// same minute.
	for sec := 0; sec < 5; sec++ {
		clock.set(7, 25, sec)
		timer.Tick()
	}
	assert.Equal(t, []int{35}, notifier.announced)

	// Next qualifying minute announces again.
	clock.set(7, 30, 0)
	timer.Tick()
	assert.Equal(t, []int{35, 30}, notifier.announced)
}

func TestPreAlarmRequiresArmedAndSilent(t *testing.T) {
	timer, clock, _, notifier := newTestTimer()
	timer.SetHours(8)
	timer.SetMinutes(0)
	timer.SetPreAlarm(true, 5)

	clock.set(7, 25, 0)
	timer.Tick()
	assert.Empty(t, notifier.announced, "disarmed alarm announces nothing")

	timer.Enable()
	timer.TestTrigger()
	clock.set(7, 30, 0)
	timer.Tick()
	assert.Empty(t, notifier.announced, "ringing alarm announces nothing")

	timer.Dismiss()
	timer.Enable()
	clock.set(7, 35, 0)
	timer.Tick()
	assert.Equal(t, []int{25}, notifier.announced)
}

func TestSetHoursWrapsLikeModulo(t *testing.T) {
	timer, _, _, _ := newTestTimer()

	for _, h := range []int{-25, -13, -12, -1, 0, 7, 11, 12, 13, 23, 24, 100} {
		timer.SetHours(h)
		want := ((h % 12) + 12) % 12
		assert.Equal(t, want, timer.Config().Hour, "SetHours(%d)", h)
	}

	for _, m := range []int{-61, -1, 0, 59, 60, 61, 125} {
		timer.SetMinutes(m)
		want := ((m % 60) + 60) % 60
		assert.Equal(t, want, timer.Config().Minute, "SetMinutes(%d)", m)
	}
}

func TestTickNotifiesObserverAfterStateSettles(t *testing.T) {
	timer, clock, _, _ := newTestTimer()
	timer.SetHours(7)
	timer.SetMinutes(0)
	timer.Enable()

	var sawTriggered bool
	timer.OnChange = func() {
		sawTriggered = timer.Triggered()
	}

	clock.set(7, 0, 0)
	timer.Tick()

	assert.True(t, sawTriggered, "observer must run after the trigger, not before")
}

func TestConfigPersistsAcrossRestart(t *testing.T) {
	timer, clock, store, notifier := newTestTimer()
	timer.SetHours(9)
	timer.SetMinutes(45)
	timer.SetPreAlarm(true, 10)
	timer.Enable()
	timer.TestTrigger()

	reloaded := NewTimer(clock, store, notifier)

	assert.Equal(t, timer.Config(), reloaded.Config())
	assert.False(t, reloaded.Triggered(), "ringing state never survives a restart")
}

func TestNowComesFromInjectedClock(t *testing.T) {
	timer, clock, _, _ := newTestTimer()

	clock.set(4, 30, 15)

	assert.Equal(t, clock.Now(), timer.Now())
}

func TestNextOccurrence(t *testing.T) {
	timer, clock, _, _ := newTestTimer()
	timer.SetHours(7)
	timer.SetMinutes(15)

	clock.set(6, 0, 30)
	next := timer.NextOccurrence(clock.Now())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 15, next.Minute())

	clock.set(20, 0, 0)
	next = timer.NextOccurrence(clock.Now())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, time.Date(2025, 8, 10, 7, 15, 0, 0, time.UTC), next)
}
