package face

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandAngles(t *testing.T) {
	assert.InDelta(t, 0, HourAngle(12, 0), 1e-9)
	assert.InDelta(t, math.Pi/2, HourAngle(3, 0), 1e-9)
	assert.InDelta(t, math.Pi, HourAngle(6, 0), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, HourAngle(9, 0), 1e-9)

	// Half past advances the hour hand half a step.
	assert.InDelta(t, (3.5/12)*2*math.Pi, HourAngle(3, 30), 1e-9)

	assert.InDelta(t, math.Pi, MinuteAngle(30, 0), 1e-9)
	assert.InDelta(t, math.Pi/2, SecondAngle(15), 1e-9)
}

func TestPointAndAngleRoundTrip(t *testing.T) {
	const cx, cy, r = 100.0, 100.0, 80.0

	for _, angle := range []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, 4.2, 2*math.Pi - 0.01} {
		x, y := Point(cx, cy, r, angle)
		got := AngleFromPoint(cx, cy, x, y)
		assert.InDelta(t, angle, got, 1e-9, "angle=%v", angle)
	}

	// 12 o'clock is straight up.
	x, y := Point(cx, cy, r, 0)
	assert.InDelta(t, cx, x, 1e-9)
	assert.InDelta(t, cy-r, y, 1e-9)

	// 3 o'clock is to the right.
	x, y = Point(cx, cy, r, math.Pi/2)
	assert.InDelta(t, cx+r, x, 1e-9)
	assert.InDelta(t, cy, y, 1e-9)
}

func TestAlarmTimeFromAngle(t *testing.T) {
	tests := []struct {
		name       string
		angle      float64
		wantHour   int
		wantMinute int
	}{
		{"noon", 0, 0, 0},
		{"three", math.Pi / 2, 3, 0},
		{"six", math.Pi, 6, 0},
		{"nine", 3 * math.Pi / 2, 9, 0},
		{"full revolution wraps", 2 * math.Pi, 0, 0},
		{"negative wraps", -math.Pi / 2, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := AlarmTimeFromAngle(tt.angle)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMinute, m)
		})
	}
}

func TestAlarmTimeSnapsToFiveMinutes(t *testing.T) {
	for _, wantMinute := range []int{0, 5, 25, 55} {
		angle := AlarmAngle(7, wantMinute)

		// Nudge the hand slightly off the exact position, as a drag would.
		for _, jitter := range []float64{-0.002, 0, 0.002} {
			h, m := AlarmTimeFromAngle(angle + jitter)
			assert.Equal(t, 7, h, "minute=%d jitter=%v", wantMinute, jitter)
			assert.Equal(t, wantMinute, m, "minute=%d jitter=%v", wantMinute, jitter)
		}
	}
}

func TestAlarmAngleRoundTrip(t *testing.T) {
	for hour := 0; hour < 12; hour++ {
		for minute := 0; minute < 60; minute += SnapMinutes {
			h, m := AlarmTimeFromAngle(AlarmAngle(hour, minute))
			assert.Equal(t, hour, h)
			assert.Equal(t, minute, m)
		}
	}
}
