// Package face holds the clock-face geometry: converting times to hand
// angles for rendering, and pointer positions back to an alarm time for the
// draggable alarm hand.
package face

import "math"

// Angles are radians measured clockwise from 12 o'clock, in [0, 2π).

const twoPi = 2 * math.Pi

// HourAngle returns the hour hand angle, including the fractional advance
// from elapsed minutes.
func HourAngle(hour, minute int) float64 {
	h := float64(hour%12) + float64(minute)/60
	return h / 12 * twoPi
}

// MinuteAngle returns the minute hand angle, including the fractional
// advance from elapsed seconds.
func MinuteAngle(minute, second int) float64 {
	m := float64(minute) + float64(second)/60
	return m / 60 * twoPi
}

// SecondAngle returns the second hand angle.
func SecondAngle(second int) float64 {
	return float64(second) / 60 * twoPi
}

// AlarmAngle returns the alarm hand angle for a 12-hour alarm time.
func AlarmAngle(hour, minute int) float64 {
	return HourAngle(hour, minute)
}

// Point returns the face coordinates at the given angle and radius from the
// center. Y grows downward, matching screen coordinates.
func Point(cx, cy, radius, angle float64) (x, y float64) {
	return cx + radius*math.Sin(angle), cy - radius*math.Cos(angle)
}

// AngleFromPoint returns the clockwise-from-12 angle of a pointer position
// relative to the face center, in [0, 2π).
func AngleFromPoint(cx, cy, px, py float64) float64 {
	angle := math.Atan2(px-cx, cy-py)
	if angle < 0 {
		angle += twoPi
	}
	return angle
}

// SnapMinutes is the granularity the draggable alarm hand snaps to.
const SnapMinutes = 5

// AlarmTimeFromAngle converts an alarm hand angle back to a 12-hour alarm
// time, snapped to SnapMinutes. A full revolution covers 12 hours.
func AlarmTimeFromAngle(angle float64) (hour, minute int) {
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}

	totalMinutes := angle / twoPi * 12 * 60
	snapped := int(math.Round(totalMinutes/SnapMinutes)) * SnapMinutes
	snapped %= 12 * 60

	return snapped / 60, snapped % 60
}
