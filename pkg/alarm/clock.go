package alarm

import "time"

// Clock supplies the current wall-clock time. The timer polls it on every
// tick; injecting it keeps the trigger logic testable with a fixed time.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard time package.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
