// Package store adapts Fyne preferences to the alarm timer's key-value
// persistence interface.
package store

import (
	"fyne.io/fyne/v2"

	"github.com/borgmon/chime/pkg/alarm"
)

// PrefStore persists string values through the app's Fyne preferences.
type PrefStore struct {
	app fyne.App
}

var _ alarm.Store = (*PrefStore)(nil)

// NewPrefStore creates a PrefStore backed by the given app's preferences.
func NewPrefStore(app fyne.App) *PrefStore {
	return &PrefStore{app: app}
}

// Get returns the stored value for key, and whether anything was stored.
func (s *PrefStore) Get(key string) (string, bool) {
	value := s.app.Preferences().String(key)
	return value, value != ""
}

// Set stores value under key.
func (s *PrefStore) Set(key, value string) {
	s.app.Preferences().SetString(key, value)
}

// UI preference keys kept outside the alarm config blob.
const (
	KeyHoldSeconds = "hold_time_seconds"
	KeyAutoStart   = "auto_start"
	KeyKeepAwake   = "keep_awake"
)

// HoldSeconds returns how long the dismiss button must be held.
func (s *PrefStore) HoldSeconds() int {
	return s.app.Preferences().IntWithFallback(KeyHoldSeconds, 3)
}

// SetHoldSeconds stores the dismiss hold time.
func (s *PrefStore) SetHoldSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyHoldSeconds, seconds)
}

// AutoStart returns whether the app should launch at login.
func (s *PrefStore) AutoStart() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoStart, false)
}

// SetAutoStart stores the launch-at-login choice.
func (s *PrefStore) SetAutoStart(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoStart, enabled)
}

// KeepAwake returns whether the display should be kept awake while the
// alarm is armed.
func (s *PrefStore) KeepAwake() bool {
	return s.app.Preferences().BoolWithFallback(KeyKeepAwake, false)
}

// SetKeepAwake stores the keep-awake choice.
func (s *PrefStore) SetKeepAwake(enabled bool) {
	s.app.Preferences().SetBool(KeyKeepAwake, enabled)
}
