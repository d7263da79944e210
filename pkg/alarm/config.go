package alarm

import "encoding/json"

// Store is the key-value persistence the timer writes its config through.
// Implementations must tolerate missing keys; Get reports whether the key
// was present.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// configKey is the single preference key the alarm config lives under,
// serialized as a JSON blob.
const configKey = "alarm_config"

// Config holds the persisted alarm settings. Hour is stored in 12-hour form,
// so an armed alarm matches both its AM and PM occurrence each day.
type Config struct {
	Enabled          bool `json:"enabled"`
	Hour             int  `json:"hour"`   // 0-11
	Minute           int  `json:"minute"` // 0-59
	PreAlarmEnabled  bool `json:"pre_alarm_enabled"`
	PreAlarmInterval int  `json:"pre_alarm_interval"` // minutes between countdown announcements
}

// DefaultConfig returns the settings used when nothing (or garbage) is
// persisted: disarmed, 07:00, pre-alarm off, announce every 5 minutes.
func DefaultConfig() Config {
	return Config{
		Enabled:          false,
		Hour:             7,
		Minute:           0,
		PreAlarmEnabled:  false,
		PreAlarmInterval: 5,
	}
}

// normalize wraps every field into its valid range. Out-of-range writes are
// wrapped, never rejected.
func (c *Config) normalize() {
	c.Hour = wrap(c.Hour, 12)
	c.Minute = wrap(c.Minute, 60)
	if c.PreAlarmInterval < 1 {
		c.PreAlarmInterval = 1
	}
}

// wrap maps any integer into [0,n) with a non-negative result for negative
// input.
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// loadConfig reads the config blob from the store, falling back to defaults
// when the key is missing or the JSON is malformed.
func loadConfig(store Store) Config {
	config := DefaultConfig()

	raw, ok := store.Get(configKey)
	if !ok || raw == "" {
		return config
	}

	if err := json.Unmarshal([]byte(raw), &config); err != nil {
		return DefaultConfig()
	}

	config.normalize()
	return config
}

// saveConfig writes the config blob back to the store.
func saveConfig(store Store, config Config) {
	if raw, err := json.Marshal(config); err == nil {
		store.Set(configKey, string(raw))
	}
}
