package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	store := newMemStore()

	config := loadConfig(store)

	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigDefaultsOnMalformedJSON(t *testing.T) {
	for _, raw := range []string{"{not json", "[]", `"seven"`, "\x00\x01"} {
		store := newMemStore()
		store.Set(configKey, raw)

		config := loadConfig(store)

		assert.Equal(t, DefaultConfig(), config, "raw=%q", raw)
		assert.False(t, config.Enabled)
		assert.Equal(t, 7, config.Hour)
		assert.Equal(t, 0, config.Minute)
	}
}

func TestLoadConfigNormalizesOutOfRangeValues(t *testing.T) {
	store := newMemStore()
	store.Set(configKey, `{"enabled":true,"hour":14,"minute":-5,"pre_alarm_enabled":true,"pre_alarm_interval":0}`)

	config := loadConfig(store)

	assert.True(t, config.Enabled)
	assert.Equal(t, 2, config.Hour)
	assert.Equal(t, 55, config.Minute)
	assert.Equal(t, 1, config.PreAlarmInterval)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newMemStore()
	want := Config{Enabled: true, Hour: 11, Minute: 59, PreAlarmEnabled: true, PreAlarmInterval: 15}

	saveConfig(store, want)

	assert.Equal(t, want, loadConfig(store))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{0, 12, 0},
		{11, 12, 11},
		{12, 12, 0},
		{-1, 12, 11},
		{-13, 12, 11},
		{60, 60, 0},
		{-61, 60, 59},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wrap(tt.v, tt.n), "wrap(%d, %d)", tt.v, tt.n)
	}
}
