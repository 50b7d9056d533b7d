package config

import "time"

// WatchConfig defines how fixture changes trigger re-verification
type WatchConfig struct {
	ReloadDelayMs int `json:"reload_delay_ms,omitempty" yaml:"reload_delay_ms,omitempty" validate:"min=0"`
}

// NewDefaultWatchConfig creates default watch configuration
func NewDefaultWatchConfig() WatchConfig {
	return WatchConfig{ReloadDelayMs: DefaultReloadDelayMs}
}

// ReloadDelay returns the debounce delay between a change and a re-run
func (c WatchConfig) ReloadDelay() time.Duration {
	return time.Duration(c.ReloadDelayMs) * time.Millisecond
}
