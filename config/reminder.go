package config

import (
	"errors"
	"time"
)

// ReminderLeadTime is how long before an event starts its reminder is sent
const ReminderLeadTime = 24 * time.Hour

// ErrInvalidTolerance ...
var ErrInvalidTolerance = errors.New("reminder tolerance must be positive and less than 12h")

// LockConfig for the memcached lease guarding against overlapping invocations
type LockConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Key        string `mapstructure:"key"`
	TTLSeconds uint32 `mapstructure:"ttl_seconds"`
}

// ReminderConfig ...
type ReminderConfig struct {
	// Tolerance is the half width of the window around now + ReminderLeadTime
	Tolerance time.Duration `mapstructure:"tolerance"`

	// ClaimEvents flags events inside a locking transaction before notifying (at most once)
	ClaimEvents bool `mapstructure:"claim_events"`

	// Timeout for a single invocation, zero means no timeout
	Timeout time.Duration `mapstructure:"timeout"`

	// Interval of the internal ticker in server mode, zero disables it
	Interval time.Duration `mapstructure:"interval"`

	Lock LockConfig `mapstructure:"lock"`
}

// Validate ...
func (c ReminderConfig) Validate() error {
	if c.Tolerance <= 0 || c.Tolerance >= 12*time.Hour {
		return ErrInvalidTolerance
	}
	return nil
}
