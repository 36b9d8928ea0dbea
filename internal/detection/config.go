package detection

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Default thresholds. Spacing and diff mirror the usual carrier defaults: a
// fresh suggestion every ten minutes at most, unless the sample disagrees
// with the last accepted one by more than two seconds.
const (
	DefaultUpdateSpacing = 10 * time.Minute
	DefaultUpdateDiff    = 2 * time.Second
	DefaultMaxSignalAge  = 7 * 24 * time.Hour
)

// Config tunes one detection engine instance.
type Config struct {
	// PhoneID identifies the modem this instance serves; forwarded with
	// every time suggestion.
	PhoneID int `validate:"min=0"`

	// UpdateSpacing and UpdateDiff are the rate-limit thresholds: a new
	// sample within UpdateSpacing of the last accepted one is suppressed
	// unless it implies more than UpdateDiff of drift.
	UpdateSpacing time.Duration `validate:"min=0"`
	UpdateDiff    time.Duration `validate:"min=0"`

	// MaxSignalAge bounds how stale a signal's receipt instant may be
	// before it is treated as a clock anomaly and discarded.
	MaxSignalAge time.Duration `validate:"min=0"`

	// IgnoreNetworkTime suppresses all time suggestions while leaving zone
	// detection active (device-level override).
	IgnoreNetworkTime bool
}

// DefaultConfig returns the standard tuning for one phone.
func DefaultConfig(phoneID int) Config {
	return Config{
		PhoneID:       phoneID,
		UpdateSpacing: DefaultUpdateSpacing,
		UpdateDiff:    DefaultUpdateDiff,
		MaxSignalAge:  DefaultMaxSignalAge,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	return nil
}
