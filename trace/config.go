package trace

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the tunable parameters of a Solver. The zero value is not
// valid; use DefaultConfig and override individual fields.
type Config struct {
	// MaxReflectionOrder bounds how deep the beam tree is built. 0 means
	// only direct (order-0) paths are ever returned.
	MaxReflectionOrder int `validate:"gte=0"`

	// BucketSize is the number of leaves grouped per skip-sphere bucket.
	BucketSize int `validate:"gte=1"`

	// SpeedOfSound is metres/second, used to compute a path's arrival
	// time. GetDetailedPathsAtSpeed overrides this per call.
	SpeedOfSound float64 `validate:"gt=0"`

	// GrazingThresholdDegrees is the incidence angle, in degrees, at or
	// above which a reflection is flagged IsGrazing in detailed output.
	// Grazing reflections are never rejected, only flagged.
	GrazingThresholdDegrees float64 `validate:"gte=0,lte=90"`
}

// DefaultConfig returns the engine's documented defaults: reflection
// order 5, bucket size 16, speed of sound 343 m/s, grazing threshold 89°.
func DefaultConfig() Config {
	return Config{
		MaxReflectionOrder:      5,
		BucketSize:              16,
		SpeedOfSound:            343,
		GrazingThresholdDegrees: 89,
	}
}

var configValidate = validator.New()

// validate checks c against its struct tags, wrapping validator's error
// with ErrInvalidConfig so callers can reliably errors.Is against it.
func (c Config) validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
