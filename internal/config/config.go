// Package config loads descstat settings from file, environment and
// defaults. The defaults reproduce the flagless contract: a fixed report of
// min, max, mean, std and the 90th/95th percentiles in text format.
package config

import (
	"fmt"

	"github.com/Sumatoshi-tech/descstat/internal/report"
)

// DefaultFormat is the report format used when none is configured.
const DefaultFormat = report.FormatText

// DefaultPercentiles are the tail ranks reported when none are configured.
var DefaultPercentiles = []float64{90, 95}

// Config is the top-level configuration struct for descstat.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Format      string    `mapstructure:"format"`
	Percentiles []float64 `mapstructure:"percentiles"`
}

// Validate checks the decoded configuration for values no run could honor.
func (c *Config) Validate() error {
	switch c.Format {
	case report.FormatText, report.FormatTable, report.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, c.Format)
	}

	if len(c.Percentiles) == 0 {
		return ErrNoPercentiles
	}

	return nil
}
