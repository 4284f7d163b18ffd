package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDateTime parses an RFC3339 (or RFC3339 without offset) timestamp as
// sent by API clients. A trailing "Z" is accepted as UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	// Fall back to a bare local datetime without zone information
	return time.Parse("2006-01-02T15:04:05", value)
}
