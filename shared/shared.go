package shared

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"zonetag/shared/constant"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BoolOrDefault parses a query flag, keeping fallback when value is empty or invalid.
func BoolOrDefault(value string, fallback bool) bool {
	if parsed := ConvertStringToBool(value); parsed != nil {
		return *parsed
	}

	return fallback
}

// ParseInstant parses an RFC3339 timestamp; an empty value means now.
func ParseInstant(value string, now func() time.Time) (time.Time, error) {
	if value == constant.Empty {
		return now(), nil
	}

	instant, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, err
	}

	return instant, nil
}
