package timezone

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const utcLabel = "UTC"

// LoadLocation resolves a canonical zone id. Empty ids and "Local" are
// rejected instead of silently mapping to UTC or the host's zone.
func LoadLocation(zone string) (*time.Location, error) {
	if strings.TrimSpace(zone) == "" {
		return nil, fmt.Errorf("load location: empty zone id")
	}

	if zone == "Local" {
		return nil, fmt.Errorf("load location %q: not a canonical zone id", zone)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", zone, err)
	}

	return loc, nil
}

// OffsetLabel renders the UTC offset in effect at t, e.g. "UTC+1",
// "UTC-3:30" or "UTC" for a zero offset.
func OffsetLabel(t time.Time) string {
	_, offset := t.Zone()
	if offset == 0 {
		return utcLabel
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60

	if minutes == 0 {
		return fmt.Sprintf("%s%s%d", utcLabel, sign, hours)
	}

	return fmt.Sprintf("%s%s%d:%02d", utcLabel, sign, hours, minutes)
}
