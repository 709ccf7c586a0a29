package utils

import (
	"fmt"
	"time"
)

// BerlinTZ is the reporting timezone; wall-clock punches are interpreted here.
var BerlinTZ = time.FixedZone("CET", 1*60*60)

func BerlinNow() time.Time {
	return time.Now().In(BerlinTZ)
}

func MustParseDate(dateStr string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		panic(fmt.Sprintf("invalid date %q: %v", dateStr, err))
	}
	return t
}

func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
