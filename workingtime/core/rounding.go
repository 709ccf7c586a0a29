package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	HalfDayHours   = 3.25
	OvertimeFactor = 1.15
	FiveMinutes    = 5 * 60
	OneHour        = 60 * 60

	// MaxHalfDay is the working-time threshold in seconds separating a
	// "Half Day" from a "Present" attendance. Exactly MaxHalfDay is still a
	// half day. Constant arithmetic keeps this exact (13455).
	MaxHalfDay = HalfDayHours * OvertimeFactor * OneHour
)

// Hours rounds a duration up to the next 5-minute boundary and converts to
// hours. Rounding is always up so partial increments are never under-billed.
func Hours(durationSeconds int64) float64 {
	return math.Ceil(float64(durationSeconds)/FiveMinutes) * FiveMinutes / OneHour
}

// BillingHours applies the billable fraction to the raw duration first, then
// rounds the scaled value up to the next 5-minute boundary.
func BillingHours(durationSeconds int64, billable string) (float64, error) {
	fraction, err := ParseBillablePercent(billable)
	if err != nil {
		return 0, err
	}
	return math.Ceil(float64(durationSeconds)*fraction/FiveMinutes) * FiveMinutes / OneHour, nil
}

// ParseBillablePercent parses a percentage string like "80%" into 0.8.
// An empty value counts as fully billable.
func ParseBillablePercent(billable string) (float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(billable), "%"))
	if s == "" {
		return 1, nil
	}
	pct, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid billable percentage %q: %w", billable, err)
	}
	return pct / 100, nil
}
