package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHours(t *testing.T) {
	tests := []struct {
		name     string
		duration int64
		expected float64
	}{
		{
			name:     "Zero duration",
			duration: 0,
			expected: 0,
		},
		{
			name:     "One second rounds up to five minutes",
			duration: 1,
			expected: 300.0 / 3600.0,
		},
		{
			name:     "Exactly five minutes",
			duration: 300,
			expected: 300.0 / 3600.0,
		},
		{
			name:     "Just over five minutes",
			duration: 301,
			expected: 600.0 / 3600.0,
		},
		{
			name:     "One minute under an hour",
			duration: 3540,
			expected: 59.0 / 60.0,
		},
		{
			name:     "Exactly one hour",
			duration: 3600,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Hours(tt.duration), 1e-9)
		})
	}
}

func TestHoursNeverUnderRounds(t *testing.T) {
	previous := 0.0
	for d := int64(0); d <= 4*3600; d += 17 {
		h := Hours(d)

		// Monotonically non-decreasing.
		assert.GreaterOrEqual(t, h, previous, "duration %d", d)
		// Never below the exact hour value.
		assert.GreaterOrEqual(t, h, float64(d)/3600.0, "duration %d", d)

		previous = h
	}
}

func TestBillingHours(t *testing.T) {
	tests := []struct {
		name     string
		duration int64
		billable string
		expected float64
	}{
		{
			name:     "Fully billable hour",
			duration: 3600,
			billable: "100%",
			expected: 1,
		},
		{
			name:     "Scaling applies before rounding",
			duration: 3600,
			billable: "80%",
			// 2880s scaled, rounded up to 3000s
			expected: 3000.0 / 3600.0,
		},
		{
			name:     "Half billable short log",
			duration: 600,
			billable: "50%",
			expected: 300.0 / 3600.0,
		},
		{
			name:     "Zero percent",
			duration: 3600,
			billable: "0%",
			expected: 0,
		},
		{
			name:     "Empty counts as fully billable",
			duration: 900,
			billable: "",
			expected: 900.0 / 3600.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BillingHours(tt.duration, tt.billable)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestBillingHoursNeverExceedsHours(t *testing.T) {
	for d := int64(0); d <= 2*3600; d += 113 {
		for _, pct := range []string{"0%", "25%", "50%", "80%", "100%"} {
			got, err := BillingHours(d, pct)
			assert.NoError(t, err)
			assert.LessOrEqual(t, got, Hours(d), "duration %d pct %s", d, pct)
		}

		full, err := BillingHours(d, "100%")
		assert.NoError(t, err)
		assert.Equal(t, Hours(d), full, "duration %d", d)
	}
}

func TestBillingHoursInvalidPercent(t *testing.T) {
	_, err := BillingHours(600, "many%")
	assert.Error(t, err)
}

func TestParseBillablePercent(t *testing.T) {
	tests := []struct {
		billable string
		expected float64
	}{
		{"100%", 1},
		{"80%", 0.8},
		{"7.5%", 0.075},
		{"", 1},
		{" 50% ", 0.5},
	}

	for _, tt := range tests {
		got, err := ParseBillablePercent(tt.billable)
		assert.NoError(t, err, tt.billable)
		assert.InDelta(t, tt.expected, got, 1e-9, tt.billable)
	}
}
