package core

import (
	"testing"

	"alyf.de/workingtime/core/models"
	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatus(t *testing.T) {
	tests := []struct {
		name           string
		workingSeconds int64
		expected       string
	}{
		{
			name:           "Zero working time",
			workingSeconds: 0,
			expected:       models.AttendanceStatusHalfDay,
		},
		{
			name:           "Exactly the half day threshold",
			workingSeconds: 13455,
			expected:       models.AttendanceStatusHalfDay,
		},
		{
			name:           "One second over the threshold",
			workingSeconds: 13456,
			expected:       models.AttendanceStatusPresent,
		},
		{
			name:           "Full day",
			workingSeconds: 8 * 3600,
			expected:       models.AttendanceStatusPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AttendanceStatus(tt.workingSeconds))
		})
	}
}

func TestMaxHalfDayConstant(t *testing.T) {
	// 3.25 h at the 1.15 overtime factor.
	assert.Equal(t, int64(13455), int64(MaxHalfDay))
}
