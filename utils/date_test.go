package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	got := MustParseDate("2026-03-02")
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestMustParseDatePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustParseDate("02.03.2026") })
	assert.Panics(t, func() { MustParseDate("") })
}

func TestParseISOTime(t *testing.T) {
	local, err := ParseISOTime("2026-03-02T09:05:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC), *local)

	zoned, err := ParseISOTime("2026-03-02T09:05:00+01:00")
	assert.NoError(t, err)
	assert.Equal(t, 8, zoned.UTC().Hour())

	_, err = ParseISOTime("")
	assert.Error(t, err)

	_, err = ParseISOTime("yesterday")
	assert.Error(t, err)
}
