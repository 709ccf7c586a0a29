package core

import (
	"testing"
	"time"

	"alyf.de/workingtime/workingtime/model"
	"github.com/stretchr/testify/assert"
)

func punch(h, m, s int) *time.Time {
	t := time.Date(2026, 3, 2, h, m, s, 0, time.UTC)
	return &t
}

func TestNormalizeChainsPunches(t *testing.T) {
	wt := &model.WorkingTime{
		Logs: []model.TimeLog{
			{FromTime: punch(9, 0, 0)},
			{FromTime: punch(9, 5, 30), IsBreak: true},
			{FromTime: punch(12, 0, 0), ToTime: punch(12, 30, 15)},
		},
	}

	Normalize(wt)

	// Seconds stripped before chaining.
	assert.Equal(t, *punch(9, 5, 0), *wt.Logs[0].ToTime)
	assert.Equal(t, *punch(12, 0, 0), *wt.Logs[1].ToTime)
	assert.Equal(t, *punch(12, 30, 0), *wt.Logs[2].ToTime)

	assert.Equal(t, int64(300), wt.Logs[0].Duration)
	assert.Equal(t, int64(10500), wt.Logs[1].Duration)
	assert.Equal(t, int64(1800), wt.Logs[2].Duration)

	assert.Equal(t, int64(10500), wt.BreakTime)
	assert.Equal(t, int64(300+1800), wt.WorkingTime)

	assert.NoError(t, Validate(wt.Logs))
}

func TestNormalizeRecomputesTotals(t *testing.T) {
	wt := &model.WorkingTime{
		BreakTime:   999,
		WorkingTime: 999,
		Logs: []model.TimeLog{
			{FromTime: punch(8, 0, 0), ToTime: punch(9, 0, 0)},
		},
	}

	Normalize(wt)

	assert.Equal(t, int64(0), wt.BreakTime)
	assert.Equal(t, int64(3600), wt.WorkingTime)
}

func TestNormalizeOpenEndedLastLog(t *testing.T) {
	wt := &model.WorkingTime{
		Logs: []model.TimeLog{
			{FromTime: punch(9, 0, 0)},
			{FromTime: punch(10, 0, 0)},
		},
	}

	Normalize(wt)

	assert.Equal(t, int64(3600), wt.Logs[0].Duration)
	// The final log has no to_time and keeps a zero duration.
	assert.Nil(t, wt.Logs[1].ToTime)
	assert.Equal(t, int64(0), wt.Logs[1].Duration)
}

func TestValidateRejectsOutOfOrderPunches(t *testing.T) {
	wt := &model.WorkingTime{
		Logs: []model.TimeLog{
			{FromTime: punch(10, 0, 0)},
			{FromTime: punch(9, 0, 0)},
			{FromTime: punch(11, 0, 0)},
		},
	}

	Normalize(wt)

	err := Validate(wt.Logs)
	assert.ErrorIs(t, err, ErrNonContinuous)
}

func TestValidateAcceptsExplicitDurations(t *testing.T) {
	logs := []model.TimeLog{
		{Duration: 3600},
		{Duration: 0},
	}
	assert.NoError(t, Validate(logs))
}
