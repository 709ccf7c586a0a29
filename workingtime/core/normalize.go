package core

import (
	"errors"
	"time"

	"alyf.de/workingtime/workingtime/model"
)

// ErrNonContinuous rejects a document whose punches are out of order.
var ErrNonContinuous = errors.New("time logs must be continuous")

// Normalize prepares a WorkingTime document for validation. The order is
// fixed: chaining depends on truncated times and duration computation
// depends on chained times.
func Normalize(wt *model.WorkingTime) {
	RemoveSeconds(wt.Logs)
	ChainToTimes(wt.Logs)
	SetDurations(wt)
}

// RemoveSeconds truncates every punch to whole-minute precision.
func RemoveSeconds(logs []model.TimeLog) {
	for i := range logs {
		if logs[i].FromTime != nil {
			t := truncateSeconds(*logs[i].FromTime)
			logs[i].FromTime = &t
		}
		if logs[i].ToTime != nil {
			t := truncateSeconds(*logs[i].ToTime)
			logs[i].ToTime = &t
		}
	}
}

// ChainToTimes treats the logs as a contiguous chain of intervals: every
// log except the last ends where the next one starts. Only the final log's
// to_time is taken as given.
func ChainToTimes(logs []model.TimeLog) {
	for i := 0; i < len(logs)-1; i++ {
		logs[i].ToTime = logs[i+1].FromTime
	}
}

// SetDurations recomputes per-log durations and the document's break and
// working totals from scratch.
func SetDurations(wt *model.WorkingTime) {
	wt.BreakTime = 0
	wt.WorkingTime = 0

	for i := range wt.Logs {
		log := &wt.Logs[i]
		if log.FromTime != nil && log.ToTime != nil {
			log.Duration = int64(log.ToTime.Sub(*log.FromTime) / time.Second)
		}

		if log.Duration != 0 {
			if log.IsBreak {
				wt.BreakTime += log.Duration
			} else {
				wt.WorkingTime += log.Duration
			}
		}
	}
}

// Validate rejects the whole document if any computed duration is negative.
func Validate(logs []model.TimeLog) error {
	for i := range logs {
		if logs[i].Duration < 0 {
			return ErrNonContinuous
		}
	}
	return nil
}

func truncateSeconds(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}
