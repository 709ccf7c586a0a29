package core

import (
	"strings"
	"testing"
	"time"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/utils"
	"alyf.de/workingtime/workingtime/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildTimesheetForWorkingTime(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	billing := &core.ProjectBilling{
		ProjectID:   7,
		CustomerID:  utils.Ptr(int32(3)),
		BillingRate: 120,
		JiraSite:    "example.atlassian.net",
	}

	ts := BuildTimesheet(TimesheetSource{
		Log:          model.TimeLog{ProjectID: utils.Ptr(int32(7)), Duration: 3600},
		FromTime:     date,
		Hours:        1,
		BillingHours: 0.85,
		CostingRate:  80,
		Billing:      billing,
		Description:  "Fix bug (ABC-1)",
		IssueURL:     "https://example.atlassian.net/browse/ABC-1",

		EmployeeID:      utils.Ptr(int32(42)),
		WorkingTimeName: "WT-0001",
	})

	assert.True(t, strings.HasPrefix(ts.Name, "TS-"))
	assert.True(t, ts.IsBillable)
	assert.Equal(t, core.DefaultActivityType, ts.ActivityType)
	assert.Equal(t, models.DocStatusDraft, ts.DocStatus)

	// Base and applied rates are mirrored.
	assert.Equal(t, 120.0, ts.BaseBillingRate)
	assert.Equal(t, 120.0, ts.BillingRate)
	assert.Equal(t, 80.0, ts.BaseCostingRate)
	assert.Equal(t, 80.0, ts.CostingRate)

	assert.Equal(t, 1.0, ts.Hours)
	assert.Equal(t, 0.85, ts.BillingHours)
	assert.Equal(t, date, ts.FromTime)

	assert.Equal(t, int32(7), *ts.ProjectID)
	assert.Equal(t, int32(7), *ts.ParentProjectID)
	assert.Equal(t, int32(3), *ts.CustomerID)

	assert.Equal(t, int32(42), *ts.EmployeeID)
	assert.Equal(t, "WT-0001", ts.WorkingTimeName)
	assert.Empty(t, ts.FreelancerTimeName)
}

func TestBuildTimesheetForFreelancerTime(t *testing.T) {
	logDate := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	billing := &core.ProjectBilling{ProjectID: 9, BillingRate: 95}

	ts := BuildTimesheet(TimesheetSource{
		Log:          model.TimeLog{ProjectID: utils.Ptr(int32(9)), Duration: 1800, Date: &logDate},
		FromTime:     logDate,
		Hours:        0.5,
		BillingHours: 0.5,
		CostingRate:  60,
		Billing:      billing,
		Description:  "-",

		FreelancerTimeName: "FT-0001",
	})

	// Freelancer origin: no employee tag, from_time is the log's own date.
	assert.Nil(t, ts.EmployeeID)
	assert.Equal(t, "FT-0001", ts.FreelancerTimeName)
	assert.Empty(t, ts.WorkingTimeName)
	assert.Equal(t, logDate, ts.FromTime)
	assert.Equal(t, ts.Hours, ts.BillingHours)
	assert.Nil(t, ts.CustomerID)
}

func TestBuildTimesheetNamesAreUnique(t *testing.T) {
	billing := &core.ProjectBilling{ProjectID: 1}
	src := TimesheetSource{Billing: billing}

	a := BuildTimesheet(src)
	b := BuildTimesheet(src)
	assert.NotEqual(t, a.Name, b.Name)
}
