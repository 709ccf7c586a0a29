package core

import (
	"errors"
	"fmt"
	"time"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/workingtime/model"
	"gorm.io/gorm"
)

// ErrNotDraft rejects lifecycle transitions on documents that already left
// the draft state.
var ErrNotDraft = errors.New("only draft documents can be submitted")

// TimesheetSource carries everything resolved for one qualifying time log.
type TimesheetSource struct {
	Log          model.TimeLog
	FromTime     time.Time
	Hours        float64
	BillingHours float64
	CostingRate  float64
	Billing      *core.ProjectBilling
	Description  string
	IssueURL     string

	// Origin tags: EmployeeID+WorkingTimeName for employees,
	// FreelancerTimeName for freelancers.
	EmployeeID         *int32
	WorkingTimeName    string
	FreelancerTimeName string
}

// BuildTimesheet assembles one draft single-line timesheet. Base and applied
// rates are mirrored; the billable flag is always set.
func BuildTimesheet(src TimesheetSource) models.Timesheet {
	return models.Timesheet{
		Name:         models.NewDocName("TS"),
		IsBillable:   true,
		ActivityType: core.DefaultActivityType,

		BaseBillingRate: src.Billing.BillingRate,
		BaseCostingRate: src.CostingRate,
		BillingRate:     src.Billing.BillingRate,
		CostingRate:     src.CostingRate,

		Hours:        src.Hours,
		BillingHours: src.BillingHours,

		FromTime:     src.FromTime,
		Description:  src.Description,
		JiraIssueURL: src.IssueURL,
		DocStatus:    models.DocStatusDraft,

		ProjectID:       src.Log.ProjectID,
		ParentProjectID: src.Log.ProjectID,
		CustomerID:      src.Billing.CustomerID,

		EmployeeID:         src.EmployeeID,
		WorkingTimeName:    src.WorkingTimeName,
		FreelancerTimeName: src.FreelancerTimeName,
	}
}

// SubmitWorkingTime runs the full submit pass: normalization, validation,
// attendance derivation and timesheet fan-out, atomically.
func SubmitWorkingTime(db *gorm.DB, jira IssueSummarizer, wt *model.WorkingTime) error {
	if wt.DocStatus != models.DocStatusDraft {
		return ErrNotDraft
	}

	Normalize(wt)
	if err := Validate(wt.Logs); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := ReplaceLogs(tx, model.ParentTypeWorkingTime, wt.Name, wt.Logs); err != nil {
			return err
		}

		wt.DocStatus = models.DocStatusSubmitted
		err := tx.Model(&model.WorkingTime{}).
			Where("id = ?", wt.ID).
			Updates(map[string]any{
				"break_time":   wt.BreakTime,
				"working_time": wt.WorkingTime,
				"docstatus":    wt.DocStatus,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update working time: %w", err)
		}

		if err := CreateAttendance(tx, wt); err != nil {
			return err
		}

		return createWorkingTimeTimesheets(tx, jira, wt)
	})
}

func createWorkingTimeTimesheets(tx *gorm.DB, jira IssueSummarizer, wt *model.WorkingTime) error {
	costingRate, err := core.GetCostingRate(tx, wt.EmployeeID)
	if err != nil {
		return err
	}

	for _, log := range wt.Logs {
		if log.Duration <= 0 || log.ProjectID == nil {
			continue
		}

		billing, err := core.GetProjectBilling(tx, *log.ProjectID)
		if err != nil {
			return err
		}

		billingHours, err := BillingHours(log.Duration, log.Billable)
		if err != nil {
			return err
		}

		description, err := GetDescription(jira, billing.JiraSite, log.IssueKey, log.Note)
		if err != nil {
			return err
		}

		timesheet := BuildTimesheet(TimesheetSource{
			Log:          log,
			FromTime:     wt.Date, // the parent day's date, not the punch time
			Hours:        Hours(log.Duration),
			BillingHours: billingHours,
			CostingRate:  costingRate,
			Billing:      billing,
			Description:  description,
			IssueURL:     GetJiraIssueURL(billing.JiraSite, log.IssueKey),

			EmployeeID:      &wt.EmployeeID,
			WorkingTimeName: wt.Name,
		})

		if err := tx.Create(&timesheet).Error; err != nil {
			return fmt.Errorf("failed to create timesheet: %w", err)
		}
	}

	return nil
}
