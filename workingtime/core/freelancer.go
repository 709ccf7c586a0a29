package core

import (
	"errors"
	"fmt"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/workingtime/model"
	"gorm.io/gorm"
)

// ErrMissingLogDate rejects freelancer logs without a date; the time-boxed
// rate lookup needs one.
var ErrMissingLogDate = errors.New("freelancer time logs require a date")

// ErrNotSubmitted rejects cancelling documents that were never submitted.
var ErrNotSubmitted = errors.New("only submitted documents can be cancelled")

// SubmitFreelancerTime creates one draft timesheet per qualifying log.
// Freelancer logs carry explicit durations, are fully billable and use the
// time-boxed rate effective at each log's date.
func SubmitFreelancerTime(db *gorm.DB, jira IssueSummarizer, ft *model.FreelancerTime) error {
	if ft.DocStatus != models.DocStatusDraft {
		return ErrNotDraft
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, log := range ft.Logs {
			if log.Duration <= 0 || log.ProjectID == nil {
				continue
			}
			if log.Date == nil {
				return ErrMissingLogDate
			}

			costingRate, err := core.GetFreelancerRate(tx, ft.User, *log.Date)
			if err != nil {
				return err
			}

			billing, err := core.GetProjectBilling(tx, *log.ProjectID)
			if err != nil {
				return err
			}

			description, err := GetDescription(jira, billing.JiraSite, log.IssueKey, log.Note)
			if err != nil {
				return err
			}

			hours := Hours(log.Duration)
			timesheet := BuildTimesheet(TimesheetSource{
				Log:          log,
				FromTime:     *log.Date, // the log's own date, unlike WorkingTime
				Hours:        hours,
				BillingHours: hours,
				CostingRate:  costingRate,
				Billing:      billing,
				Description:  description,
				IssueURL:     GetJiraIssueURL(billing.JiraSite, log.IssueKey),

				FreelancerTimeName: ft.Name,
			})

			if err := tx.Create(&timesheet).Error; err != nil {
				return fmt.Errorf("failed to create timesheet: %w", err)
			}
		}

		ft.DocStatus = models.DocStatusSubmitted
		err := tx.Model(&model.FreelancerTime{}).
			Where("id = ?", ft.ID).
			Update("docstatus", ft.DocStatus).Error
		if err != nil {
			return fmt.Errorf("failed to update freelancer time: %w", err)
		}
		return nil
	})
}

// CancelFreelancerTime deletes the draft timesheets this document created.
// Submitted timesheets are never touched; deleting zero rows is a no-op.
func CancelFreelancerTime(db *gorm.DB, ft *model.FreelancerTime) error {
	if ft.DocStatus != models.DocStatusSubmitted {
		return ErrNotSubmitted
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("freelancer_time = ? AND docstatus = ?", ft.Name, models.DocStatusDraft).
			Delete(&models.Timesheet{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete draft timesheets: %w", err)
		}

		ft.DocStatus = models.DocStatusCancelled
		err = tx.Model(&model.FreelancerTime{}).
			Where("id = ?", ft.ID).
			Update("docstatus", ft.DocStatus).Error
		if err != nil {
			return fmt.Errorf("failed to update freelancer time: %w", err)
		}
		return nil
	})
}
