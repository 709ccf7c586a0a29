package core

import (
	"fmt"

	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/workingtime/model"
	"gorm.io/gorm"
)

// LoadWorkingTime fetches a WorkingTime document with its logs in order.
func LoadWorkingTime(db *gorm.DB, id int32) (*model.WorkingTime, error) {
	var wt model.WorkingTime
	if err := db.First(&wt, id).Error; err != nil {
		return nil, fmt.Errorf("working time %d not found: %w", id, err)
	}

	logs, err := loadLogs(db, model.ParentTypeWorkingTime, wt.Name)
	if err != nil {
		return nil, err
	}
	wt.Logs = logs
	return &wt, nil
}

// LoadFreelancerTime fetches a FreelancerTime document with its logs in order.
func LoadFreelancerTime(db *gorm.DB, id int32) (*model.FreelancerTime, error) {
	var ft model.FreelancerTime
	if err := db.First(&ft, id).Error; err != nil {
		return nil, fmt.Errorf("freelancer time %d not found: %w", id, err)
	}

	logs, err := loadLogs(db, model.ParentTypeFreelancerTime, ft.Name)
	if err != nil {
		return nil, err
	}
	ft.Logs = logs
	return &ft, nil
}

func loadLogs(db *gorm.DB, parentType, parentName string) ([]model.TimeLog, error) {
	var logs []model.TimeLog
	err := db.
		Where("parent_type = ? AND parent_name = ?", parentType, parentName).
		Order("idx").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load time logs: %w", err)
	}
	return logs, nil
}

// ReplaceLogs swaps the stored child rows for the given set, renumbering idx.
func ReplaceLogs(db *gorm.DB, parentType, parentName string, logs []model.TimeLog) error {
	err := db.
		Where("parent_type = ? AND parent_name = ?", parentType, parentName).
		Delete(&model.TimeLog{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear time logs: %w", err)
	}

	for i := range logs {
		logs[i].ID = 0
		logs[i].ParentType = parentType
		logs[i].ParentName = parentName
		logs[i].Idx = int32(i)
	}

	if len(logs) == 0 {
		return nil
	}
	if err := db.Create(&logs).Error; err != nil {
		return fmt.Errorf("failed to save time logs: %w", err)
	}
	return nil
}

// SaveWorkingTime persists a draft document and its logs. Every save runs
// the normalization pass first, so stored durations and totals are always
// consistent with the punches.
func SaveWorkingTime(db *gorm.DB, wt *model.WorkingTime) error {
	Normalize(wt)
	if err := Validate(wt.Logs); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if wt.ID == 0 {
			if wt.Name == "" {
				wt.Name = models.NewDocName("WT")
			}
			if err := tx.Create(wt).Error; err != nil {
				return fmt.Errorf("failed to create working time: %w", err)
			}
		} else {
			err := tx.Model(&model.WorkingTime{}).
				Where("id = ? AND docstatus = ?", wt.ID, models.DocStatusDraft).
				Updates(map[string]any{
					"date":         wt.Date,
					"break_time":   wt.BreakTime,
					"working_time": wt.WorkingTime,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update working time: %w", err)
			}
		}
		return ReplaceLogs(tx, model.ParentTypeWorkingTime, wt.Name, wt.Logs)
	})
}

// SaveFreelancerTime persists a draft document and its logs.
func SaveFreelancerTime(db *gorm.DB, ft *model.FreelancerTime) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if ft.ID == 0 {
			if ft.Name == "" {
				ft.Name = models.NewDocName("FT")
			}
			if err := tx.Create(ft).Error; err != nil {
				return fmt.Errorf("failed to create freelancer time: %w", err)
			}
		} else {
			err := tx.Model(&model.FreelancerTime{}).
				Where("id = ? AND docstatus = ?", ft.ID, models.DocStatusDraft).
				Update("user", ft.User).Error
			if err != nil {
				return fmt.Errorf("failed to update freelancer time: %w", err)
			}
		}
		return ReplaceLogs(tx, model.ParentTypeFreelancerTime, ft.Name, ft.Logs)
	})
}
