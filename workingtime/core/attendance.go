package core

import (
	"fmt"

	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/workingtime/model"
	"gorm.io/gorm"
)

// AttendanceStatus derives the attendance status from the day's working
// seconds. Exactly MaxHalfDay is still a half day.
func AttendanceStatus(workingSeconds int64) string {
	if workingSeconds > MaxHalfDay {
		return models.AttendanceStatusPresent
	}
	return models.AttendanceStatusHalfDay
}

// CreateAttendance creates the day's attendance unless one already exists
// for the employee and date. The existence check keeps re-submissions from
// duplicating attendance; serializing concurrent submits is the enclosing
// transaction's job.
func CreateAttendance(db *gorm.DB, wt *model.WorkingTime) error {
	var count int64
	err := db.Model(&models.Attendance{}).
		Where("employee_id = ? AND attendance_date = ?", wt.EmployeeID, wt.Date).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check attendance: %w", err)
	}
	if count > 0 {
		return nil
	}

	attendance := models.Attendance{
		EmployeeID:      wt.EmployeeID,
		AttendanceDate:  wt.Date,
		Status:          AttendanceStatus(wt.WorkingTime),
		WorkingTimeName: wt.Name,
		DocStatus:       models.DocStatusSubmitted,
	}
	if err := db.Create(&attendance).Error; err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}
