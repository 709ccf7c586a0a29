package model

import (
	"time"

	"alyf.de/workingtime/core/models"
)

// WorkingTime is the per-employee per-day punch document.
type WorkingTime struct {
	ID   int32  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;uniqueIndex"`

	EmployeeID int32     `gorm:"column:employee_id;index:idx_employee_date"`
	Date       time.Time `gorm:"column:date;type:date;index:idx_employee_date"`

	// Derived sums in seconds, recomputed from the logs on every
	// normalization pass.
	BreakTime   int64 `gorm:"column:break_time;default:0"`
	WorkingTime int64 `gorm:"column:working_time;default:0"`

	DocStatus models.DocStatus `gorm:"column:docstatus;not null;default:0"`

	Employee models.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`

	// Logs are loaded and persisted explicitly, ordered by Idx.
	Logs []TimeLog `gorm:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (WorkingTime) TableName() string {
	return "working_times"
}
