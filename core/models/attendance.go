package models

import "time"

const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusHalfDay = "Half Day"
)

// Attendance holds at most one row per (employee, date); the unique index
// backs the existence check that keeps re-submissions from duplicating it.
type Attendance struct {
	ID             int32     `gorm:"primaryKey;column:id"`
	EmployeeID     int32     `gorm:"column:employee_id;uniqueIndex:idx_employee_date"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;uniqueIndex:idx_employee_date"`
	Status         string    `gorm:"column:status;type:varchar(20)"`
	DocStatus      DocStatus `gorm:"column:docstatus;not null;default:0"`

	// WorkingTimeName is the document the attendance was derived from.
	WorkingTimeName string `gorm:"column:working_time"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Attendance) TableName() string {
	return "attendances"
}
