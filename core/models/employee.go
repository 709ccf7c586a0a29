package models

import (
	"time"

	"gorm.io/datatypes"
)

type Employee struct {
	EmployeeID int32  `gorm:"primaryKey;column:employee_id"`
	Code       string `gorm:"column:code;uniqueIndex"`
	FirstName  string `gorm:"column:first_name"`
	Surname    string `gorm:"column:surname"`
	Email      string `gorm:"column:email;index"`
	// User is the platform login the employee acts as; freelancer rates are
	// keyed by this value.
	User       string         `gorm:"column:user;index"`
	Status     string         `gorm:"column:status;type:varchar(20);default:Active"`
	StartDate  *time.Time     `gorm:"column:start_date;type:date"`
	EndDate    *time.Time     `gorm:"column:end_date;type:date"`
	Freelancer bool           `gorm:"column:freelancer;not null;default:false"`
	Attributes datatypes.JSON `gorm:"column:attributes"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Employee) TableName() string {
	return "employees"
}
