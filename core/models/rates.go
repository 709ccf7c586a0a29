package models

import "time"

// ActivityCost is the fixed per-employee cost rate for an activity type.
type ActivityCost struct {
	ID           int32   `gorm:"primaryKey;column:id"`
	ActivityType string  `gorm:"column:activity_type;uniqueIndex:idx_activity_employee"`
	EmployeeID   int32   `gorm:"column:employee_id;uniqueIndex:idx_activity_employee"`
	CostingRate  float64 `gorm:"column:costing_rate;type:decimal(13,4);default:0"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (ActivityCost) TableName() string {
	return "activity_costs"
}

// FreelancerRate is time-boxed: the applicable rate for a date is the latest
// row with from_date on or before that date.
type FreelancerRate struct {
	ID       int32     `gorm:"primaryKey;column:id"`
	User     string    `gorm:"column:user;index:idx_user_from_date"`
	FromDate time.Time `gorm:"column:from_date;type:date;index:idx_user_from_date"`
	Rate     float64   `gorm:"column:rate;type:decimal(13,4);default:0"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
}

func (FreelancerRate) TableName() string {
	return "freelancer_rates"
}
