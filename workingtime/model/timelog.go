package model

import "time"

// Parent document types for time logs.
const (
	ParentTypeWorkingTime    = "Working Time"
	ParentTypeFreelancerTime = "Freelancer Time"
)

// TimeLog is a child row of a WorkingTime or FreelancerTime document.
//
// WorkingTime logs carry from/to punches; Duration is derived during
// normalization. FreelancerTime logs carry an explicit Date and Duration and
// are never chained.
type TimeLog struct {
	ID         int32  `gorm:"primaryKey;column:id"`
	ParentName string `gorm:"column:parent_name;index:idx_parent"`
	ParentType string `gorm:"column:parent_type;type:varchar(30);index:idx_parent"`
	Idx        int32  `gorm:"column:idx"`

	FromTime *time.Time `gorm:"column:from_time;type:datetime"`
	ToTime   *time.Time `gorm:"column:to_time;type:datetime"`
	Date     *time.Time `gorm:"column:date;type:date"`

	// Duration in seconds. Once computed it must be non-negative; a negative
	// value means the punches are out of order.
	Duration int64 `gorm:"column:duration;default:0"`

	IsBreak   bool   `gorm:"column:is_break;not null;default:false"`
	ProjectID *int32 `gorm:"column:project_id"`
	// Billable is a percentage string, e.g. "100%".
	Billable string `gorm:"column:billable;type:varchar(10);default:100%"`
	Note     string `gorm:"column:note;type:text"`
	IssueKey string `gorm:"column:issue_key;type:varchar(50)"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}
