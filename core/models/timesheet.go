package models

import "time"

// Timesheet is a single-line billing record. Submits fan out one Timesheet
// per qualifying time log instead of batching a multi-line document.
type Timesheet struct {
	TimesheetID int32  `gorm:"primaryKey;column:timesheet_id"`
	Name        string `gorm:"column:name;uniqueIndex"`

	IsBillable   bool   `gorm:"column:is_billable;not null;default:false"`
	ActivityType string `gorm:"column:activity_type;type:varchar(50)"`

	BaseBillingRate float64 `gorm:"column:base_billing_rate;type:decimal(13,4);default:0"`
	BaseCostingRate float64 `gorm:"column:base_costing_rate;type:decimal(13,4);default:0"`
	BillingRate     float64 `gorm:"column:billing_rate;type:decimal(13,4);default:0"`
	CostingRate     float64 `gorm:"column:costing_rate;type:decimal(13,4);default:0"`

	Hours        float64 `gorm:"column:hours;type:decimal(10,4);default:0"`
	BillingHours float64 `gorm:"column:billing_hours;type:decimal(10,4);default:0"`

	FromTime     time.Time `gorm:"column:from_time;type:datetime"`
	Description  string    `gorm:"column:description;type:text"`
	JiraIssueURL string    `gorm:"column:jira_issue_url"`

	DocStatus DocStatus `gorm:"column:docstatus;not null;default:0"`

	ProjectID       *int32 `gorm:"column:project_id"`
	ParentProjectID *int32 `gorm:"column:parent_project_id"`
	CustomerID      *int32 `gorm:"column:customer_id"`

	// Origin tags: either Employee+WorkingTimeName or FreelancerTimeName.
	EmployeeID         *int32 `gorm:"column:employee_id"`
	WorkingTimeName    string `gorm:"column:working_time;index"`
	FreelancerTimeName string `gorm:"column:freelancer_time;index"`

	Project  Project  `gorm:"foreignKey:ProjectID;references:ProjectID"`
	Customer Customer `gorm:"foreignKey:CustomerID;references:CustomerID"`
	Employee Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}
