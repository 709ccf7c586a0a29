package models

import "time"

type Customer struct {
	CustomerID int32  `gorm:"primaryKey;column:customer_id"`
	Name       string `gorm:"column:name"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Customer) TableName() string {
	return "customers"
}

type Project struct {
	ProjectID   int32   `gorm:"primaryKey;column:project_id"`
	Name        string  `gorm:"column:name;uniqueIndex"`
	BillingRate float64 `gorm:"column:billing_rate;type:decimal(13,4);default:0"`
	// JiraSite is the tracker host for this project, e.g. "example.atlassian.net".
	JiraSite string `gorm:"column:jira_site"`
	Status   string `gorm:"column:status;type:varchar(20);default:Open"`

	CustomerID *int32   `gorm:"column:customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:CustomerID"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Project) TableName() string {
	return "projects"
}
