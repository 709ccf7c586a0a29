package model

import (
	"time"

	"alyf.de/workingtime/core/models"
)

// FreelancerTime is the per-freelancer period document. Its logs carry
// explicit durations; there is no punch chaining.
type FreelancerTime struct {
	ID   int32  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;uniqueIndex"`

	// User is the freelancer's platform login; freelancer rates are keyed
	// by it.
	User string `gorm:"column:user;index"`

	DocStatus models.DocStatus `gorm:"column:docstatus;not null;default:0"`

	Logs []TimeLog `gorm:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (FreelancerTime) TableName() string {
	return "freelancer_times"
}
