package core

import (
	"fmt"

	"alyf.de/workingtime/core/models"
	"gorm.io/gorm"
)

// ProjectBilling is the slice of project data timesheet creation needs.
type ProjectBilling struct {
	ProjectID   int32
	CustomerID  *int32
	BillingRate float64
	JiraSite    string
}

// GetProjectBilling resolves customer, billing rate and jira site for a
// project. A missing project is a hard failure and aborts the submit.
func GetProjectBilling(db *gorm.DB, projectID int32) (*ProjectBilling, error) {
	var pb ProjectBilling

	err := db.Model(&models.Project{}).
		Select(`projects.project_id,
				projects.customer_id,
				projects.billing_rate,
				projects.jira_site`).
		Where("projects.project_id = ?", projectID).
		Take(&pb).Error

	if err != nil {
		return nil, fmt.Errorf("project %d not found: %w", projectID, err)
	}

	return &pb, nil
}
