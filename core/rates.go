package core

import (
	"errors"
	"fmt"
	"time"

	"alyf.de/workingtime/core/models"
	"gorm.io/gorm"
)

// DefaultActivityType is the activity all generated timesheets carry.
const DefaultActivityType = "Default"

// GetCostingRate returns the fixed activity cost rate for an employee.
// A missing rate resolves to zero; the timesheet is still created and the
// gap surfaces downstream as a data-quality issue.
func GetCostingRate(db *gorm.DB, employeeID int32) (float64, error) {
	var ac models.ActivityCost
	err := db.
		Where(&models.ActivityCost{ActivityType: DefaultActivityType, EmployeeID: employeeID}).
		First(&ac).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch activity cost: %w", err)
	}
	return ac.CostingRate, nil
}

// GetFreelancerRate returns the rate effective for a user at a date: the
// latest freelancer rate whose from_date is on or before the date. Missing
// rates resolve to zero, same as GetCostingRate.
func GetFreelancerRate(db *gorm.DB, user string, date time.Time) (float64, error) {
	var fr models.FreelancerRate
	err := db.
		Where("user = ? AND from_date <= ?", user, date.Format("2006-01-02")).
		Order("from_date DESC").
		First(&fr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch freelancer rate: %w", err)
	}
	return fr.Rate, nil
}
