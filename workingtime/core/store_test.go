package core

import (
	"fmt"
	"testing"

	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/utils"
	"alyf.de/workingtime/workingtime/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an in-memory database with the tables the document
// lifecycle touches. The schema mirrors the model tags; defaults cover the
// columns gorm omits for zero values.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	ddl := []string{
		`CREATE TABLE attendances (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER,
			attendance_date DATETIME,
			status TEXT,
			docstatus INTEGER DEFAULT 0,
			working_time TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE freelancer_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			user TEXT,
			docstatus INTEGER DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE time_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_name TEXT,
			parent_type TEXT,
			idx INTEGER,
			from_time DATETIME,
			to_time DATETIME,
			date DATETIME,
			duration INTEGER DEFAULT 0,
			is_break INTEGER DEFAULT 0,
			project_id INTEGER,
			billable TEXT DEFAULT '100%',
			note TEXT,
			issue_key TEXT
		)`,
		`CREATE TABLE timesheets (
			timesheet_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			is_billable INTEGER DEFAULT 0,
			activity_type TEXT,
			base_billing_rate REAL DEFAULT 0,
			base_costing_rate REAL DEFAULT 0,
			billing_rate REAL DEFAULT 0,
			costing_rate REAL DEFAULT 0,
			hours REAL DEFAULT 0,
			billing_hours REAL DEFAULT 0,
			from_time DATETIME,
			description TEXT,
			jira_issue_url TEXT,
			docstatus INTEGER DEFAULT 0,
			project_id INTEGER,
			parent_project_id INTEGER,
			customer_id INTEGER,
			employee_id INTEGER,
			working_time TEXT,
			freelancer_time TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func TestCreateAttendanceIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	wt := &model.WorkingTime{
		Name:        "WT-11112222",
		EmployeeID:  7,
		Date:        utils.MustParseDate("2026-03-02"),
		WorkingTime: 14000,
	}

	assert.NoError(t, CreateAttendance(db, wt))
	assert.NoError(t, CreateAttendance(db, wt))

	var count int64
	assert.NoError(t, db.Model(&models.Attendance{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var att models.Attendance
	assert.NoError(t, db.First(&att).Error)
	assert.Equal(t, models.AttendanceStatusPresent, att.Status)
	assert.Equal(t, models.DocStatusSubmitted, att.DocStatus)
	assert.Equal(t, "WT-11112222", att.WorkingTimeName)
}

func TestCancelFreelancerTimeDeletesOnlyDrafts(t *testing.T) {
	db := openTestDB(t)

	ft := &model.FreelancerTime{
		Name:      "FT-11112222",
		User:      "jane@example.com",
		DocStatus: models.DocStatusSubmitted,
	}
	assert.NoError(t, db.Create(ft).Error)

	draft := models.Timesheet{
		Name:               "TS-aaaa0001",
		FreelancerTimeName: ft.Name,
		DocStatus:          models.DocStatusDraft,
	}
	submitted := models.Timesheet{
		Name:               "TS-aaaa0002",
		FreelancerTimeName: ft.Name,
		DocStatus:          models.DocStatusSubmitted,
	}
	assert.NoError(t, db.Create(&draft).Error)
	assert.NoError(t, db.Create(&submitted).Error)

	assert.NoError(t, CancelFreelancerTime(db, ft))
	assert.Equal(t, models.DocStatusCancelled, ft.DocStatus)

	var names []string
	assert.NoError(t, db.Model(&models.Timesheet{}).Order("name").Pluck("name", &names).Error)
	assert.Equal(t, []string{"TS-aaaa0002"}, names)

	var stored model.FreelancerTime
	assert.NoError(t, db.First(&stored, ft.ID).Error)
	assert.Equal(t, models.DocStatusCancelled, stored.DocStatus)
}

func TestCancelFreelancerTimeRequiresSubmitted(t *testing.T) {
	db := openTestDB(t)

	ft := &model.FreelancerTime{Name: "FT-33334444", DocStatus: models.DocStatusDraft}
	assert.NoError(t, db.Create(ft).Error)

	err := CancelFreelancerTime(db, ft)
	assert.ErrorIs(t, err, ErrNotSubmitted)
	assert.Equal(t, models.DocStatusDraft, ft.DocStatus)
}

func TestSaveFreelancerTimeUpdatesUser(t *testing.T) {
	db := openTestDB(t)

	date := utils.MustParseDate("2026-03-02")
	ft := &model.FreelancerTime{
		User: "old@example.com",
		Logs: []model.TimeLog{{Date: &date, Duration: 3600}},
	}
	assert.NoError(t, SaveFreelancerTime(db, ft))
	assert.NotZero(t, ft.ID)

	ft.User = "new@example.com"
	ft.Logs = append(ft.Logs, model.TimeLog{Date: &date, Duration: 1800})
	assert.NoError(t, SaveFreelancerTime(db, ft))

	stored, err := LoadFreelancerTime(db, ft.ID)
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", stored.User)
	assert.Len(t, stored.Logs, 2)
}
