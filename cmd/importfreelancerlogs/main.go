package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/utils"
	wt "alyf.de/workingtime/workingtime/core"
	"alyf.de/workingtime/workingtime/model"
	"gorm.io/gorm"
)

// importfreelancerlogs turns a CSV of freelancer work logs into one draft
// FreelancerTime document. Expected columns:
//
//	date,duration,project,issue_key,note
//
// Durations are in seconds, dates are YYYY-MM-DD, project is the project
// name. The document stays a draft; submitting it is a separate step.
func main() {
	site := flag.String("site", "", "tenant host to import into")
	user := flag.String("user", "", "freelancer login the logs belong to")
	path := flag.String("file", "", "CSV file to import")
	flag.Parse()

	if *site == "" || *user == "" || *path == "" {
		log.Fatal("-site, -user and -file are required")
	}

	file, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	records, err := utils.ParseCSV(file)
	if err != nil {
		log.Fatal(err)
	}
	if len(records) < 2 {
		log.Fatalf("%s has no data rows", *path)
	}

	dsn := os.Getenv("DSN")
	dm, err := core.New(dsn, 2)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	ctx := context.Background()

	rows := utils.Filter(records[1:], func(row []string) bool {
		return len(row) > 0 && row[0] != ""
	})
	if len(rows) == 0 {
		log.Fatalf("%s has no usable rows", *path)
	}

	err = dm.Exec(ctx, *site, func(db *gorm.DB) error {
		logs, err := toLogs(db, rows)
		if err != nil {
			return err
		}

		ft := &model.FreelancerTime{
			User: *user,
			Logs: logs,
		}
		if err := wt.SaveFreelancerTime(db, ft); err != nil {
			return err
		}

		fmt.Printf("created %s with %d logs\n", ft.Name, len(ft.Logs))
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

func toLogs(db *gorm.DB, rows [][]string) ([]model.TimeLog, error) {
	var logs []model.TimeLog

	var projects []models.Project
	if err := db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("row %d: expected 5 columns, got %d", i+2, len(row))
		}

		date, err := time.ParseInLocation("2006-01-02", row[0], utils.BerlinTZ)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid date %q: %w", i+2, row[0], err)
		}

		duration, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("row %d: invalid duration %q", i+2, row[1])
		}

		name := row[2]
		project := utils.Find(projects, func(p models.Project) bool { return p.Name == name })
		if project == nil {
			return nil, fmt.Errorf("row %d: unknown project %q", i+2, name)
		}

		logs = append(logs, model.TimeLog{
			Date:      &date,
			Duration:  duration,
			ProjectID: &project.ProjectID,
			IssueKey:  row[3],
			Note:      row[4],
		})
	}

	return logs, nil
}
