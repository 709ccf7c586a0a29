package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/infrastructure/communication"
	"alyf.de/workingtime/infrastructure/filesystem"
	"alyf.de/workingtime/report"
	"alyf.de/workingtime/utils"
	"gorm.io/gorm"
)

// exporttimesheets renders one month of submitted timesheets into a
// workbook, written to a local file or uploaded to S3.
func main() {
	site := flag.String("site", "", "tenant host to export; empty exports every site")
	month := flag.String("month", "", "month to export, e.g. 2026-03; defaults to the current month")
	out := flag.String("out", "", "local output path, e.g. timesheets.xlsx (single site only)")
	bucket := flag.String("bucket", "", "S3 bucket to upload to instead of -out")
	flag.Parse()

	if *month == "" {
		*month = utils.BerlinNow().Format("2006-01")
	}
	if *out == "" && *bucket == "" {
		log.Fatal("one of -out or -bucket is required")
	}
	if *site == "" && *out != "" {
		log.Fatal("-out needs -site; exporting every site requires -bucket")
	}

	start, err := time.ParseInLocation("2006-01", *month, utils.BerlinTZ)
	if err != nil {
		log.Fatalf("invalid -month %q: %v", *month, err)
	}
	end := start.AddDate(0, 1, 0)

	dsn := os.Getenv("DSN")
	dm, err := core.New(dsn, 2)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	ctx := context.Background()
	slack := communication.ConnectSlack()

	sites := []string{*site}
	if *site == "" {
		sites, err = dm.GetAllSites(ctx)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, s := range sites {
		if err := export(ctx, dm, s, start, end, *out, *bucket); err != nil {
			if slackErr := slack.Error(fmt.Sprintf("timesheet export for %s %s failed: %v", s, *month, err)); slackErr != nil {
				log.Println(slackErr)
			}
			log.Fatal(err)
		}
	}

	if err := slack.Info(fmt.Sprintf("timesheet export for %s done", *month)); err != nil {
		log.Println(err)
	}
}

func export(ctx context.Context, dm *core.DatabaseManager, site string, start, end time.Time, out, bucket string) error {
	var timesheets []models.Timesheet

	err := dm.Exec(ctx, site, func(db *gorm.DB) error {
		return db.
			Preload("Project").
			Preload("Customer").
			Preload("Employee").
			Where("docstatus = ? AND from_time >= ? AND from_time < ?",
				models.DocStatusSubmitted, start, end).
			Order("from_time").
			Find(&timesheets).Error
	})
	if err != nil {
		return fmt.Errorf("load timesheets: %w", err)
	}

	rows := utils.Map(timesheets, func(ts models.Timesheet) report.Row {
		return report.RowFromTimesheet(&ts)
	})

	sheetName := start.Format("2006-01")

	if bucket != "" {
		var buf bytes.Buffer
		if err := report.WriteWorkbook(&buf, sheetName, rows); err != nil {
			return err
		}
		key := fmt.Sprintf("%s/timesheets-%s.xlsx", site, sheetName)
		return filesystem.WriteFile(bucket, key, ctx, &buf)
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	return report.WriteWorkbook(file, sheetName, rows)
}
