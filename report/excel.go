package report

import (
	"fmt"
	"io"
	"sort"

	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/utils"
	"github.com/xuri/excelize/v2"
)

// Row is one exported timesheet line with the joined display fields
// already resolved.
type Row struct {
	Date         string
	Employee     string
	Project      string
	Customer     string
	Activity     string
	Description  string
	Hours        float64
	BillingHours float64
	BillingRate  float64
	Billable     bool
}

var headers = []string{
	"Date", "Employee", "Project", "Customer", "Activity",
	"Description", "Hours", "Billing Hours", "Billing Rate", "Billable",
}

// RowFromTimesheet flattens a timesheet and its preloaded associations.
func RowFromTimesheet(ts *models.Timesheet) Row {
	employee := ""
	if ts.EmployeeID != nil {
		employee = ts.Employee.FirstName + " " + ts.Employee.Surname
	}

	return Row{
		Date:         ts.FromTime.Format("2006-01-02"),
		Employee:     employee,
		Project:      ts.Project.Name,
		Customer:     ts.Customer.Name,
		Activity:     ts.ActivityType,
		Description:  ts.Description,
		Hours:        ts.Hours,
		BillingHours: ts.BillingHours,
		BillingRate:  ts.BillingRate,
		Billable:     ts.IsBillable,
	}
}

// BuildWorkbook renders the rows into a single-sheet workbook. The caller
// owns the file and must Close it.
func BuildWorkbook(sheetName string, rows []Row) (*excelize.File, error) {
	file := excelize.NewFile()

	sheet := file.GetSheetName(0)
	if sheetName != "" {
		if err := file.SetSheetName(sheet, sheetName); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
		sheet = sheetName
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date,
			row.Employee,
			row.Project,
			row.Customer,
			row.Activity,
			row.Description,
			row.Hours,
			row.BillingHours,
			row.BillingRate,
			utils.FormatBoolean(row.Billable, "Yes", "No"),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	var totalHours, totalBilling float64
	for _, row := range rows {
		totalHours += row.Hours
		totalBilling += row.BillingHours
	}

	totalRow := len(rows) + 2
	totals := map[int]interface{}{
		1: "Total",
		7: totalHours,
		8: totalBilling,
	}
	for col, value := range totals {
		cell, _ := excelize.CoordinatesToCellName(col, totalRow)
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return nil, fmt.Errorf("set excel total %s: %w", cell, err)
		}
	}

	if err := addProjectSummary(file, rows); err != nil {
		return nil, err
	}

	return file, nil
}

// addProjectSummary appends a second sheet with hour totals per project.
func addProjectSummary(file *excelize.File, rows []Row) error {
	const sheet = "Projects"
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	for col, header := range []string{"Project", "Hours", "Billing Hours"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set summary header %s: %w", cell, err)
		}
	}

	grouped := utils.GroupBy(rows, func(r Row) string { return r.Project })

	projects := make([]string, 0, len(grouped))
	for project := range grouped {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	for i, project := range projects {
		var hours, billing float64
		for _, r := range grouped[project] {
			hours += r.Hours
			billing += r.BillingHours
		}

		values := []interface{}{project, hours, billing}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set summary value %s: %w", cell, err)
			}
		}
	}

	return nil
}

// WriteWorkbook streams the workbook, e.g. into an S3 upload body.
func WriteWorkbook(w io.Writer, sheetName string, rows []Row) error {
	file, err := BuildWorkbook(sheetName, rows)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
