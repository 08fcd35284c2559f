package usecase

import (
	"bytes"
	"fmt"
	"time"

	"jobify-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

var jobExportColumns = []struct {
	header string
	width  float64
	value  func(domain.Job) string
}{
	{"COMPANY", 24, func(j domain.Job) string { return j.Company }},
	{"POSITION", 28, func(j domain.Job) string { return j.Position }},
	{"LOCATION", 22, func(j domain.Job) string { return j.Location }},
	{"JOB TYPE", 14, func(j domain.Job) string { return string(j.JobType) }},
	{"STATUS", 14, func(j domain.Job) string { return string(j.JobStatus) }},
	{"DATE APPLIED", 14, func(j domain.Job) string { return j.DateApplied }},
	{"INTERVIEW DATE", 16, func(j domain.Job) string { return j.InterviewDate }},
	{"SALARY", 22, func(j domain.Job) string { return j.Salary }},
	{"DESCRIPTION", 50, func(j domain.Job) string { return j.Description }},
}

// exportJobsExcel writes jobs to a single-sheet workbook, one row per job.
func exportJobsExcel(jobs []domain.Job, now time.Time) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Jobs"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range jobExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.header)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, col.width)
	}

	// Dark Blue background with White text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(jobExportColumns), 1)
		f.SetCellStyle(sheetName, "A1", endCell, headerStyle)
	}

	for rowIdx, job := range jobs {
		for colIdx, col := range jobExportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, col.value(job))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("jobs_%s.xlsx", now.Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
