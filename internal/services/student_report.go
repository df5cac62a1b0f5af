package services

import (
	"fmt"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	ReportSheetName  = "Students"
	ReportFileName   = "students.xlsx"
	ReportMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	reportDateLayout = "2006-01-02"
)

var ReportHeaders = []string{
	"Name",
	"Last Name",
	"Email Address",
	"Document Type",
	"Document Number",
	"Birth Date",
	"Sex Description",
	"Phone Number",
	"Create Date",
	"Nationality",
}

// BuildStudentWorkbook renders the rows into a single-sheet xlsx workbook:
// one header row followed by one row per student.
func BuildStudentWorkbook(rows []*models.StudentReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(ReportHeaders))
	for i, h := range ReportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(ReportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		values := reportRowValues(r)
		if err := f.SetSheetRow(ReportSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func reportRowValues(r *models.StudentReport) []interface{} {
	return []interface{}{
		r.Name,
		r.LastName,
		r.EmailAddress,
		r.DocumentType,
		r.DocumentNumber,
		r.BirthDate.Format(reportDateLayout),
		r.SexDescription,
		stringOrEmpty(r.PhoneNumber),
		r.CreateDate.UTC().Format(reportDateLayout),
		stringOrEmpty(r.Nationality),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
