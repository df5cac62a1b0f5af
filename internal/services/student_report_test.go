package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestBuildStudentWorkbook_Empty(t *testing.T) {
	data, err := BuildStudentWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildStudentWorkbook: %v", err)
	}

	f := openWorkbook(t, data)
	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != ReportSheetName {
		t.Fatalf("sheets: %v", sheets)
	}

	rows, err := f.GetRows(ReportSheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d want 1", len(rows))
	}
	if len(rows[0]) != len(ReportHeaders) {
		t.Fatalf("header cells: got %d", len(rows[0]))
	}
	for i, h := range ReportHeaders {
		if rows[0][i] != h {
			t.Errorf("header %d: got %q want %q", i, rows[0][i], h)
		}
	}
}

func TestBuildStudentWorkbook_Rows(t *testing.T) {
	reports := []*models.StudentReport{
		{
			Name:           "Alan",
			LastName:       "Turing",
			EmailAddress:   "alan@example.com",
			DocumentType:   "DNI",
			DocumentNumber: "1",
			BirthDate:      time.Date(1912, 6, 23, 0, 0, 0, 0, time.UTC),
			SexDescription: "Male",
			CreateDate:     time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC),
			Nationality:    strPtr("British"),
		},
		{
			Name:           "Ada",
			LastName:       "Lovelace",
			SexDescription: "Female",
			PhoneNumber:    strPtr("555"),
			Nationality:    strPtr("British"),
		},
	}

	data, err := BuildStudentWorkbook(reports)
	if err != nil {
		t.Fatalf("BuildStudentWorkbook: %v", err)
	}

	rows, err := openWorkbook(t, data).GetRows(ReportSheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d want 3", len(rows))
	}

	first := rows[1]
	if first[5] != "1912-06-23" || first[8] != "2024-01-15" {
		t.Errorf("dates: birth=%q create=%q", first[5], first[8])
	}
	if first[6] != "Male" || first[7] != "" || first[9] != "British" {
		t.Errorf("first row: %v", first)
	}
	if rows[2][0] != "Ada" || rows[2][7] != "555" {
		t.Errorf("second row: %v", rows[2])
	}
}
