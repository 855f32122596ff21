// Package render serializes enrollment report rows.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/config"
)

// SheetName is the worksheet holding report rows in xlsx output
const SheetName = "Enrollments"

var sheetHeader = []interface{}{"Enrollment ID", "First Name", "Last Name", "Course", "Meeting Time", "Location"}

// ContentType returns the MIME type for a report format
func ContentType(format string) string {
	switch format {
	case config.FormatYAML:
		return "application/yaml"
	case config.FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Write renders rows in format to w. Output is assembled in memory first so a
// failing encoder never leaves partial output behind.
func Write(w io.Writer, format string, rows []models.EnrollmentReportRow) error {
	if rows == nil {
		rows = []models.EnrollmentReportRow{}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case config.FormatJSON:
		err = JSON(&buf, rows)
	case config.FormatYAML:
		err = YAML(&buf, rows)
	case config.FormatXLSX:
		err = XLSX(&buf, rows)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// JSON writes rows as a two-space indented array
func JSON(w io.Writer, rows []models.EnrollmentReportRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode report as json: %w", err)
	}
	return nil
}

// YAML writes rows as a YAML sequence
func YAML(w io.Writer, rows []models.EnrollmentReportRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode report as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml encoder: %w", err)
	}
	return nil
}

// XLSX writes rows as a single-sheet workbook with a header row
func XLSX(w io.Writer, rows []models.EnrollmentReportRow) error {
	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Workbook builds the xlsx workbook for rows. The caller closes it.
func Workbook(rows []models.EnrollmentReportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &sheetHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range rows {
		cell := "A" + strconv.Itoa(i+2)
		values := []interface{}{
			r.EnrollmentID,
			r.StudentDetails.FirstName,
			r.StudentDetails.LastName,
			r.ClassDetails.CourseName,
			r.ClassDetails.DateTime,
			r.ClassDetails.Location,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f, nil
}
