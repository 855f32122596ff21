// Package report builds the denormalized enrollment report: one row per
// enrollment whose student and class references both resolve.
package report

import (
	"github.com/yigit/college/internal/app/models"
)

// Join combines enrollments with students and classes by identifier equality.
//
// An enrollment whose student or class identifier matches no record is dropped.
// When several records share an identifier the enrollment fans out to one row per
// (student, class) combination. Rows follow enrollment order, then student order,
// then class order. The result is never nil.
func Join(enrollments []models.Enrollment, students []models.Student, classes []models.Class) []models.EnrollmentReportRow {
	studentsByID := make(map[string][]int, len(students))
	for i, s := range students {
		studentsByID[s.StudentID] = append(studentsByID[s.StudentID], i)
	}

	classesByID := make(map[string][]int, len(classes))
	for i, c := range classes {
		classesByID[c.ClassID] = append(classesByID[c.ClassID], i)
	}

	rows := make([]models.EnrollmentReportRow, 0, len(enrollments))
	for _, e := range enrollments {
		studentIdx := studentsByID[e.StudentID]
		classIdx := classesByID[e.ClassID]
		if len(studentIdx) == 0 || len(classIdx) == 0 {
			continue
		}

		for _, si := range studentIdx {
			for _, ci := range classIdx {
				rows = append(rows, newRow(e, students[si], classes[ci]))
			}
		}
	}

	return rows
}

func newRow(e models.Enrollment, s models.Student, c models.Class) models.EnrollmentReportRow {
	return models.EnrollmentReportRow{
		EnrollmentID: e.EnrollmentID,
		StudentDetails: models.StudentDetails{
			FirstName: s.FirstName,
			LastName:  s.LastName,
		},
		ClassDetails: models.ClassDetails{
			CourseName: c.CourseName,
			DateTime:   c.DateTime,
			Location:   c.Location,
		},
	}
}
