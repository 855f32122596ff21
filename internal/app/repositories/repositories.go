package repositories

import (
	"context"

	"github.com/yigit/college/internal/app/models"
)

// StudentRepository persists and reads student records
type StudentRepository interface {
	// InsertMany writes records in order and returns how many were written.
	// A failure stops the batch; earlier records stay written.
	InsertMany(ctx context.Context, records []models.Student) (int, error)
	FindAll(ctx context.Context) ([]models.Student, error)
}

// ClassRepository persists and reads class records
type ClassRepository interface {
	InsertMany(ctx context.Context, records []models.Class) (int, error)
	FindAll(ctx context.Context) ([]models.Class, error)
}

// EnrollmentRepository persists and reads enrollment records
type EnrollmentRepository interface {
	InsertMany(ctx context.Context, records []models.Enrollment) (int, error)
	FindAll(ctx context.Context) ([]models.Enrollment, error)
}

// ReportRepository runs the enrollment join inside the database
type ReportRepository interface {
	EnrollmentReport(ctx context.Context) ([]models.EnrollmentReportRow, error)
}

// Repositories holds all the repository instances of one storage backend
type Repositories struct {
	Students    StudentRepository
	Classes     ClassRepository
	Enrollments EnrollmentRepository
	Reports     ReportRepository
}
