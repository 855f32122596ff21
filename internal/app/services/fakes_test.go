package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/repositories"
	"github.com/yigit/college/internal/pkg/apperrors"
)

// memTable mimics an ordered insert into a collection with a unique identifier index
type memTable[T any] struct {
	name    string
	key     func(T) string
	records []T
	findErr error
}

func (m *memTable[T]) InsertMany(_ context.Context, records []T) (int, error) {
	seen := make(map[string]bool, len(m.records))
	for _, r := range m.records {
		seen[m.key(r)] = true
	}
	for i, r := range records {
		if seen[m.key(r)] {
			err := fmt.Errorf("%w: %s", apperrors.ErrDuplicateIdentifier, m.key(r))
			return i, apperrors.NewBatchError(m.name, i, len(records), err)
		}
		seen[m.key(r)] = true
		m.records = append(m.records, r)
	}
	return len(records), nil
}

func (m *memTable[T]) FindAll(context.Context) ([]T, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return append([]T{}, m.records...), nil
}

type stubReports struct {
	rows  []models.EnrollmentReportRow
	err   error
	calls int
}

func (s *stubReports) EnrollmentReport(context.Context) ([]models.EnrollmentReportRow, error) {
	s.calls++
	return s.rows, s.err
}

type memStore struct {
	students    *memTable[models.Student]
	classes     *memTable[models.Class]
	enrollments *memTable[models.Enrollment]
	reports     *stubReports
}

func newMemStore() *memStore {
	return &memStore{
		students:    &memTable[models.Student]{name: models.StudentsCollection, key: func(s models.Student) string { return s.StudentID }},
		classes:     &memTable[models.Class]{name: models.ClassesCollection, key: func(c models.Class) string { return c.ClassID }},
		enrollments: &memTable[models.Enrollment]{name: models.EnrollmentsCollection, key: func(e models.Enrollment) string { return e.EnrollmentID }},
		reports:     &stubReports{},
	}
}

func (s *memStore) repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Students:    s.students,
		Classes:     s.classes,
		Enrollments: s.enrollments,
		Reports:     s.reports,
	}
}

var errReadFailed = errors.New("read failed")
