package services

import (
	"context"
	"fmt"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/repositories"
)

// EnrollmentService links students to classes
type EnrollmentService interface {
	Enroll(ctx context.Context, enrollments []models.Enrollment) (int, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository) EnrollmentService {
	return &enrollmentServiceImpl{enrollmentRepo: enrollmentRepo}
}

// Enroll writes the enrollment batch. References are stored as given; no check is
// made that the student or class exists.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, enrollments []models.Enrollment) (int, error) {
	n, err := s.enrollmentRepo.InsertMany(ctx, enrollments)
	if err != nil {
		return n, fmt.Errorf("error enrolling students: %w", err)
	}
	return n, nil
}
