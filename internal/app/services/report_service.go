package services

import (
	"context"
	"fmt"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/report"
	"github.com/yigit/college/internal/app/repositories"
	"github.com/yigit/college/internal/config"
)

// ReportService produces the denormalized enrollment report
type ReportService interface {
	BuildEnrollmentReport(ctx context.Context) ([]models.EnrollmentReportRow, error)
	Strategy() string
}

type reportServiceImpl struct {
	repos    *repositories.Repositories
	strategy string
}

// NewReportService creates a report service running strategy. Unknown strategies
// fall back to the in-database pipeline.
func NewReportService(repos *repositories.Repositories, strategy string) ReportService {
	if config.ValidateStrategy(strategy) != nil {
		strategy = config.StrategyPipeline
	}
	return &reportServiceImpl{repos: repos, strategy: strategy}
}

// Strategy returns the join strategy in use
func (s *reportServiceImpl) Strategy() string {
	return s.strategy
}

// BuildEnrollmentReport returns every resolvable (enrollment, student, class)
// row. Any failed read fails the whole report.
func (s *reportServiceImpl) BuildEnrollmentReport(ctx context.Context) ([]models.EnrollmentReportRow, error) {
	if s.strategy == config.StrategyMemory {
		return s.joinInMemory(ctx)
	}

	rows, err := s.repos.Reports.EnrollmentReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("error aggregating enrollments: %w", err)
	}
	return rows, nil
}

func (s *reportServiceImpl) joinInMemory(ctx context.Context) ([]models.EnrollmentReportRow, error) {
	enrollments, err := s.repos.Enrollments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading enrollments: %w", err)
	}

	students, err := s.repos.Students.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading students: %w", err)
	}

	classes, err := s.repos.Classes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading classes: %w", err)
	}

	return report.Join(enrollments, students, classes), nil
}
