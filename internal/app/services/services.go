package services

import (
	"github.com/yigit/college/internal/app/repositories"
	"github.com/yigit/college/internal/config"
)

// Services holds all the service instances
type Services struct {
	Seed       SeedService
	Enrollment EnrollmentService
	Report     ReportService
}

// NewServices initializes all services over one set of repositories
func NewServices(repos *repositories.Repositories, cfg *config.Config) *Services {
	return &Services{
		Seed:       NewSeedService(repos.Students, repos.Classes),
		Enrollment: NewEnrollmentService(repos.Enrollments),
		Report:     NewReportService(repos, cfg.Report.Strategy),
	}
}
