package services

import (
	"context"
	"fmt"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/repositories"
)

// SeedResult counts the records a seeding run wrote
type SeedResult struct {
	Students int
	Classes  int
}

// SeedService writes the student and class catalog
type SeedService interface {
	SeedCatalog(ctx context.Context, students []models.Student, classes []models.Class) (SeedResult, error)
}

type seedServiceImpl struct {
	studentRepo repositories.StudentRepository
	classRepo   repositories.ClassRepository
}

// NewSeedService creates a new seed service instance
func NewSeedService(studentRepo repositories.StudentRepository, classRepo repositories.ClassRepository) SeedService {
	return &seedServiceImpl{
		studentRepo: studentRepo,
		classRepo:   classRepo,
	}
}

// SeedCatalog writes students and then classes. The class batch is not attempted
// when the student batch fails; nothing already written is undone.
func (s *seedServiceImpl) SeedCatalog(ctx context.Context, students []models.Student, classes []models.Class) (SeedResult, error) {
	var result SeedResult

	n, err := s.studentRepo.InsertMany(ctx, students)
	result.Students = n
	if err != nil {
		return result, fmt.Errorf("error inserting students: %w", err)
	}

	n, err = s.classRepo.InsertMany(ctx, classes)
	result.Classes = n
	if err != nil {
		return result, fmt.Errorf("error inserting classes: %w", err)
	}

	return result, nil
}
