package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/seed"
)

func TestSeedCatalog_WritesStudentsThenClasses(t *testing.T) {
	store := newMemStore()
	svc := NewSeedService(store.students, store.classes)

	result, err := svc.SeedCatalog(context.Background(), seed.Students(), seed.Classes())

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Students: 20, Classes: 6}, result)
	assert.Len(t, store.students.records, 20)
	assert.Len(t, store.classes.records, 6)
}

func TestSeedCatalog_RerunFailsWithoutOverwriting(t *testing.T) {
	store := newMemStore()
	svc := NewSeedService(store.students, store.classes)
	ctx := context.Background()

	_, err := svc.SeedCatalog(ctx, seed.Students(), seed.Classes())
	require.NoError(t, err)

	changed := seed.Students()
	changed[0].FirstName = "Overwritten"

	result, err := svc.SeedCatalog(ctx, changed, seed.Classes())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateIdentifier))
	assert.Equal(t, SeedResult{}, result)
	assert.Equal(t, "Joe", store.students.records[0].FirstName)
	assert.Len(t, store.students.records, 20)
	assert.Len(t, store.classes.records, 6)
}

func TestSeedCatalog_PartialBatchIsNotRolledBack(t *testing.T) {
	store := newMemStore()
	svc := NewSeedService(store.students, store.classes)
	ctx := context.Background()

	existing := seed.Students()[3]
	_, err := store.students.InsertMany(ctx, []models.Student{existing})
	require.NoError(t, err)

	result, err := svc.SeedCatalog(ctx, seed.Students(), seed.Classes())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateIdentifier))
	assert.Equal(t, 3, apperrors.InsertedBefore(err))
	assert.Equal(t, 3, result.Students)
	// The pre-existing record plus S001..S003 remain; classes were never attempted.
	assert.Len(t, store.students.records, 4)
	assert.Empty(t, store.classes.records)
}
