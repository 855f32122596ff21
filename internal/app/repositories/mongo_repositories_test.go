package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/seed"
)

func TestMongoCollection_InsertMany(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("writes whole batch", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 20}))

		repo := NewMongoCollection[models.Student](mt.DB, models.StudentsCollection)
		n, err := repo.InsertMany(context.Background(), seed.Students())

		require.NoError(mt, err)
		assert.Equal(mt, 20, n)
	})

	mt.Run("duplicate identifier stops batch and keeps earlier writes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   3,
			Code:    11000,
			Message: "E11000 duplicate key error collection: college.classes index: classId_unique dup key: { classId: \"C004\" }",
		}))

		repo := NewMongoCollection[models.Class](mt.DB, models.ClassesCollection)
		n, err := repo.InsertMany(context.Background(), seed.Classes())

		require.Error(mt, err)
		assert.True(mt, errors.Is(err, apperrors.ErrDuplicateIdentifier))
		assert.Equal(mt, 3, n)

		var batchErr *apperrors.BatchError
		require.True(mt, errors.As(err, &batchErr))
		assert.Equal(mt, models.ClassesCollection, batchErr.Collection)
		assert.Equal(mt, 3, batchErr.Inserted)
		assert.Equal(mt, 6, batchErr.Total)
	})

	mt.Run("invalid record rejected before any write", func(mt *mtest.T) {
		repo := NewMongoCollection[models.Enrollment](mt.DB, models.EnrollmentsCollection)
		batch := seed.Enrollments()
		batch[4].ClassID = ""

		n, err := repo.InsertMany(context.Background(), batch)

		require.Error(mt, err)
		assert.True(mt, errors.Is(err, apperrors.ErrValidationFailed))
		assert.Zero(mt, n)
	})

	mt.Run("empty batch is a no-op", func(mt *mtest.T) {
		repo := NewMongoCollection[models.Enrollment](mt.DB, models.EnrollmentsCollection)
		n, err := repo.InsertMany(context.Background(), nil)
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})
}

func TestMongoCollection_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes documents", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + models.EnrollmentsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "enrollmentId", Value: "E001"}, {Key: "studentId", Value: "S001"}, {Key: "classId", Value: "C001"}},
			bson.D{{Key: "enrollmentId", Value: "E002"}, {Key: "studentId", Value: "S001"}, {Key: "classId", Value: "C002"}},
		))

		repo := NewMongoCollection[models.Enrollment](mt.DB, models.EnrollmentsCollection)
		got, err := repo.FindAll(context.Background())

		require.NoError(mt, err)
		assert.Equal(mt, []models.Enrollment{
			{EnrollmentID: "E001", StudentID: "S001", ClassID: "C001"},
			{EnrollmentID: "E002", StudentID: "S001", ClassID: "C002"},
		}, got)
	})

	mt.Run("query failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))

		repo := NewMongoCollection[models.Student](mt.DB, models.StudentsCollection)
		got, err := repo.FindAll(context.Background())

		require.Error(mt, err)
		assert.True(mt, errors.Is(err, apperrors.ErrQueryFailed))
		assert.Nil(mt, got)
	})
}

func TestMongoReportRepository_EnrollmentReport(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes projected rows", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + models.EnrollmentsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "enrollmentId", Value: "E001"},
				{Key: "studentDetails", Value: bson.D{{Key: "firstName", Value: "Joe"}, {Key: "lastName", Value: "Smith"}}},
				{Key: "classDetails", Value: bson.D{
					{Key: "courseName", Value: "Quantum Computing 101"},
					{Key: "dateTime", Value: "Mon 9AM"},
					{Key: "location", Value: "Room 101"},
				}},
			},
		))

		rows, err := NewMongoReportRepository(mt.DB).EnrollmentReport(context.Background())

		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, "E001", rows[0].EnrollmentID)
		assert.Equal(mt, models.StudentDetails{FirstName: "Joe", LastName: "Smith"}, rows[0].StudentDetails)
		assert.Equal(mt, "Quantum Computing 101", rows[0].ClassDetails.CourseName)
	})

	mt.Run("no rows", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + models.EnrollmentsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		rows, err := NewMongoReportRepository(mt.DB).EnrollmentReport(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, rows)
		assert.Empty(mt, rows)
	})

	mt.Run("aggregate failure emits nothing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 40324, Name: "Location40324", Message: "Unrecognized pipeline stage name",
		}))

		rows, err := NewMongoReportRepository(mt.DB).EnrollmentReport(context.Background())

		require.Error(mt, err)
		assert.True(mt, errors.Is(err, apperrors.ErrQueryFailed))
		assert.Nil(mt, rows)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates one unique index per collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)
		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))
	})

	mt.Run("reports failing collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code: 11000, Name: "DuplicateKey", Message: "E11000 duplicate key error",
			}),
		)
		err := EnsureIndexes(context.Background(), mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "classes.classId")
	})
}

func TestNewMongoRepositories(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wires every repository", func(mt *mtest.T) {
		repos := NewMongoRepositories(mt.DB)
		assert.NotNil(mt, repos.Students)
		assert.NotNil(mt, repos.Classes)
		assert.NotNil(mt, repos.Enrollments)
		assert.NotNil(mt, repos.Reports)
	})
}
