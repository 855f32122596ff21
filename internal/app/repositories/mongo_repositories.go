package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/report"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/dberrors"
	"github.com/yigit/college/internal/pkg/logger"
	"github.com/yigit/college/internal/pkg/validation"
)

// identifierFields maps each collection to the field its records are keyed by
var identifierFields = map[string]string{
	models.StudentsCollection:    "studentId",
	models.ClassesCollection:     "classId",
	models.EnrollmentsCollection: "enrollmentId",
}

// MongoCollection implements the batch writer and full read for one record type
type MongoCollection[T any] struct {
	coll *mongo.Collection
}

// NewMongoCollection binds a record type to a named collection of db
func NewMongoCollection[T any](db *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{coll: db.Collection(name)}
}

// InsertMany performs an ordered insert. The server stops at the first failing
// document and keeps everything before it.
func (c *MongoCollection[T]) InsertMany(ctx context.Context, records []T) (int, error) {
	name := c.coll.Name()
	if len(records) == 0 {
		return 0, nil
	}

	if err := validation.Batch(records); err != nil {
		logger.Warn().Err(err).Str("collection", name).Msg("Rejected invalid batch")
		return 0, apperrors.NewBatchError(name, 0, len(records), err)
	}

	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}

	_, err := c.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		inserted := 0
		if idx, ok := dberrors.FirstWriteErrorIndex(err); ok {
			inserted = idx
		}
		if dberrors.IsDuplicateKeyError(err) {
			err = fmt.Errorf("%w: %v", apperrors.ErrDuplicateIdentifier, err)
		}
		logger.Error().Err(err).Str("collection", name).Int("inserted", inserted).Int("total", len(records)).
			Msg("Batch insert failed")
		return inserted, apperrors.NewBatchError(name, inserted, len(records), err)
	}

	logger.Info().Str("collection", name).Int("count", len(records)).Msg("Batch inserted")
	return len(records), nil
}

// FindAll reads every document of the collection in natural order
func (c *MongoCollection[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find %s: %v", apperrors.ErrQueryFailed, c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	records := []T{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", apperrors.ErrQueryFailed, c.coll.Name(), err)
	}
	return records, nil
}

// MongoReportRepository runs the enrollment aggregation
type MongoReportRepository struct {
	enrollments *mongo.Collection
}

// NewMongoReportRepository creates a report repository over db
func NewMongoReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{enrollments: db.Collection(models.EnrollmentsCollection)}
}

// EnrollmentReport aggregates enrollments with their students and classes
func (r *MongoReportRepository) EnrollmentReport(ctx context.Context) ([]models.EnrollmentReportRow, error) {
	cursor, err := r.enrollments.Aggregate(ctx, report.EnrollmentPipeline())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to aggregate enrollments: %v", apperrors.ErrQueryFailed, err)
	}
	defer cursor.Close(ctx)

	rows := []models.EnrollmentReportRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode enrollment report: %v", apperrors.ErrQueryFailed, err)
	}
	return rows, nil
}

// NewMongoRepositories initializes all repositories over db
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Students:    NewMongoCollection[models.Student](db, models.StudentsCollection),
		Classes:     NewMongoCollection[models.Class](db, models.ClassesCollection),
		Enrollments: NewMongoCollection[models.Enrollment](db, models.EnrollmentsCollection),
		Reports:     NewMongoReportRepository(db),
	}
}

// EnsureIndexes creates a unique index on the identifier field of every
// collection. Creating an index that already exists is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{models.StudentsCollection, models.ClassesCollection, models.EnrollmentsCollection} {
		field := identifierFields[name]
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(field + "_unique"),
		}
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create unique index on %s.%s: %w", name, field, err)
		}
		logger.Debug().Str("collection", name).Str("field", field).Msg("Unique index ensured")
	}
	return nil
}
