package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/dberrors"
	"github.com/yigit/college/internal/pkg/logger"
	"github.com/yigit/college/internal/pkg/validation"
)

// Querier is the subset of a pgx pool the repositories use
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// pgTable describes how one record type maps onto a table
type pgTable[T any] struct {
	name    string
	key     string
	columns []string
	values  func(T) []interface{}
	scan    func(pgx.Rows) (T, error)
}

// PostgresTable implements the batch writer and full read for one record type
type PostgresTable[T any] struct {
	db    Querier
	sb    squirrel.StatementBuilderType
	table pgTable[T]
}

func newPostgresTable[T any](db Querier, table pgTable[T]) *PostgresTable[T] {
	return &PostgresTable[T]{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table: table,
	}
}

// InsertMany inserts records one statement at a time outside a transaction, so a
// failing record leaves the earlier ones committed.
func (t *PostgresTable[T]) InsertMany(ctx context.Context, records []T) (int, error) {
	name := t.table.name
	if len(records) == 0 {
		return 0, nil
	}

	if err := validation.Batch(records); err != nil {
		logger.Warn().Err(err).Str("table", name).Msg("Rejected invalid batch")
		return 0, apperrors.NewBatchError(name, 0, len(records), err)
	}

	for i, record := range records {
		sql, args, err := t.sb.Insert(name).
			Columns(t.table.columns...).
			Values(t.table.values(record)...).
			ToSql()
		if err != nil {
			return i, apperrors.NewBatchError(name, i, len(records), fmt.Errorf("failed to build insert query: %w", err))
		}

		if _, err := t.db.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				err = fmt.Errorf("%w: %v", apperrors.ErrDuplicateIdentifier, err)
			}
			logger.Error().Err(err).Str("table", name).Int("inserted", i).Int("total", len(records)).
				Msg("Batch insert failed")
			return i, apperrors.NewBatchError(name, i, len(records), err)
		}
	}

	logger.Info().Str("table", name).Int("count", len(records)).Msg("Batch inserted")
	return len(records), nil
}

// FindAll reads every row ordered by the identifier column
func (t *PostgresTable[T]) FindAll(ctx context.Context) ([]T, error) {
	sql, args, err := t.sb.Select(t.table.columns...).
		From(t.table.name).
		OrderBy(t.table.key).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %v", apperrors.ErrQueryFailed, t.table.name, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		record, err := t.table.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan %s row: %v", apperrors.ErrQueryFailed, t.table.name, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed reading %s rows: %v", apperrors.ErrQueryFailed, t.table.name, err)
	}
	return records, nil
}

var studentTable = pgTable[models.Student]{
	name:    models.StudentsCollection,
	key:     "student_id",
	columns: []string{"student_id", "first_name", "last_name", "program", "term"},
	values: func(s models.Student) []interface{} {
		return []interface{}{s.StudentID, s.FirstName, s.LastName, s.Program, string(s.Term)}
	},
	scan: func(rows pgx.Rows) (models.Student, error) {
		var s models.Student
		var term string
		err := rows.Scan(&s.StudentID, &s.FirstName, &s.LastName, &s.Program, &term)
		s.Term = models.Term(term)
		return s, err
	},
}

var classTable = pgTable[models.Class]{
	name:    models.ClassesCollection,
	key:     "class_id",
	columns: []string{"class_id", "course_name", "date_time", "instructor_id", "location"},
	values: func(c models.Class) []interface{} {
		return []interface{}{c.ClassID, c.CourseName, c.DateTime, c.InstructorID, c.Location}
	},
	scan: func(rows pgx.Rows) (models.Class, error) {
		var c models.Class
		err := rows.Scan(&c.ClassID, &c.CourseName, &c.DateTime, &c.InstructorID, &c.Location)
		return c, err
	},
}

var enrollmentTable = pgTable[models.Enrollment]{
	name:    models.EnrollmentsCollection,
	key:     "enrollment_id",
	columns: []string{"enrollment_id", "student_id", "class_id"},
	values: func(e models.Enrollment) []interface{} {
		return []interface{}{e.EnrollmentID, e.StudentID, e.ClassID}
	},
	scan: func(rows pgx.Rows) (models.Enrollment, error) {
		var e models.Enrollment
		err := rows.Scan(&e.EnrollmentID, &e.StudentID, &e.ClassID)
		return e, err
	},
}

// PostgresReportRepository runs the enrollment join as SQL
type PostgresReportRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewPostgresReportRepository creates a report repository over db
func NewPostgresReportRepository(db Querier) *PostgresReportRepository {
	return &PostgresReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnrollmentReport inner-joins enrollments to students and classes
func (r *PostgresReportRepository) EnrollmentReport(ctx context.Context) ([]models.EnrollmentReportRow, error) {
	sql, args, err := r.sb.Select(
		"e.enrollment_id", "s.first_name", "s.last_name",
		"c.course_name", "c.date_time", "c.location",
	).
		From("enrollments e").
		Join("students s ON s.student_id = e.student_id").
		Join("classes c ON c.class_id = e.class_id").
		OrderBy("e.enrollment_id", "s.student_id", "c.class_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query enrollment report: %v", apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	result := []models.EnrollmentReportRow{}
	for rows.Next() {
		var row models.EnrollmentReportRow
		if err := rows.Scan(
			&row.EnrollmentID,
			&row.StudentDetails.FirstName, &row.StudentDetails.LastName,
			&row.ClassDetails.CourseName, &row.ClassDetails.DateTime, &row.ClassDetails.Location,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan report row: %v", apperrors.ErrQueryFailed, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed reading report rows: %v", apperrors.ErrQueryFailed, err)
	}
	return result, nil
}

// NewPostgresRepositories initializes all repositories over db
func NewPostgresRepositories(db Querier) *Repositories {
	return &Repositories{
		Students:    newPostgresTable(db, studentTable),
		Classes:     newPostgresTable(db, classTable),
		Enrollments: newPostgresTable(db, enrollmentTable),
		Reports:     NewPostgresReportRepository(db),
	}
}
