package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/seed"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestPostgresTable_InsertMany(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresRepositories(mock).Students

	students := seed.Students()[:3]
	for _, s := range students {
		mock.ExpectExec("INSERT INTO students").
			WithArgs(s.StudentID, s.FirstName, s.LastName, s.Program, string(s.Term)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	n, err := repo.InsertMany(context.Background(), students)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_InsertMany_DuplicateKeepsEarlierRows(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresRepositories(mock).Classes

	classes := seed.Classes()
	mock.ExpectExec("INSERT INTO classes").WithArgs(classes[0].ClassID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO classes").WithArgs(classes[1].ClassID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "classes_pkey"})

	n, err := repo.InsertMany(context.Background(), classes)

	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateIdentifier))
	assert.Equal(t, 1, apperrors.InsertedBefore(err))
	// No statement after the failing one was sent.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_InsertMany_OtherFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresRepositories(mock).Enrollments

	mock.ExpectExec("INSERT INTO enrollments").WillReturnError(errors.New("connection reset by peer"))

	n, err := repo.InsertMany(context.Background(), seed.Enrollments())

	require.Error(t, err)
	assert.Zero(t, n)
	assert.False(t, errors.Is(err, apperrors.ErrDuplicateIdentifier))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_FindAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresRepositories(mock).Students

	mock.ExpectQuery("SELECT student_id, first_name, last_name, program, term FROM students ORDER BY student_id").
		WillReturnRows(pgxmock.NewRows([]string{"student_id", "first_name", "last_name", "program", "term"}).
			AddRow("S001", "Joe", "Smith", "Computer Science", "Fall").
			AddRow("S002", "Suzan", "Ross", "Engineering", "Fall"))

	got, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, seed.Students()[:2], got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTable_FindAll_QueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresRepositories(mock).Classes

	mock.ExpectQuery("SELECT (.+) FROM classes").WillReturnError(errors.New("relation \"classes\" does not exist"))

	got, err := repo.FindAll(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrQueryFailed))
	assert.Nil(t, got)
}

func TestPostgresReportRepository_EnrollmentReport(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresReportRepository(mock)

	mock.ExpectQuery(`SELECT e.enrollment_id, (.+) FROM enrollments e JOIN students s ON s.student_id = e.student_id JOIN classes c ON c.class_id = e.class_id ORDER BY`).
		WillReturnRows(pgxmock.NewRows([]string{"enrollment_id", "first_name", "last_name", "course_name", "date_time", "location"}).
			AddRow("E001", "Joe", "Smith", "Quantum Computing 101", "Mon 9AM", "Room 101"))

	rows, err := repo.EnrollmentReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.EnrollmentReportRow{{
		EnrollmentID:   "E001",
		StudentDetails: models.StudentDetails{FirstName: "Joe", LastName: "Smith"},
		ClassDetails:   models.ClassDetails{CourseName: "Quantum Computing 101", DateTime: "Mon 9AM", Location: "Room 101"},
	}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReportRepository_Failure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("timeout"))

	rows, err := NewPostgresReportRepository(mock).EnrollmentReport(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrQueryFailed))
	assert.Nil(t, rows)
}
