package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

// IsDuplicateKeyError reports whether err is a unique key violation from either
// supported driver (MongoDB E11000 family or PostgreSQL 23505).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return mongo.IsDuplicateKeyError(err)
}

// FirstWriteErrorIndex returns the index of the first failed document in a
// MongoDB bulk or write exception, and false when err carries no write errors.
func FirstWriteErrorIndex(err error) (int, bool) {
	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) && len(bulkErr.WriteErrors) > 0 {
		first := bulkErr.WriteErrors[0].Index
		for _, we := range bulkErr.WriteErrors[1:] {
			if we.Index < first {
				first = we.Index
			}
		}
		return first, true
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) && len(writeErr.WriteErrors) > 0 {
		first := writeErr.WriteErrors[0].Index
		for _, we := range writeErr.WriteErrors[1:] {
			if we.Index < first {
				first = we.Index
			}
		}
		return first, true
	}

	return 0, false
}
