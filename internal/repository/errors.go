// Package repository gives every fleet entity the same five operations
// over its table and keeps storage-error translation at one boundary:
// uniqueness violations become ErrAlreadyExists, missing rows become
// ErrNotFound, and no driver error type ever escapes to a handler.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrNotFound means no row matched the given key. Handlers translate it
// to 404.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists means an insert collided with an existing primary key
// or unique column. Handlers translate it to 409.
var ErrAlreadyExists = errors.New("already exists")

// Postgres class 23: integrity constraint violation.
const uniqueViolationCode = "23505"

// isUniqueViolation recognizes a duplicate-key error from either Postgres
// driver shape, plus GORM's own translated sentinel.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translateCreate maps a duplicate-key failure to ErrAlreadyExists tagged
// with the conflicting key. Other errors pass through untouched.
func translateCreate(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %v: %w", entity, key, ErrAlreadyExists)
	}
	return err
}

// translateGet maps a missing row to ErrNotFound tagged with the key.
func translateGet(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", entity, key, ErrNotFound)
	}
	return err
}

// checkAffected turns a zero-row update/delete into ErrNotFound.
func checkAffected(res *gorm.DB, entity string, key any) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %v: %w", entity, key, ErrNotFound)
	}
	return nil
}
