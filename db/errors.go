package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a requested row, or a row a write refers to,
// does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write would violate a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// ErrInvalidArgument is returned when a write is rejected by a business rule
// or a check constraint.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	codeForeignKeyViolation pq.ErrorCode = "23503"
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeCheckViolation      pq.ErrorCode = "23514"
)

// matchSentinelError translates driver errors into the package sentinels.
func matchSentinelError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeForeignKeyViolation:
			return ErrNotFound
		case codeUniqueViolation:
			return ErrDuplicate
		case codeCheckViolation:
			return ErrInvalidArgument
		}
	}
	return err
}

// mustHaveAffectedRows returns ErrNotFound if a write touched nothing.
func mustHaveAffectedRows(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
