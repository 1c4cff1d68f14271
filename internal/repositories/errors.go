package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound means no row matched the id and owner. A row owned by another
	// user is indistinguishable from an absent row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail means the unique index on email rejected the write.
	ErrDuplicateEmail = errors.New("email already exists")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
