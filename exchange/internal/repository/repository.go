package repository

import (
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const (
	usersTableName        = `users`
	booksTableName        = `books`
	booksOfferedTableName = `books_offered`
	booksWantedTableName  = `books_wanted`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// maxTextLen matches the varchar(255) columns with some headroom.
const maxTextLen = 250

const dateLayout = time.DateOnly

// pgError returns the postgres error behind err, if any.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isUniqueViolation(err error) (*pgconn.PgError, bool) {
	pgErr, ok := pgError(err)
	return pgErr, ok && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) (*pgconn.PgError, bool) {
	pgErr, ok := pgError(err)
	return pgErr, ok && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxTextLen {
		return s
	}
	return string([]rune(s)[:maxTextLen])
}

func truncatePtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := truncate(*s)
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
