package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-exchange/exchange/internal/model"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "short", input: "Dune", want: 4},
		{name: "exact", input: strings.Repeat("a", maxTextLen), want: maxTextLen},
		{name: "long multibyte", input: strings.Repeat("ж", 400), want: maxTextLen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input)
			require.Len(t, []rune(got), tt.want)
			require.True(t, strings.HasPrefix(tt.input, got))
		})
	}
	require.Nil(t, truncatePtr(nil))
}

func TestFormatDate(t *testing.T) {
	require.Nil(t, formatDate(nil))
	d := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "1965-08-01", *formatDate(&d))
}

func TestPgErrorClassification(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "books_external_id_key"}, "insert")
	pgErr, ok := isUniqueViolation(unique)
	require.True(t, ok)
	require.Equal(t, booksExternalIDKey, pgErr.ConstraintName)

	_, ok = isForeignKeyViolation(unique)
	require.False(t, ok)

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	_, ok = isForeignKeyViolation(fk)
	require.True(t, ok)

	_, ok = isUniqueViolation(errors.New("boom"))
	require.False(t, ok)
}

func TestLedgerTable(t *testing.T) {
	require.Equal(t, booksOfferedTableName, ledgerTable(model.ListOffered))
	require.Equal(t, booksWantedTableName, ledgerTable(model.ListWanted))
}

func TestPossibleTradesQuery(t *testing.T) {
	userID := uuid.New()
	query, args, err := possibleTradesQuery(userID).ToSql()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "SELECT DISTINCT "))
	require.Contains(t, query, "FROM books_offered my_offers")
	require.Contains(t, query, "partner.id <> $3")
	require.True(t, strings.HasSuffix(query, "ORDER BY partner.name, offered_book.title, wanted_book.title, partner.id, offered_book.id, wanted_book.id"))
	// squirrel stores driver.Valuer arguments by value
	id := userID.String()
	require.Equal(t, []interface{}{id, id, id}, args)
}
