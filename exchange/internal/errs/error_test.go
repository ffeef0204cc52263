package errs_test

import (
	"fmt"
	"testing"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindAndMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		err     error
		kind    errs.Kind
		message string
	}{
		{"validation", errs.Validation("date '%s' must be YYYY-MM-DD", "2004"), errs.KindValidation, "date '2004' must be YYYY-MM-DD"},
		{"not found", errs.NotFound("book with id %s not found", "x1"), errs.KindNotFound, "book with id x1 not found"},
		{"auth", errs.ErrInvalidCredentials, errs.KindAuth, "invalid credentials"},
		{"internal redacts cause", errs.Internal(errors.New("pq: relation books does not exist")), errs.KindInternal, "internal storage error"},
		{"internal with message", errs.Internalf(errors.New("dial tcp"), "catalog is unavailable"), errs.KindInternal, "catalog is unavailable"},
		{"plain error", errors.New("boom"), errs.KindInternal, "internal storage error"},
		{"wrapped", fmt.Errorf("add offered: %w", errs.Validation("already")), errs.KindValidation, "already"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.kind, errs.KindOf(tt.err))
			require.Equal(t, tt.message, errs.Message(tt.err))
			require.True(t, errs.Is(tt.err, tt.kind) || tt.kind == errs.KindInternal)
		})
	}
}

func TestInternalKeepsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := errs.Internal(cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection refused")
}
