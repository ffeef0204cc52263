package validate_test

import (
	"testing"

	"github.com/Astemirdum/book-exchange/pkg/validate"
	"github.com/stretchr/testify/require"
)

type registerReq struct {
	Name     string `validate:"required,max=255"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()

	tests := []struct {
		name    string
		req     registerReq
		wantErr string
	}{
		{
			name: "ok",
			req:  registerReq{Name: "Ana", Email: "ana@example.com", Password: "secret"},
		},
		{
			name:    "empty name",
			req:     registerReq{Email: "ana@example.com", Password: "secret"},
			wantErr: "name must not be empty",
		},
		{
			name:    "bad email",
			req:     registerReq{Name: "Ana", Email: "ana", Password: "secret"},
			wantErr: "email has an invalid format",
		},
		{
			name:    "short password",
			req:     registerReq{Name: "Ana", Email: "ana@example.com", Password: "123"},
			wantErr: "password must be at least 6 characters",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCustomValidator_JSONFieldNames(t *testing.T) {
	t.Parallel()
	type addReq struct {
		ExternalID string `json:"google_id" validate:"required"`
	}
	err := validate.NewCustomValidator().Validate(addReq{})
	require.EqualError(t, err, "google_id must not be empty")
}
