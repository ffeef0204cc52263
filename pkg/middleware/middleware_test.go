package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-exchange/pkg/auth"
	"github.com/Astemirdum/book-exchange/pkg/middleware"
)

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	jwt := auth.NewJWT(auth.Config{Secret: "secret", TTL: time.Hour})
	userID := uuid.New()
	token, _, err := jwt.Issue(userID)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "ok", header: "Bearer " + token, expectedCode: http.StatusOK, expectedBody: userID.String()},
		{name: "missing header", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"missing authorization header"}`},
		{name: "not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"invalid authorization header, expected Bearer token"}`},
		{name: "malformed", header: "Bearer abc", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"malformed token"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				id, ok := auth.UserIDFromContext(c.Request().Context())
				require.True(t, ok)
				return c.String(http.StatusOK, id.String())
			}, middleware.JwtAuthentication(jwt))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(middleware.AuthorizationHeader, tt.header)
			}
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
