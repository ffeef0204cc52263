package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/handler"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/pkg/auth"

	service_mocks "github.com/Astemirdum/book-exchange/exchange/internal/handler/mocks"
)

var (
	userID = uuid.MustParse("5f8e9b1a-7c2d-4e3f-9a1b-2c3d4e5f6a7b")
	bookID = uuid.MustParse("0b1c2d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e")
)

type mocks struct {
	auth   *service_mocks.MockAuthService
	books  *service_mocks.MockBookService
	trades *service_mocks.MockTradeService
}

func newRouter(t *testing.T) (*echo.Echo, mocks, string) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		auth:   service_mocks.NewMockAuthService(c),
		books:  service_mocks.NewMockBookService(c),
		trades: service_mocks.NewMockTradeService(c),
	}
	jwt := auth.NewJWT(auth.Config{Secret: "test-secret", TTL: time.Hour})
	token, _, err := jwt.Issue(userID)
	require.NoError(t, err)

	h := handler.New(m.auth, m.books, m.trades, jwt, zap.NewExample().Named("test"))
	return h.NewRouter(), m, token
}

type request struct {
	method string
	target string
	body   string
	authed bool
}

type response struct {
	expectedCode int
	expectedBody string
}

func do(e *echo.Echo, token string, req request) *httptest.ResponseRecorder {
	r := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if req.authed {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _, token := newRouter(t)
	w := do(e, token, request{method: http.MethodGet, target: "/manage/health"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	user := model.User{ID: userID, Name: "Ann", Email: "ann@example.com", PasswordHash: "secret-hash", CreatedAt: created, UpdatedAt: created}
	userJSON := `{"id":"5f8e9b1a-7c2d-4e3f-9a1b-2c3d4e5f6a7b","name":"Ann","email":"ann@example.com","created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z"}`

	tests := []struct {
		name         string
		request      request
		mockBehavior func(m mocks)
		response     response
	}{
		{
			name:    "register ok",
			request: request{method: http.MethodPost, target: "/api/auth/register", body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`},
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Register(gomock.Any(), model.CreateUser{Name: "Ann", Email: "ann@example.com", Password: "secret"}).
					Return(user, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"status":"success","message":"user registered","data":` + userJSON + `}`,
			},
		},
		{
			name:         "register short password",
			request:      request{method: http.MethodPost, target: "/api/auth/register", body: `{"name":"Ann","email":"ann@example.com","password":"123"}`},
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"password must be at least 6 characters","status":400}}`,
			},
		},
		{
			name:    "register duplicate email",
			request: request{method: http.MethodPost, target: "/api/auth/register", body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`},
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(model.User{}, errs.Validation("email already in use"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"email already in use","status":400}}`,
			},
		},
		{
			name:         "register broken json",
			request:      request{method: http.MethodPost, target: "/api/auth/register", body: `{"name":`},
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"invalid request body","status":400}}`,
			},
		},
		{
			name:    "login ok",
			request: request{method: http.MethodPost, target: "/api/auth/login", body: `{"email":"ann@example.com","password":"secret"}`},
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Login(gomock.Any(), model.Login{Email: "ann@example.com", Password: "secret"}).
					Return(model.Token{AccessToken: "tok", TokenType: "Bearer", ExpiresAt: created, User: user}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"logged in","data":{"access_token":"tok","token_type":"Bearer","expires_at":"2024-05-01T10:00:00Z","user":` + userJSON + `}}`,
			},
		},
		{
			name:    "login invalid credentials",
			request: request{method: http.MethodPost, target: "/api/auth/login", body: `{"email":"ann@example.com","password":"wrong"}`},
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(model.Token{}, errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"error":{"message":"invalid credentials","status":401}}`,
			},
		},
		{
			name:    "me",
			request: request{method: http.MethodGet, target: "/api/auth/me", authed: true},
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().Me(gomock.Any(), userID).Return(user, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"current user","data":` + userJSON + `}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, token := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, token, tt.request)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Books(t *testing.T) {
	t.Parallel()
	entryJSON := `{"book_id":"0b1c2d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e","user_id":"5f8e9b1a-7c2d-4e3f-9a1b-2c3d4e5f6a7b"}`

	tests := []struct {
		name         string
		request      request
		mockBehavior func(m mocks)
		response     response
	}{
		{
			name:         "unauthorized",
			request:      request{method: http.MethodGet, target: "/api/books"},
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"error":{"message":"missing authorization header","status":401}}`,
			},
		},
		{
			name:    "search",
			request: request{method: http.MethodPost, target: "/api/books/search", body: `{"query":"dune"}`, authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().Search(gomock.Any(), "dune").Return([]model.CatalogBook{{ExternalID: "g1", Title: "Dune"}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"books found","data":[{"google_id":"g1","title":"Dune","authors":null,"publisher":null,"published_date":null,"description":null,"image_url":null,"page_count":null}]}`,
			},
		},
		{
			name:         "search empty query",
			request:      request{method: http.MethodPost, target: "/api/books/search", body: `{"query":""}`, authed: true},
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"query must not be empty","status":400}}`,
			},
		},
		{
			name:    "user books",
			request: request{method: http.MethodGet, target: "/api/books", authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().GetUserBooks(gomock.Any(), userID).Return(model.UserBooks{Offered: []model.Book{}, Wanted: []model.Book{}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"user books","data":{"offered_books":[],"wanted_books":[]}}`,
			},
		},
		{
			name:    "add offered",
			request: request{method: http.MethodPost, target: "/api/books/offered", body: `{"google_id":"g1"}`, authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().AddToOffered(gomock.Any(), "g1", userID).Return(model.ListEntry{BookID: bookID, UserID: userID}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"status":"success","message":"book added to offered list","data":` + entryJSON + `}`,
			},
		},
		{
			name:    "add wanted already offered",
			request: request{method: http.MethodPost, target: "/api/books/wanted", body: `{"google_id":"g1"}`, authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().AddToWanted(gomock.Any(), "g1", userID).Return(model.ListEntry{}, errs.Validation("book is already in your offered list"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"book is already in your offered list","status":400}}`,
			},
		},
		{
			name:    "add unknown catalog book",
			request: request{method: http.MethodPost, target: "/api/books/offered", body: `{"google_id":"nope"}`, authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().AddToOffered(gomock.Any(), "nope", userID).Return(model.ListEntry{}, errs.NotFound("book with id nope not found"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":{"message":"book with id nope not found","status":404}}`,
			},
		},
		{
			name:         "add missing google id",
			request:      request{method: http.MethodPost, target: "/api/books/offered", body: `{}`, authed: true},
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"google_id must not be empty","status":400}}`,
			},
		},
		{
			name:    "remove wanted",
			request: request{method: http.MethodDelete, target: "/api/books/wanted/" + bookID.String(), authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().RemoveFromWanted(gomock.Any(), bookID, userID).Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"book removed from wanted list"}`,
			},
		},
		{
			name:    "remove not in list",
			request: request{method: http.MethodDelete, target: "/api/books/offered/" + bookID.String(), authed: true},
			mockBehavior: func(m mocks) {
				m.books.EXPECT().RemoveFromOffered(gomock.Any(), bookID, userID).Return(errs.Validation("book is not in your offered list"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"book is not in your offered list","status":400}}`,
			},
		},
		{
			name:         "remove bad id",
			request:      request{method: http.MethodDelete, target: "/api/books/offered/42", authed: true},
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"message":"invalid book id","status":400}}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, token := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, token, tt.request)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PossibleTrades(t *testing.T) {
	t.Parallel()
	partnerID := uuid.MustParse("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d")
	wantedID := uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m, token := newRouter(t)
		m.trades.EXPECT().FindPossibleTrades(gomock.Any(), userID).Return([]model.PossibleTrade{{
			OfferedBookID: bookID,
			OfferedBook:   model.CatalogBook{ExternalID: "a", Title: "A"},
			WantedBookID:  wantedID,
			WantedBook:    model.CatalogBook{ExternalID: "b", Title: "B"},
			TradePartner:  model.User{ID: partnerID, Name: "Bob", Email: "bob@example.com", PasswordHash: "x", CreatedAt: at, UpdatedAt: at},
		}}, nil)

		w := do(e, token, request{method: http.MethodGet, target: "/api/trades/possible", authed: true})

		require.Equal(t, http.StatusOK, w.Code)
		body := strings.Trim(w.Body.String(), "\n")
		require.Contains(t, body, `"offered_book_id":"0b1c2d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e"`)
		require.Contains(t, body, `"trade_partner":{"id":"9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d","name":"Bob","email":"bob@example.com"`)
		require.NotContains(t, body, "password")
	})

	t.Run("storage failure is redacted", func(t *testing.T) {
		t.Parallel()
		e, m, token := newRouter(t)
		m.trades.EXPECT().FindPossibleTrades(gomock.Any(), userID).Return(nil, errs.Internal(errors.New("relation books_wanted does not exist")))

		w := do(e, token, request{method: http.MethodGet, target: "/api/trades/possible", authed: true})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, `{"error":{"message":"internal storage error","status":500}}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		e, _, _ := newRouter(t)
		expired := auth.NewJWT(auth.Config{Secret: "test-secret", TTL: -time.Hour})
		token, _, err := expired.Issue(userID)
		require.NoError(t, err)

		w := do(e, token, request{method: http.MethodGet, target: "/api/trades/possible", authed: true})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"error":{"message":"invalid or expired token","status":401}}`, strings.Trim(w.Body.String(), "\n"))
	})
}
