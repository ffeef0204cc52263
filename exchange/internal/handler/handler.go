package handler

import (
	"net/http"

	md "github.com/Astemirdum/book-exchange/pkg/middleware"
	"github.com/Astemirdum/book-exchange/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc  AuthService
	bookSvc  BookService
	tradeSvc TradeService
	verifier md.TokenVerifier
	log      *zap.Logger
}

func New(authSvc AuthService, bookSvc BookService, tradeSvc TradeService, verifier md.TokenVerifier, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:  authSvc,
		bookSvc:  bookSvc,
		tradeSvc: tradeSvc,
		verifier: verifier,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.errorHandler
	e.Validator = validate.NewCustomValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.Me, md.JwtAuthentication(h.verifier))

	books := api.Group("/books", md.JwtAuthentication(h.verifier))
	books.POST("/search", h.SearchBooks)
	books.GET("", h.GetUserBooks)
	books.POST("/offered", h.AddToOffered)
	books.DELETE("/offered/:book_id", h.RemoveFromOffered)
	books.POST("/wanted", h.AddToWanted)
	books.DELETE("/wanted/:book_id", h.RemoveFromWanted)

	trades := api.Group("/trades", md.JwtAuthentication(h.verifier))
	trades.GET("/possible", h.GetPossibleTrades)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
