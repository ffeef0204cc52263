package handler

import (
	"net/http"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const statusSuccess = "success"

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, response{Status: statusSuccess, Message: message, Data: data})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler renders every failure as {"error":{"message","status"}}.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code    int
		message string
		httpErr *echo.HTTPError
	)
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = http.StatusText(code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	} else {
		code = statusOf(errs.KindOf(err))
		message = errs.Message(err)
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	body := errorResponse{Error: errorBody{Message: message, Status: code}}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}
