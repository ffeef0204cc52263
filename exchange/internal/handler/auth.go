package handler

import (
	"net/http"

	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/pkg/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.CreateUser
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.authSvc.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "user registered", user)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.Login
	if err := bind(c, &req); err != nil {
		return err
	}
	token, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "logged in", token)
}

func (h *Handler) Me(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	user, err := h.authSvc.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "current user", user)
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(c.Request().Context())
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return userID, nil
}
