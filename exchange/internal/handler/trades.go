package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetPossibleTrades(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	trades, err := h.tradeSvc.FindPossibleTrades(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "possible trades", trades)
}
