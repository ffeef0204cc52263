package handler

import (
	"context"
	"net/http"

	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (h *Handler) SearchBooks(c echo.Context) error {
	var req model.SearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	books, err := h.bookSvc.Search(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "books found", books)
}

func (h *Handler) GetUserBooks(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	books, err := h.bookSvc.GetUserBooks(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "user books", books)
}

func (h *Handler) AddToOffered(c echo.Context) error {
	return h.addBook(c, h.bookSvc.AddToOffered, "book added to offered list")
}

func (h *Handler) AddToWanted(c echo.Context) error {
	return h.addBook(c, h.bookSvc.AddToWanted, "book added to wanted list")
}

func (h *Handler) RemoveFromOffered(c echo.Context) error {
	return h.removeBook(c, h.bookSvc.RemoveFromOffered, "book removed from offered list")
}

func (h *Handler) RemoveFromWanted(c echo.Context) error {
	return h.removeBook(c, h.bookSvc.RemoveFromWanted, "book removed from wanted list")
}

type addFunc func(ctx context.Context, externalID string, userID uuid.UUID) (model.ListEntry, error)

type removeFunc func(ctx context.Context, bookID, userID uuid.UUID) error

func (h *Handler) addBook(c echo.Context, add addFunc, message string) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req model.AddBookRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	entry, err := add(c.Request().Context(), req.ExternalID, userID)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, message, entry)
}

func (h *Handler) removeBook(c echo.Context, remove removeFunc, message string) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if err = remove(c.Request().Context(), bookID, userID); err != nil {
		return err
	}
	return success(c, http.StatusOK, message, nil)
}
