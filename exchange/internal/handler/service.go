package handler

import (
	"context"

	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/exchange/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.CreateUser) (model.User, error)
	Login(ctx context.Context, req model.Login) (model.Token, error)
	Me(ctx context.Context, userID uuid.UUID) (model.User, error)
}

type BookService interface {
	Search(ctx context.Context, query string) ([]model.CatalogBook, error)
	GetUserBooks(ctx context.Context, userID uuid.UUID) (model.UserBooks, error)
	AddToOffered(ctx context.Context, externalID string, userID uuid.UUID) (model.ListEntry, error)
	AddToWanted(ctx context.Context, externalID string, userID uuid.UUID) (model.ListEntry, error)
	RemoveFromOffered(ctx context.Context, bookID, userID uuid.UUID) error
	RemoveFromWanted(ctx context.Context, bookID, userID uuid.UUID) error
}

type TradeService interface {
	FindPossibleTrades(ctx context.Context, userID uuid.UUID) ([]model.PossibleTrade, error)
}

var (
	_ AuthService  = (*service.AuthService)(nil)
	_ BookService  = (*service.BookService)(nil)
	_ TradeService = (*service.TradeService)(nil)
)
