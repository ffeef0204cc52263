package service

import (
	"context"
	"time"

	"github.com/Astemirdum/book-exchange/exchange/internal/catalog"
	"github.com/Astemirdum/book-exchange/exchange/internal/events"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/exchange/internal/repository"
	"github.com/Astemirdum/book-exchange/pkg/auth"
	"github.com/Astemirdum/book-exchange/pkg/password"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=contracts.go -destination=mocks/mock.go

type UserRepository interface {
	Create(ctx context.Context, user model.CreateUser, passwordHash string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type BookRepository interface {
	FindByExternalID(ctx context.Context, externalID string) (*model.Book, error)
	FindByID(ctx context.Context, id string) (*model.Book, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Book, error)
	Create(ctx context.Context, book model.CatalogBook) (uuid.UUID, error)
}

type LedgerRepository interface {
	Create(ctx context.Context, bookID, userID uuid.UUID) (model.ListEntry, error)
	Find(ctx context.Context, bookID, userID uuid.UUID) (*model.ListEntry, error)
	Delete(ctx context.Context, bookID, userID uuid.UUID) (bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type TradeRepository interface {
	FindPossibleTrades(ctx context.Context, userID uuid.UUID) ([]model.PossibleTrade, error)
}

type CatalogLookup interface {
	Search(ctx context.Context, query string) ([]model.CatalogBook, error)
	FindByID(ctx context.Context, externalID string) (model.CatalogBook, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.ListEvent) error
}

var (
	_ UserRepository   = (*repository.UserRepository)(nil)
	_ BookRepository   = (*repository.BookRepository)(nil)
	_ LedgerRepository = (*repository.LedgerRepository)(nil)
	_ TradeRepository  = (*repository.TradeRepository)(nil)
	_ CatalogLookup    = (*catalog.Client)(nil)
	_ PasswordHasher   = (*password.Argon2)(nil)
	_ TokenIssuer      = (*auth.JWT)(nil)
	_ EventPublisher   = (events.Publisher)(nil)
)
