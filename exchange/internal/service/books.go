package service

import (
	"context"
	"time"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/exchange/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BookService owns the offered and wanted lists of every user and the
// catalog cache behind them.
type BookService struct {
	log       *zap.Logger
	books     BookRepository
	offered   LedgerRepository
	wanted    LedgerRepository
	catalog   CatalogLookup
	publisher EventPublisher
	now       func() time.Time
}

func NewBookService(
	books BookRepository,
	offered, wanted LedgerRepository,
	catalog CatalogLookup,
	publisher EventPublisher,
	log *zap.Logger,
) *BookService {
	return &BookService{
		log:       log.Named("books"),
		books:     books,
		offered:   offered,
		wanted:    wanted,
		catalog:   catalog,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *BookService) Search(ctx context.Context, query string) ([]model.CatalogBook, error) {
	return s.catalog.Search(ctx, query)
}

func (s *BookService) GetUserBooks(ctx context.Context, userID uuid.UUID) (model.UserBooks, error) {
	var offeredIDs, wantedIDs []uuid.UUID
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		offeredIDs, err = s.offered.FindByUserID(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		wantedIDs, err = s.wanted.FindByUserID(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.UserBooks{}, err
	}

	offered, err := s.resolve(ctx, offeredIDs)
	if err != nil {
		return model.UserBooks{}, err
	}
	wanted, err := s.resolve(ctx, wantedIDs)
	if err != nil {
		return model.UserBooks{}, err
	}
	return model.UserBooks{Offered: offered, Wanted: wanted}, nil
}

func (s *BookService) resolve(ctx context.Context, ids []uuid.UUID) ([]model.Book, error) {
	if len(ids) == 0 {
		return []model.Book{}, nil
	}
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}
	return s.books.FindByIDs(ctx, strIDs)
}

// bookID returns the cached id of externalID, fetching the book from the
// catalog and caching it on a miss.
func (s *BookService) bookID(ctx context.Context, externalID string) (uuid.UUID, error) {
	book, err := s.books.FindByExternalID(ctx, externalID)
	if err != nil {
		return uuid.Nil, err
	}
	if book != nil {
		return book.ID, nil
	}

	found, err := s.catalog.FindByID(ctx, externalID)
	if err != nil {
		return uuid.Nil, err
	}
	// cache under the id the user asked for so the next lookup hits
	found.ExternalID = externalID
	return s.books.Create(ctx, found)
}

func (s *BookService) AddToOffered(ctx context.Context, externalID string, userID uuid.UUID) (model.ListEntry, error) {
	bookID, err := s.bookID(ctx, externalID)
	if err != nil {
		return model.ListEntry{}, err
	}
	if err := s.ensureAbsent(ctx, s.offered, model.ListOffered, bookID, userID); err != nil {
		return model.ListEntry{}, err
	}
	return s.add(ctx, s.offered, model.ListOffered, bookID, userID)
}

// AddToWanted rejects a book the user already offers. Offering a wanted book
// is allowed.
func (s *BookService) AddToWanted(ctx context.Context, externalID string, userID uuid.UUID) (model.ListEntry, error) {
	bookID, err := s.bookID(ctx, externalID)
	if err != nil {
		return model.ListEntry{}, err
	}
	if err := s.ensureAbsent(ctx, s.wanted, model.ListWanted, bookID, userID); err != nil {
		return model.ListEntry{}, err
	}
	if err := s.ensureAbsent(ctx, s.offered, model.ListOffered, bookID, userID); err != nil {
		return model.ListEntry{}, err
	}
	return s.add(ctx, s.wanted, model.ListWanted, bookID, userID)
}

func (s *BookService) RemoveFromOffered(ctx context.Context, bookID, userID uuid.UUID) error {
	return s.remove(ctx, s.offered, model.ListOffered, bookID, userID)
}

func (s *BookService) RemoveFromWanted(ctx context.Context, bookID, userID uuid.UUID) error {
	return s.remove(ctx, s.wanted, model.ListWanted, bookID, userID)
}

func (s *BookService) ensureAbsent(ctx context.Context, ledger LedgerRepository, list model.List, bookID, userID uuid.UUID) error {
	entry, err := ledger.Find(ctx, bookID, userID)
	if err != nil {
		return err
	}
	if entry != nil {
		return repository.AlreadyInList(list)
	}
	return nil
}

func (s *BookService) add(ctx context.Context, ledger LedgerRepository, list model.List, bookID, userID uuid.UUID) (model.ListEntry, error) {
	entry, err := ledger.Create(ctx, bookID, userID)
	if err != nil {
		return model.ListEntry{}, err
	}
	s.publish(ctx, model.ListEventAdded, list, bookID, userID)
	return entry, nil
}

func (s *BookService) remove(ctx context.Context, ledger LedgerRepository, list model.List, bookID, userID uuid.UUID) error {
	entry, err := ledger.Find(ctx, bookID, userID)
	if err != nil {
		return err
	}
	if entry == nil {
		return errs.Validation("book is not in your %s list", list)
	}
	if _, err = ledger.Delete(ctx, bookID, userID); err != nil {
		return err
	}
	s.publish(ctx, model.ListEventRemoved, list, bookID, userID)
	return nil
}

func (s *BookService) publish(ctx context.Context, typ model.ListEventType, list model.List, bookID, userID uuid.UUID) {
	event := model.ListEvent{
		Type:   typ,
		List:   list,
		UserID: userID,
		BookID: bookID,
		At:     s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish list event",
			zap.String("type", string(typ)),
			zap.String("list", string(list)),
			zap.Stringer("user_id", userID),
			zap.Error(err),
		)
	}
}
