package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const booksExternalIDKey = "books_external_id_key"

var bookColumns = []string{
	"id", "external_id", "title", "authors", "publisher",
	"published_date", "description", "image_url", "page_count",
}

// BookRepository caches catalog books keyed by their external id.
type BookRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewBookRepository(db *pgxpool.Pool, log *zap.Logger) *BookRepository {
	return &BookRepository{
		db:  db,
		log: log.Named("book_repo"),
	}
}

func (r *BookRepository) FindByExternalID(ctx context.Context, externalID string) (*model.Book, error) {
	return r.findOne(ctx, "FindByExternalID", sq.Eq{"external_id": externalID})
}

// FindByID treats an id that is not a uuid as a miss.
func (r *BookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, "FindByID", sq.Eq{"id": bookID})
}

func (r *BookRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Book, error) {
	bookIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		bookID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		bookIDs = append(bookIDs, bookID)
	}
	if len(bookIDs) == 0 {
		return []model.Book{}, nil
	}

	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookIDs}).
		OrderBy("title", "id").
		ToSql()
	if err != nil {
		return nil, errs.Internal(err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageErr("FindByIDs", query, err)
	}
	books, err := pgx.CollectRows(rows, scanBook)
	if err != nil {
		return nil, r.storageErr("FindByIDs", query, err)
	}
	return books, nil
}

// Create stores book and returns its id. When another request cached the
// same external id first, the existing id is returned.
func (r *BookRepository) Create(ctx context.Context, book model.CatalogBook) (uuid.UUID, error) {
	var published *time.Time
	if book.PublishedDate != nil {
		t, err := time.Parse(dateLayout, *book.PublishedDate)
		if err != nil {
			return uuid.Nil, errs.Validation("invalid published date %q, expected format YYYY-MM-DD", *book.PublishedDate)
		}
		published = &t
	}

	id := uuid.New()
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(
			id,
			book.ExternalID,
			truncate(book.Title),
			truncatePtr(book.Authors),
			truncatePtr(book.Publisher),
			published,
			truncatePtr(book.Description),
			book.ImageURL,
			book.PageCount,
		).
		ToSql()
	if err != nil {
		return uuid.Nil, errs.Internal(err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if pgErr, ok := isUniqueViolation(err); ok && pgErr.ConstraintName == booksExternalIDKey {
			existing, findErr := r.FindByExternalID(ctx, book.ExternalID)
			if findErr != nil {
				return uuid.Nil, findErr
			}
			if existing != nil {
				return existing.ID, nil
			}
		}
		return uuid.Nil, r.storageErr("Create", query, err)
	}
	return id, nil
}

func (r *BookRepository) findOne(ctx context.Context, op string, where sq.Eq) (*model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errs.Internal(err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageErr(op, query, err)
	}
	book, err := pgx.CollectOneRow(rows, scanBook)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.storageErr(op, query, err)
	}
	return &book, nil
}

func (r *BookRepository) storageErr(op, query string, err error) error {
	r.log.Error(op, zap.String("q", query), zap.Error(err))
	return errs.Internal(errors.Wrap(err, op))
}

func scanBook(row pgx.CollectableRow) (model.Book, error) {
	var (
		b         model.Book
		published *time.Time
	)
	err := row.Scan(
		&b.ID,
		&b.ExternalID,
		&b.Title,
		&b.Authors,
		&b.Publisher,
		&published,
		&b.Description,
		&b.ImageURL,
		&b.PageCount,
	)
	b.PublishedDate = formatDate(published)
	return b, err
}
