package repository

import (
	"context"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LedgerRepository stores which books a user offers or wants. Both lists
// share the table layout and differ only in the table name.
type LedgerRepository struct {
	db    *pgxpool.Pool
	log   *zap.Logger
	list  model.List
	table string
}

func NewOfferedRepository(db *pgxpool.Pool, log *zap.Logger) *LedgerRepository {
	return newLedgerRepository(db, log, model.ListOffered)
}

func NewWantedRepository(db *pgxpool.Pool, log *zap.Logger) *LedgerRepository {
	return newLedgerRepository(db, log, model.ListWanted)
}

func newLedgerRepository(db *pgxpool.Pool, log *zap.Logger, list model.List) *LedgerRepository {
	return &LedgerRepository{
		db:    db,
		log:   log.Named(string(list) + "_repo"),
		list:  list,
		table: ledgerTable(list),
	}
}

func ledgerTable(list model.List) string {
	if list == model.ListWanted {
		return booksWantedTableName
	}
	return booksOfferedTableName
}

func (r *LedgerRepository) List() model.List { return r.list }

func (r *LedgerRepository) Create(ctx context.Context, bookID, userID uuid.UUID) (model.ListEntry, error) {
	query, args, err := qb.Insert(r.table).
		Columns("book_id", "user_id").
		Values(bookID, userID).
		ToSql()
	if err != nil {
		return model.ListEntry{}, errs.Internal(err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return model.ListEntry{}, AlreadyInList(r.list)
		}
		if pgErr, ok := isForeignKeyViolation(err); ok {
			switch pgErr.ConstraintName {
			case r.table + "_book_id_fkey":
				return model.ListEntry{}, errs.Validation("book with id %s not found", bookID)
			case r.table + "_user_id_fkey":
				return model.ListEntry{}, errs.Validation("user with id %s not found", userID)
			}
		}
		return model.ListEntry{}, r.storageErr("Create", query, err)
	}
	return model.ListEntry{BookID: bookID, UserID: userID}, nil
}

func (r *LedgerRepository) Find(ctx context.Context, bookID, userID uuid.UUID) (*model.ListEntry, error) {
	query, args, err := qb.Select("book_id", "user_id").
		From(r.table).
		Where(sq.Eq{"book_id": bookID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errs.Internal(err)
	}

	var entry model.ListEntry
	err = r.db.QueryRow(ctx, query, args...).Scan(&entry.BookID, &entry.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.storageErr("Find", query, err)
	}
	return &entry, nil
}

// Delete reports whether a row was removed.
func (r *LedgerRepository) Delete(ctx context.Context, bookID, userID uuid.UUID) (bool, error) {
	query, args, err := qb.Delete(r.table).
		Where(sq.Eq{"book_id": bookID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, errs.Internal(err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, r.storageErr("Delete", query, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LedgerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := qb.Select("book_id").
		From(r.table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, errs.Internal(err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageErr("FindByUserID", query, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, r.storageErr("FindByUserID", query, err)
	}
	return ids, nil
}

func (r *LedgerRepository) storageErr(op, query string, err error) error {
	r.log.Error(op, zap.String("q", query), zap.Error(err))
	return errs.Internal(errors.Wrap(err, op))
}

// AlreadyInList is returned both by the service pre-check and when a
// concurrent insert loses on the primary key.
func AlreadyInList(list model.List) error {
	return errs.Validation("book is already in your %s list", list)
}
