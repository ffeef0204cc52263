package repository

import (
	"context"
	"fmt"
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

// TradeRepository finds two-party swaps: the user offers a book the partner
// wants, and the partner offers a book the user wants.
type TradeRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewTradeRepository(db *pgxpool.Pool, log *zap.Logger) *TradeRepository {
	return &TradeRepository{
		db:  db,
		log: log.Named("trade_repo"),
	}
}

func bookColumnsAs(alias string) []string {
	cols := make([]string, 0, len(bookColumns))
	for _, c := range bookColumns {
		cols = append(cols, alias+"."+c)
	}
	return cols
}

func possibleTradesQuery(userID uuid.UUID) sq.SelectBuilder {
	cols := append(bookColumnsAs("offered_book"), bookColumnsAs("wanted_book")...)
	cols = append(cols, "partner.id", "partner.name", "partner.email", "partner.created_at", "partner.updated_at")

	return qb.Select(cols...).
		Distinct().
		From(booksOfferedTableName + " my_offers").
		Join(fmt.Sprintf("%s offered_book on offered_book.id = my_offers.book_id", booksTableName)).
		Join(fmt.Sprintf("%s partner_wants on partner_wants.book_id = offered_book.id", booksWantedTableName)).
		Join(fmt.Sprintf("%s partner on partner.id = partner_wants.user_id", usersTableName)).
		Join(fmt.Sprintf("%s partner_offers on partner_offers.user_id = partner.id", booksOfferedTableName)).
		Join(fmt.Sprintf("%s wanted_book on wanted_book.id = partner_offers.book_id", booksTableName)).
		Join(fmt.Sprintf("%s my_wants on my_wants.book_id = wanted_book.id", booksWantedTableName)).
		Where(sq.Eq{"my_offers.user_id": userID}).
		Where(sq.Eq{"my_wants.user_id": userID}).
		Where(sq.NotEq{"partner.id": userID}).
		OrderBy("partner.name", "offered_book.title", "wanted_book.title", "partner.id", "offered_book.id", "wanted_book.id")
}

func (r *TradeRepository) FindPossibleTrades(ctx context.Context, userID uuid.UUID) ([]model.PossibleTrade, error) {
	query, args, err := possibleTradesQuery(userID).ToSql()
	if err != nil {
		return nil, errs.Internal(err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("FindPossibleTrades", zap.String("q", query), zap.Error(err))
		return nil, errs.Internal(errors.Wrap(err, "FindPossibleTrades"))
	}
	trades, err := pgx.CollectRows(rows, scanTrade)
	if err != nil {
		r.log.Error("FindPossibleTrades", zap.String("q", query), zap.Error(err))
		return nil, errs.Internal(errors.Wrap(err, "FindPossibleTrades"))
	}
	return trades, nil
}

func scanTrade(row pgx.CollectableRow) (model.PossibleTrade, error) {
	var (
		t                model.PossibleTrade
		offeredPublished *time.Time
		wantedPublished  *time.Time
	)
	err := row.Scan(
		&t.OfferedBookID,
		&t.OfferedBook.ExternalID,
		&t.OfferedBook.Title,
		&t.OfferedBook.Authors,
		&t.OfferedBook.Publisher,
		&offeredPublished,
		&t.OfferedBook.Description,
		&t.OfferedBook.ImageURL,
		&t.OfferedBook.PageCount,
		&t.WantedBookID,
		&t.WantedBook.ExternalID,
		&t.WantedBook.Title,
		&t.WantedBook.Authors,
		&t.WantedBook.Publisher,
		&wantedPublished,
		&t.WantedBook.Description,
		&t.WantedBook.ImageURL,
		&t.WantedBook.PageCount,
		&t.TradePartner.ID,
		&t.TradePartner.Name,
		&t.TradePartner.Email,
		&t.TradePartner.CreatedAt,
		&t.TradePartner.UpdatedAt,
	)
	t.OfferedBook.PublishedDate = formatDate(offeredPublished)
	t.WantedBook.PublishedDate = formatDate(wantedPublished)
	return t, err
}
