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

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

type UserRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, log *zap.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.Named("user_repo"),
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.CreateUser, passwordHash string) (model.User, error) {
	now := time.Now().UTC()
	query, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(uuid.New(), user.Name, user.Email, passwordHash, now, now).
		Suffix("returning id, name, email, password_hash, created_at, updated_at").
		ToSql()
	if err != nil {
		return model.User{}, errs.Internal(err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err == nil {
		var created model.User
		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		if err == nil {
			return created, nil
		}
	}
	if _, ok := isUniqueViolation(err); ok {
		return model.User{}, errs.Validation("email already in use")
	}
	return model.User{}, r.storageErr("Create", query, err)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "FindByEmail", sq.Eq{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, "FindByID", sq.Eq{"id": id})
}

func (r *UserRepository) findOne(ctx context.Context, op string, where sq.Eq) (*model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
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
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.storageErr(op, query, err)
	}
	return &user, nil
}

func (r *UserRepository) storageErr(op, query string, err error) error {
	r.log.Error(op, zap.String("q", query), zap.Error(err))
	return errs.Internal(errors.Wrap(err, op))
}
