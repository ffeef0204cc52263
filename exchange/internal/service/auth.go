package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minPasswordLen = 6
	tokenType      = "Bearer"
)

type AuthService struct {
	log    *zap.Logger
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) *AuthService {
	return &AuthService{
		log:    log.Named("auth"),
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.CreateUser) (model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return model.User{}, errs.Validation("name, email and password are required")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLen {
		return model.User{}, errs.Validation("password must be at least %d characters", minPasswordLen)
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return model.User{}, err
	}
	if existing != nil {
		return model.User{}, errs.Validation("email already in use")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("hash password", zap.Error(err))
		return model.User{}, errs.Internalf(err, "failed to hash password")
	}

	user, err := s.users.Create(ctx, req, hash)
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user registered", zap.Stringer("user_id", user.ID))
	return user, nil
}

// Login answers "invalid credentials" for both an unknown email and a wrong
// password.
func (s *AuthService) Login(ctx context.Context, req model.Login) (model.Token, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return model.Token{}, err
	}
	if user == nil {
		return model.Token{}, errs.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		s.log.Error("verify password", zap.Stringer("user_id", user.ID), zap.Error(err))
		return model.Token{}, errs.Internalf(err, "failed to verify password")
	}
	if !ok {
		return model.Token{}, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("issue token", zap.Stringer("user_id", user.ID), zap.Error(err))
		return model.Token{}, errs.Internalf(err, "failed to issue token")
	}
	return model.Token{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt,
		User:        *user,
	}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if user == nil {
		return model.User{}, errs.NotFound("user with id %s not found", userID)
	}
	return *user, nil
}
