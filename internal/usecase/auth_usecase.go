package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"venturehive/internal/domain/user"
	"venturehive/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (a *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if !user.ValidRole(in.Role) {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	if _, err := a.users.GetByEmail(ctx, in.Email); err == nil {
		return user.User{}, TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, TokenPair{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	now := time.Now().UTC()
	u := user.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.users.Create(ctx, u); err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := a.issueTokens(u)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return u, pair, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (user.User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrBadCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return user.User{}, TokenPair{}, ErrBadCredentials
	}

	pair, err := a.issueTokens(u)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return u, pair, nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := a.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}

	u, err := a.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}

	pair, err := a.issueTokens(u)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (a *Auth) issueTokens(u user.User) (TokenPair, error) {
	access, err := a.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := a.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
