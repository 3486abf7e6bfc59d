package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"venturehive/internal/domain/user"
	"venturehive/internal/pkg/jwt"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *mockUserRepo) Create(ctx context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func newAuthFixture() (*Auth, *mockUserRepo, jwt.Service) {
	repo := newMockUserRepo()
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	return NewAuthUsecase(repo, svc), repo, svc
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _, svc := newAuthFixture()

	u, pair, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Founder@Example.com",
		Password: "correct horse",
		FullName: "Ada Okafor",
		Role:     user.RoleFounder,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "founder@example.com" {
		t.Fatalf("Email = %q, want lowercased", u.Email)
	}

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.Role != user.RoleFounder {
		t.Fatalf("token role = %q, want %q", claims.Role, user.RoleFounder)
	}

	if _, _, err := uc.Login(context.Background(), "founder@example.com", "correct horse"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "founder@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("Login(wrong password) error = %v, want ErrBadCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _, _ := newAuthFixture()

	cases := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: "longenough", Role: user.RoleFounder}, ErrInvalidInput},
		{"short password", RegisterInput{Email: "a@b.com", Password: "short", Role: user.RoleFounder}, ErrInvalidInput},
		{"bad role", RegisterInput{Email: "a@b.com", Password: "longenough", Role: "admin"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	in := RegisterInput{Email: "inv@example.com", Password: "longenough", Role: user.RoleInvestor}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, pair, err := uc.Register(context.Background(), RegisterInput{
		Email:    "inv@example.com",
		Password: "longenough",
		Role:     user.RoleInvestor,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	fresh, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatalf("Refresh() returned empty pair: %+v", fresh)
	}

	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Refresh(access token) error = %v, want ErrUnauthorized", err)
	}
}
