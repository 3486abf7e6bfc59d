package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleFounder  = "founder"
	RoleInvestor = "investor"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidRole(role string) bool {
	return role == RoleFounder || role == RoleInvestor
}
