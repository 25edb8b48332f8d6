package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account kinds. It is fixed at signup.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
	RoleCandidate Role = "candidate"
)

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleEmployer, RoleCandidate:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// SelfAssignable reports whether the role may be chosen at self-signup.
func (r Role) SelfAssignable() bool {
	return r == RoleEmployer || r == RoleCandidate
}

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	AvatarURL    string
	Phone        string
	Address      string
	Bio          string
	IsVerified   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
