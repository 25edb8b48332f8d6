package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/validation"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = validation.ErrInvalid
	ErrInternal               = errors.New("internal error")
)

const minPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,50}$`)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	AvatarURL string
	Phone     string
	Address   string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

// Register creates an employer or candidate account. The role is fixed from
// here on.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	v := validation.Violations{}
	if !usernamePattern.MatchString(username) {
		v.Add("username", "invalid_username")
	}
	validation.Required("email", email, v)
	validation.Email("email", email, v)
	validation.MaxLen("email", email, 255, v)
	if !isValidPassword(in.Password) {
		v.Add("password", "min_8_chars")
	}
	validation.Required("first_name", in.FirstName, v)
	validation.MaxLen("first_name", in.FirstName, 100, v)
	validation.Required("last_name", in.LastName, v)
	validation.MaxLen("last_name", in.LastName, 100, v)
	validation.MaxLen("phone", in.Phone, 20, v)
	role, err := user.ParseRole(in.Role)
	if err != nil || !role.SelfAssignable() {
		v.Add("role", "invalid_choice")
	}
	if err := v.Err(); err != nil {
		return user.User{}, err
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}
	exists, err = s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if exists {
		return user.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := s.now().UTC()
	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         role,
		AvatarURL:    strings.TrimSpace(in.AvatarURL),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			if taken, exErr := s.users.ExistsByEmail(ctx, email); exErr == nil && taken {
				return user.User{}, ErrEmailAlreadyRegistered
			}
			return user.User{}, ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return sanitizeUser(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !u.IsActive {
		return user.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLength
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
