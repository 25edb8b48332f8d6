package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = validation.ErrInvalid
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInternal     = errors.New("internal error")
)

// UpdateMeInput leaves nil fields unchanged. Role is not part of it.
type UpdateMeInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	Bio       *string
	AvatarURL *string
	Email     *string
	Password  *string
}

type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	v := validation.Violations{}
	text := func(field string, src *string, dst *string, maxLen int, required bool) {
		if src == nil {
			return
		}
		val := strings.TrimSpace(*src)
		if required {
			validation.Required(field, val, v)
		}
		validation.MaxLen(field, val, maxLen, v)
		*dst = val
	}
	text("first_name", in.FirstName, &usr.FirstName, 100, true)
	text("last_name", in.LastName, &usr.LastName, 100, true)
	text("phone", in.Phone, &usr.Phone, 20, false)
	text("address", in.Address, &usr.Address, 500, false)
	text("bio", in.Bio, &usr.Bio, 2000, false)
	text("avatar_url", in.AvatarURL, &usr.AvatarURL, 500, false)

	emailChanged := false
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		validation.Email("email", email, v)
		emailChanged = email != usr.Email
		usr.Email = email
	}

	var newPassword string
	if in.Password != nil {
		newPassword = strings.TrimSpace(*in.Password)
		if len(newPassword) < 8 {
			v.Add("password", "min_8_chars")
		}
	}
	if err := v.Err(); err != nil {
		return user.User{}, err
	}

	if emailChanged {
		taken, err := s.users.ExistsByEmail(ctx, usr.Email)
		if err != nil {
			return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if taken {
			return user.User{}, ErrEmailTaken
		}
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		usr.PasswordHash = string(hash)
	}

	usr.UpdatedAt = s.now().UTC()
	if err := s.users.UpdateUser(ctx, usr); err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicate):
			return user.User{}, ErrEmailTaken
		case errors.Is(err, user.ErrNotFound):
			return user.User{}, ErrNotFound
		default:
			return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return sanitizeUser(usr), nil
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !usr.IsActive {
		return user.User{}, ErrNotFound
	}
	return usr, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
