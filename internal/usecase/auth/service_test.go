package auth

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/validation"

	"github.com/google/uuid"
)

type fakeUsers struct {
	byID map[uuid.UUID]user.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]user.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	return nil
}

func validRegister() RegisterInput {
	return RegisterInput{
		Username:  "jane_doe",
		Email:     "Jane@Example.com",
		Password:  "supersecret",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "candidate",
	}
}

func TestRegister_AndLogin(t *testing.T) {
	svc := NewService(newFakeUsers())
	ctx := context.Background()

	u, err := svc.Register(ctx, validRegister())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "jane@example.com" || u.PasswordHash != "" || u.Role != user.RoleCandidate || !u.IsActive {
		t.Fatalf("unexpected user %+v", u)
	}

	got, err := svc.Login(ctx, LoginInput{Email: "JANE@example.com", Password: "supersecret"})
	if err != nil || got.ID != u.ID {
		t.Fatalf("login: %+v err=%v", got, err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "jane@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	in := validRegister()
	in.Role = "admin"
	_, err := NewService(newFakeUsers()).Register(context.Background(), in)

	var ve *validation.Error
	if !errors.As(err, &ve) || ve.Fields["role"] != "invalid_choice" {
		t.Fatalf("expected role violation, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput match")
	}
}

func TestRegister_Duplicates(t *testing.T) {
	svc := NewService(newFakeUsers())
	ctx := context.Background()
	if _, err := svc.Register(ctx, validRegister()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(ctx, validRegister()); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	in := validRegister()
	in.Email = "other@example.com"
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	in := validRegister()
	in.Password = "short"
	_, err := NewService(newFakeUsers()).Register(context.Background(), in)
	var ve *validation.Error
	if !errors.As(err, &ve) || ve.Fields["password"] != "min_8_chars" {
		t.Fatalf("expected password violation, got %v", err)
	}
}
