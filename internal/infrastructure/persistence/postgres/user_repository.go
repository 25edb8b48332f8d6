package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, role, avatar_url, phone, address, bio, is_verified, is_active, created_at, updated_at`

// UserRepository serves user.Repository from statements prepared once on the
// database/sql view of the pool.
type UserRepository struct {
	db *sql.DB

	stmtCreate           *sql.Stmt
	stmtGetByID          *sql.Stmt
	stmtGetByEmail       *sql.Stmt
	stmtExistsByEmail    *sql.Stmt
	stmtExistsByUsername *sql.Stmt
	stmtUpdate           *sql.Stmt
}

func NewUserRepository(ctx context.Context, db database.DB) (*UserRepository, error) {
	if db == nil || db.SQLDB() == nil {
		return nil, fmt.Errorf("nil db")
	}
	r := &UserRepository{db: db.SQLDB()}

	prepare := func(dst **sql.Stmt, query string) error {
		s, err := r.db.PrepareContext(ctx, query)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}

	steps := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.stmtCreate, `INSERT INTO users (id, username, email, password_hash, first_name, last_name, role, avatar_url, phone, address, bio)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`},
		{&r.stmtGetByID, `SELECT ` + userColumns + ` FROM users WHERE id = $1`},
		{&r.stmtGetByEmail, `SELECT ` + userColumns + ` FROM users WHERE email = $1`},
		{&r.stmtExistsByEmail, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`},
		{&r.stmtExistsByUsername, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`},
		{&r.stmtUpdate, `UPDATE users
			SET email = $1, password_hash = $2, first_name = $3, last_name = $4, avatar_url = $5, phone = $6, address = $7, bio = $8, updated_at = $9
			WHERE id = $10`},
	}
	for _, s := range steps {
		if err := prepare(s.dst, s.query); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsByEmail)
	closeStmt(r.stmtExistsByUsername)
	closeStmt(r.stmtUpdate)

	return firstErr
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.stmtCreate.ExecContext(ctx,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, string(u.Role),
		u.AvatarURL, u.Phone, u.Address, u.Bio,
	)
	if repository.IsUniqueViolation(err) {
		return user.ErrDuplicate
	}
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsByEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.stmtExistsByUsername.QueryRowContext(ctx, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u user.User) error {
	res, err := r.stmtUpdate.ExecContext(ctx,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.AvatarURL, u.Phone, u.Address, u.Bio,
		time.Now().UTC(), u.ID,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return user.ErrDuplicate
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &role,
		&u.AvatarURL, &u.Phone, &u.Address, &u.Bio, &u.IsVerified, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
