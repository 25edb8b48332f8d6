package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/follow"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

// FollowedCompany is a follow row of a candidate with the company it points at.
type FollowedCompany struct {
	Follow  follow.Follow
	Company company.Company
}

type FollowRepository interface {
	Create(ctx context.Context, f follow.Follow) error
	GetByID(ctx context.Context, id uuid.UUID) (follow.Follow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, candidateID, companyID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, companyID uuid.UUID) ([]user.User, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]FollowedCompany, error)
}

type PostgresFollowRepository struct {
	db database.DB
}

func NewPostgresFollowRepository(db database.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) Create(ctx context.Context, f follow.Follow) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO follows (id, candidate_id, company_id, active, created_at) VALUES ($1, $2, $3, true, $4)`,
		f.ID, f.CandidateID, f.CompanyID, f.CreatedAt,
	)
	return translate(err)
}

func (r *PostgresFollowRepository) GetByID(ctx context.Context, id uuid.UUID) (follow.Follow, error) {
	var f follow.Follow
	row := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, company_id, active, created_at FROM follows WHERE id = $1`,
		id,
	)
	if err := row.Scan(&f.ID, &f.CandidateID, &f.CompanyID, &f.Active, &f.CreatedAt); err != nil {
		return follow.Follow{}, translate(err)
	}
	return f, nil
}

func (r *PostgresFollowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM follows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresFollowRepository) Exists(ctx context.Context, candidateID, companyID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE candidate_id = $1 AND company_id = $2 AND active = true)`,
		candidateID, companyID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListFollowers returns the users behind every active follow of companyID,
// oldest follow first.
func (r *PostgresFollowRepository) ListFollowers(ctx context.Context, companyID uuid.UUID) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.role, u.avatar_url, u.is_active, u.created_at
		 FROM follows f
		 JOIN users u ON u.id = f.candidate_id
		 WHERE f.company_id = $1 AND f.active = true
		 ORDER BY f.created_at ASC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &role, &u.AvatarURL, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = user.Role(role)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresFollowRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]FollowedCompany, error) {
	rows, err := r.db.Query(ctx,
		`SELECT f.id, f.candidate_id, f.company_id, f.active, f.created_at,
		        c.id, c.user_id, c.name, c.tax_code, c.description, c.address, c.status, c.verification_document_url, c.active, c.created_at, c.updated_at
		 FROM follows f
		 JOIN companies c ON c.id = f.company_id
		 WHERE f.candidate_id = $1 AND f.active = true
		 ORDER BY f.created_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FollowedCompany, 0)
	for rows.Next() {
		var fc FollowedCompany
		var status string
		f, c := &fc.Follow, &fc.Company
		if err := rows.Scan(&f.ID, &f.CandidateID, &f.CompanyID, &f.Active, &f.CreatedAt,
			&c.ID, &c.UserID, &c.Name, &c.TaxCode, &c.Description, &c.Address, &status,
			&c.VerificationDocumentURL, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Status = company.Status(status)
		out = append(out, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
