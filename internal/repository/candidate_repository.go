package repository

import (
	"context"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	Create(ctx context.Context, p candidate.Profile) error
	Update(ctx context.Context, p candidate.Profile) error
}

type PostgresCandidateProfileRepository struct {
	db database.DB
}

func NewPostgresCandidateProfileRepository(db database.DB) *PostgresCandidateProfileRepository {
	return &PostgresCandidateProfileRepository{db: db}
}

func (r *PostgresCandidateProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	var p candidate.Profile
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, cv_url, skills, experience, education, verification_document_url, active, created_at, updated_at
		 FROM candidate_profiles
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.CVURL, &p.Skills, &p.Experience, &p.Education,
		&p.VerificationDocumentURL, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return candidate.Profile{}, translate(err)
	}
	return p, nil
}

func (r *PostgresCandidateProfileRepository) Create(ctx context.Context, p candidate.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_profiles (id, user_id, cv_url, skills, experience, education, verification_document_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UserID, p.CVURL, p.Skills, p.Experience, p.Education, p.VerificationDocumentURL,
	)
	return translate(err)
}

func (r *PostgresCandidateProfileRepository) Update(ctx context.Context, p candidate.Profile) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles
		 SET cv_url = $1, skills = $2, experience = $3, education = $4, verification_document_url = $5, updated_at = $6
		 WHERE user_id = $7`,
		p.CVURL, p.Skills, p.Experience, p.Education, p.VerificationDocumentURL, time.Now().UTC(), p.UserID,
	)
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
