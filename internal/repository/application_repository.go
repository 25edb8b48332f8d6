package repository

import (
	"context"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
	UpdateContent(ctx context.Context, id uuid.UUID, coverLetter, cvCustomURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasAcceptedApplication(ctx context.Context, candidateID, companyID uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationSelect = `SELECT a.id, a.job_id, a.candidate_id, a.status, a.cover_letter, a.cv_custom_url, a.active, a.applied_at, a.updated_at, j.company_id
FROM applications a
JOIN jobs j ON j.id = a.job_id`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, status, cover_letter, cv_custom_url, applied_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.CandidateID, string(a.Status), a.CoverLetter, a.CVCustomURL, a.AppliedAt, a.UpdatedAt,
	)
	return translate(err)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE a.candidate_id = $1 ORDER BY a.applied_at DESC`, candidateID)
}

func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE j.company_id = $1 ORDER BY a.applied_at DESC`, companyID)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC`, jobID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) UpdateContent(ctx context.Context, id uuid.UUID, coverLetter, cvCustomURL string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET cover_letter = $1, cv_custom_url = $2, updated_at = $3 WHERE id = $4`,
		coverLetter, cvCustomURL, time.Now().UTC(), id,
	)
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) HasAcceptedApplication(ctx context.Context, candidateID, companyID uuid.UUID) (bool, error) {
	var ok bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM applications a
			JOIN jobs j ON j.id = a.job_id
			WHERE a.candidate_id = $1 AND j.company_id = $2 AND a.status = 'accepted'
		)`,
		candidateID, companyID,
	)
	if err := row.Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, q string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	if err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &status, &a.CoverLetter, &a.CVCustomURL,
		&a.Active, &a.AppliedAt, &a.UpdatedAt, &a.JobCompanyID); err != nil {
		return application.Application{}, translate(err)
	}
	a.Status = application.Status(status)
	return a, nil
}
