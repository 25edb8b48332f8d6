package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type IndustryRepository interface {
	List(ctx context.Context) ([]job.Industry, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Industry, error)
}

type PostgresIndustryRepository struct {
	db database.DB
}

func NewPostgresIndustryRepository(db database.DB) *PostgresIndustryRepository {
	return &PostgresIndustryRepository{db: db}
}

func (r *PostgresIndustryRepository) List(ctx context.Context) ([]job.Industry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, active FROM industries WHERE active = true ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Industry, 0)
	for rows.Next() {
		var in job.Industry
		if err := rows.Scan(&in.ID, &in.Name, &in.Active); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresIndustryRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Industry, error) {
	var in job.Industry
	row := r.db.QueryRow(ctx, `SELECT id, name, active FROM industries WHERE id = $1 AND active = true`, id)
	if err := row.Scan(&in.ID, &in.Name, &in.Active); err != nil {
		return job.Industry{}, translate(err)
	}
	return in, nil
}
