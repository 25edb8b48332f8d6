package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv review.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (review.Review, error)
	// ListTopLevel returns active reviews without a parent, newest first. A
	// nil companyID lists across all companies.
	ListTopLevel(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]review.Review, error)
	// ListReplies returns the replies of the given parents, oldest first,
	// grouped by parent id.
	ListReplies(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]review.Review, error)
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

const reviewColumns = `id, company_id, author_id, candidate_id, parent_id, content, rating, active, created_at, updated_at`

func (r *PostgresReviewRepository) Create(ctx context.Context, rv review.Review) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reviews (id, company_id, author_id, candidate_id, parent_id, content, rating, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rv.ID, rv.CompanyID, rv.AuthorID, rv.CandidateID, rv.ParentID, rv.Content, rv.Rating, rv.CreatedAt, rv.UpdatedAt,
	)
	return translate(err)
}

func (r *PostgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (review.Review, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1 AND active = true`, id)
	return scanReview(row)
}

func (r *PostgresReviewRepository) ListTopLevel(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]review.Review, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+`
		 FROM reviews
		 WHERE parent_id IS NULL AND active = true AND ($1::uuid IS NULL OR company_id = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReviewRepository) ListReplies(ctx context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]review.Review, error) {
	out := make(map[uuid.UUID][]review.Review, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+`
		 FROM reviews
		 WHERE parent_id = ANY($1) AND active = true
		 ORDER BY created_at ASC`,
		parentIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		if rv.ParentID == nil {
			continue
		}
		out[*rv.ParentID] = append(out[*rv.ParentID], rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanReview(row database.Row) (review.Review, error) {
	var rv review.Review
	var rating *int16
	if err := row.Scan(&rv.ID, &rv.CompanyID, &rv.AuthorID, &rv.CandidateID, &rv.ParentID,
		&rv.Content, &rating, &rv.Active, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return review.Review{}, translate(err)
	}
	if rating != nil {
		v := int(*rating)
		rv.Rating = &v
	}
	return rv, nil
}
