package repository

import (
	"context"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Create(ctx context.Context, c company.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (company.Company, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error)
	List(ctx context.Context, limit, offset int) ([]company.Company, error)
	Update(ctx context.Context, c company.Company) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status company.Status) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, user_id, name, tax_code, description, address, status, verification_document_url, active, created_at, updated_at`

// Create inserts the company and its images in one transaction.
func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO companies (id, user_id, name, tax_code, description, address, status, verification_document_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID, c.UserID, c.Name, c.TaxCode, c.Description, c.Address, string(c.Status), c.VerificationDocumentURL,
		)
		if err != nil {
			return translate(err)
		}
		for _, img := range c.Images {
			if _, err := tx.Exec(ctx,
				`INSERT INTO company_images (id, company_id, url) VALUES ($1, $2, $3)`,
				img.ID, c.ID, img.URL,
			); err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1 AND active = true`, id)
	c, err := scanCompany(row)
	if err != nil {
		return company.Company{}, err
	}
	return r.withImages(ctx, c)
}

func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE user_id = $1`, userID)
	c, err := scanCompany(row)
	if err != nil {
		return company.Company{}, err
	}
	return r.withImages(ctx, c)
}

func (r *PostgresCompanyRepository) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+`
		 FROM companies
		 WHERE active = true
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c company.Company) error {
	n, err := r.db.Exec(ctx,
		`UPDATE companies
		 SET name = $1, description = $2, address = $3, verification_document_url = $4, updated_at = $5
		 WHERE id = $6`,
		c.Name, c.Description, c.Address, c.VerificationDocumentURL, time.Now().UTC(), c.ID,
	)
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status company.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE companies SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) withImages(ctx context.Context, c company.Company) (company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, url FROM company_images WHERE company_id = $1 ORDER BY created_at ASC`,
		c.ID,
	)
	if err != nil {
		return company.Company{}, err
	}
	defer rows.Close()

	c.Images = make([]company.Image, 0)
	for rows.Next() {
		var img company.Image
		if err := rows.Scan(&img.ID, &img.CompanyID, &img.URL); err != nil {
			return company.Company{}, err
		}
		c.Images = append(c.Images, img)
	}
	if err := rows.Err(); err != nil {
		return company.Company{}, err
	}
	return c, nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	var status string
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.TaxCode, &c.Description, &c.Address,
		&status, &c.VerificationDocumentURL, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return company.Company{}, translate(err)
	}
	c.Status = company.Status(status)
	return c, nil
}
