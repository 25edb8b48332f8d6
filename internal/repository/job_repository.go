package repository

import (
	"context"
	"fmt"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// JobDetail is a job with the company and industry it references.
type JobDetail struct {
	Job      job.Job
	Company  company.Company
	Industry job.Industry
}

type JobFilter struct {
	Query      string
	IndustryID uuid.UUID
	SalaryFrom *float64
	SalaryTo   *float64
	JobType    job.Type
	Location   string
	CompanyID  uuid.UUID
	Limit      int
	Offset     int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	GetActiveDetail(ctx context.Context, id uuid.UUID) (JobDetail, error)
	List(ctx context.Context, f JobFilter) ([]JobDetail, int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobDetailSelect = `SELECT
	j.id, j.company_id, j.industry_id, j.title, j.description, j.requirements, j.welfare,
	j.job_type, j.salary_type, j.salary_from::float8, j.salary_to::float8, j.working_hours, j.location,
	j.latitude, j.longitude, j.deadline, j.is_featured, j.active, j.created_at, j.updated_at,
	c.id, c.user_id, c.name, c.tax_code, c.description, c.address, c.status, c.verification_document_url, c.active, c.created_at, c.updated_at,
	i.id, i.name, i.active
FROM jobs j
JOIN companies c ON c.id = j.company_id
JOIN industries i ON i.id = j.industry_id`

// Create locks the referenced industry and inserts the job in one
// transaction. A missing or inactive industry yields ErrReference.
func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		var industryID uuid.UUID
		row := tx.QueryRow(ctx, `SELECT id FROM industries WHERE id = $1 AND active = true FOR SHARE`, j.IndustryID)
		if err := row.Scan(&industryID); err != nil {
			if isNoRows(err) {
				return ErrReference
			}
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (
				id, company_id, industry_id, title, description, requirements, welfare,
				job_type, salary_type, salary_from, salary_to, working_hours, location,
				latitude, longitude, deadline, is_featured, active, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
			j.ID, j.CompanyID, j.IndustryID, j.Title, j.Description, j.Requirements, j.Welfare,
			string(j.JobType), string(j.SalaryType), j.SalaryFrom, j.SalaryTo, j.WorkingHours, j.Location,
			j.Latitude, j.Longitude, j.Deadline, j.IsFeatured, j.Active, j.CreatedAt, j.UpdatedAt,
		)
		return translate(err)
	})
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobDetailSelect+` WHERE j.id = $1`, id)
	d, err := scanJobDetail(row)
	if err != nil {
		return job.Job{}, err
	}
	return d.Job, nil
}

func (r *PostgresJobRepository) GetActiveDetail(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	row := r.db.QueryRow(ctx, jobDetailSelect+` WHERE j.id = $1 AND j.active = true`, id)
	return scanJobDetail(row)
}

// List returns one page of active jobs matching f, newest first, together
// with the total number of matches.
func (r *PostgresJobRepository) List(ctx context.Context, f JobFilter) ([]JobDetail, int, error) {
	limit, offset := clampPage(f.Limit, f.Offset, 20, 50)
	where, args := buildJobWhere(f)

	var total int
	countRow := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs j WHERE `+where, args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	q := fmt.Sprintf(`%s WHERE %s ORDER BY j.is_featured DESC, j.created_at DESC LIMIT $%d OFFSET $%d`,
		jobDetailSelect, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]JobDetail, 0)
	for rows.Next() {
		d, err := scanJobDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func buildJobWhere(f JobFilter) (string, []any) {
	conds := []string{"j.active = true"}
	args := make([]any, 0, 8)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		add("j.title ILIKE $%d", "%"+escapeLike(q)+"%")
	}
	if f.IndustryID != uuid.Nil {
		add("j.industry_id = $%d", f.IndustryID)
	}
	if f.SalaryFrom != nil {
		add("j.salary_from >= $%d", *f.SalaryFrom)
	}
	if f.SalaryTo != nil {
		add("j.salary_to <= $%d", *f.SalaryTo)
	}
	if f.JobType != "" {
		add("j.job_type = $%d", string(f.JobType))
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		add("j.location ILIKE $%d", "%"+escapeLike(loc)+"%")
	}
	if f.CompanyID != uuid.Nil {
		add("j.company_id = $%d", f.CompanyID)
	}
	return strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanJobDetail(row database.Row) (JobDetail, error) {
	var d JobDetail
	var jobType, salaryType, status string
	j := &d.Job
	c := &d.Company
	if err := row.Scan(
		&j.ID, &j.CompanyID, &j.IndustryID, &j.Title, &j.Description, &j.Requirements, &j.Welfare,
		&jobType, &salaryType, &j.SalaryFrom, &j.SalaryTo, &j.WorkingHours, &j.Location,
		&j.Latitude, &j.Longitude, &j.Deadline, &j.IsFeatured, &j.Active, &j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.UserID, &c.Name, &c.TaxCode, &c.Description, &c.Address, &status, &c.VerificationDocumentURL, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		&d.Industry.ID, &d.Industry.Name, &d.Industry.Active,
	); err != nil {
		return JobDetail{}, translate(err)
	}
	j.JobType = job.Type(jobType)
	j.SalaryType = job.SalaryType(salaryType)
	c.Status = company.Status(status)
	return d, nil
}
