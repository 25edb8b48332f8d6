package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/company"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

const minCompanyImages = 3

type CompanyUsecase interface {
	RegisterCompany(ctx context.Context, actor policy.Actor, in RegisterCompanyInput) (company.Company, error)
	UpdateCompany(ctx context.Context, actor policy.Actor, in UpdateCompanyInput) (company.Company, error)
	MyCompany(ctx context.Context, actor policy.Actor) (company.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]company.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (company.Company, error)
	SetCompanyStatus(ctx context.Context, id uuid.UUID, status string) error
}

type RegisterCompanyInput struct {
	Name                    string
	TaxCode                 string
	Description             string
	Address                 string
	VerificationDocumentURL string
	ImageURLs               []string
}

type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Address     *string
}

type Companies struct {
	companies repository.CompanyRepository
	gate      *policy.Gate
	now       func() time.Time
}

func NewCompanyUsecase(companies repository.CompanyRepository, gate *policy.Gate) *Companies {
	return &Companies{companies: companies, gate: gate, now: time.Now}
}

// RegisterCompany creates the actor's company in pending status. An employer
// owns at most one company.
func (u *Companies) RegisterCompany(ctx context.Context, actor policy.Actor, in RegisterCompanyInput) (company.Company, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceCompany, nil); err != nil {
		if errors.Is(err, ErrForbidden) && policy.IsEmployer(actor) && actor.Company != nil {
			return company.Company{}, ErrConflict
		}
		return company.Company{}, err
	}

	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.MaxLen("name", in.Name, 255, v)
	validation.Required("tax_code", in.TaxCode, v)
	validation.MaxLen("tax_code", in.TaxCode, 50, v)
	validation.Required("address", in.Address, v)
	validation.MaxLen("address", in.Address, 500, v)
	urls := make([]string, 0, len(in.ImageURLs))
	for _, raw := range in.ImageURLs {
		if s := strings.TrimSpace(raw); s != "" {
			urls = append(urls, s)
		}
	}
	if len(urls) < minCompanyImages {
		v.Add("image_urls", "min_3_images")
	}
	if err := v.Err(); err != nil {
		return company.Company{}, err
	}

	now := u.now().UTC()
	c := company.Company{
		ID:                      uuid.New(),
		UserID:                  actor.ID(),
		Name:                    strings.TrimSpace(in.Name),
		TaxCode:                 strings.TrimSpace(in.TaxCode),
		Description:             strings.TrimSpace(in.Description),
		Address:                 strings.TrimSpace(in.Address),
		Status:                  company.StatusPending,
		VerificationDocumentURL: strings.TrimSpace(in.VerificationDocumentURL),
		Active:                  true,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	for _, url := range urls {
		c.Images = append(c.Images, company.Image{ID: uuid.New(), CompanyID: c.ID, URL: url})
	}

	if err := u.companies.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return company.Company{}, ErrConflict
		}
		return company.Company{}, internal(err)
	}
	return c, nil
}

func (u *Companies) UpdateCompany(ctx context.Context, actor policy.Actor, in UpdateCompanyInput) (company.Company, error) {
	if actor.Company == nil {
		if policy.IsEmployer(actor) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, ErrForbidden
	}
	c, err := u.companies.GetByID(ctx, actor.Company.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, internal(err)
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionUpdate, policy.ResourceCompany, &c); err != nil {
		return company.Company{}, err
	}

	v := validation.Violations{}
	if in.Name != nil {
		validation.Required("name", *in.Name, v)
		validation.MaxLen("name", *in.Name, 255, v)
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		validation.Required("address", *in.Address, v)
		validation.MaxLen("address", *in.Address, 500, v)
		c.Address = strings.TrimSpace(*in.Address)
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if err := v.Err(); err != nil {
		return company.Company{}, err
	}

	c.UpdatedAt = u.now().UTC()
	if err := u.companies.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, internal(err)
	}
	return c, nil
}

func (u *Companies) MyCompany(ctx context.Context, actor policy.Actor) (company.Company, error) {
	if !policy.IsEmployer(actor) {
		return company.Company{}, ErrForbidden
	}
	c, err := u.companies.GetByUserID(ctx, actor.ID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, internal(err)
	}
	return c, nil
}

func (u *Companies) ListCompanies(ctx context.Context, limit, offset int) ([]company.Company, error) {
	items, err := u.companies.List(ctx, limit, offset)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *Companies) GetCompany(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, internal(err)
	}
	return c, nil
}

// SetCompanyStatus is the moderation step. It is reachable only from the
// operator CLI.
func (u *Companies) SetCompanyStatus(ctx context.Context, id uuid.UUID, status string) error {
	s := company.Status(strings.ToLower(strings.TrimSpace(status)))
	if !s.Valid() {
		return validation.Field("status", "invalid_choice")
	}
	if err := u.companies.UpdateStatus(ctx, id, s); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return internal(err)
	}
	return nil
}
