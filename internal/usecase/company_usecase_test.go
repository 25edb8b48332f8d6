package usecase

import (
	"errors"
	"testing"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/user"
	"jobboard/internal/policy"

	"github.com/google/uuid"
)

func (f *fixture) companies() *Companies {
	return NewCompanyUsecase(memCompanies{f.store}, f.gate)
}

func registerInput() RegisterCompanyInput {
	return RegisterCompanyInput{
		Name:      "Acme",
		TaxCode:   "TX-" + uuid.NewString()[:6],
		Address:   "1 Main street",
		ImageURLs: []string{"https://img/1", "https://img/2", "https://img/3"},
	}
}

func TestRegisterCompany(t *testing.T) {
	f := newFixture(t)
	employer := policy.Actor{User: f.addUser(user.RoleEmployer)}
	uc := f.companies()

	c, err := uc.RegisterCompany(f.ctx, employer, registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Status != company.StatusPending || len(c.Images) != 3 || c.UserID != employer.ID() {
		t.Fatalf("unexpected company %+v", c)
	}

	employer.Company = &c
	if _, err := uc.RegisterCompany(f.ctx, employer, registerInput()); !errors.Is(err, ErrConflict) {
		t.Fatalf("second company: expected ErrConflict, got %v", err)
	}
	if _, err := uc.RegisterCompany(f.ctx, f.addCandidate(), registerInput()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("candidate: expected ErrForbidden, got %v", err)
	}
}

func TestRegisterCompany_NeedsThreeImages(t *testing.T) {
	f := newFixture(t)
	employer := policy.Actor{User: f.addUser(user.RoleEmployer)}
	in := registerInput()
	in.ImageURLs = []string{"https://img/1", " ", "https://img/2"}

	_, err := f.companies().RegisterCompany(f.ctx, employer, in)
	if ve := asValidation(t, err); ve.Fields["image_urls"] != "min_3_images" {
		t.Fatalf("expected image violation, got %v", ve.Fields)
	}
}

func TestUpdateCompany_AndModeration(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusPending)
	uc := f.companies()

	got, err := uc.UpdateCompany(f.ctx, employer, UpdateCompanyInput{Name: strPtr("Renamed")})
	if err != nil || got.Name != "Renamed" {
		t.Fatalf("update: %+v err=%v", got, err)
	}
	if _, err := uc.UpdateCompany(f.ctx, f.addCandidate(), UpdateCompanyInput{Name: strPtr("x")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("candidate update: expected ErrForbidden, got %v", err)
	}

	if err := uc.SetCompanyStatus(f.ctx, employer.CompanyID(), "approved"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if f.store.companies[employer.CompanyID()].Status != company.StatusApproved {
		t.Fatalf("status not stored")
	}
	asValidation(t, uc.SetCompanyStatus(f.ctx, employer.CompanyID(), "banned"))
	if err := uc.SetCompanyStatus(f.ctx, uuid.New(), "approved"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown company: expected ErrNotFound, got %v", err)
	}
}
