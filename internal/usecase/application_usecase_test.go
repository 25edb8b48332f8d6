package usecase

import (
	"errors"
	"testing"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/company"
	"jobboard/internal/policy"

	"github.com/google/uuid"
)

func TestApply_DuplicateIsConflict(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	cand := f.addCandidate()
	j := f.addJob(employer)
	uc := f.applications()

	a, err := uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID, CoverLetter: "hello"})
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if a.Status != application.StatusApplied {
		t.Fatalf("expected status applied, got %q", a.Status)
	}

	_, err = uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if n := len(f.store.applications); n != 1 {
		t.Fatalf("expected exactly one application, got %d", n)
	}
}

func TestApply_RequiresCandidateWithProfile(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	j := f.addJob(employer)
	uc := f.applications()

	if _, err := uc.Apply(f.ctx, employer, ApplyInput{JobID: j.ID}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("employer apply: expected ErrForbidden, got %v", err)
	}

	noProfile := f.addCandidate()
	noProfile.Candidate = nil
	if _, err := uc.Apply(f.ctx, noProfile, ApplyInput{JobID: j.ID}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("candidate without profile: expected ErrForbidden, got %v", err)
	}
}

func TestApply_InactiveJobIsNotFound(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	cand := f.addCandidate()
	j := f.addJob(employer)
	j.Active = false
	f.store.jobs[j.ID] = j

	_, err := f.applications().Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplication_Visibility(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	otherEmployer := f.addEmployer(company.StatusApproved)
	cand := f.addCandidate()
	stranger := f.addCandidate()
	j := f.addJob(employer)
	uc := f.applications()

	a, err := uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	for name, actor := range map[string]policy.Actor{"candidate": cand, "employer": employer} {
		if _, err := uc.GetApplication(f.ctx, actor, a.ID); err != nil {
			t.Fatalf("%s should see the application: %v", name, err)
		}
	}
	for name, actor := range map[string]policy.Actor{"stranger": stranger, "other employer": otherEmployer} {
		if _, err := uc.GetApplication(f.ctx, actor, a.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", name, err)
		}
	}

	list, err := uc.ListApplications(f.ctx, employer)
	if err != nil || len(list) != 1 {
		t.Fatalf("employer list: got %d items, err %v", len(list), err)
	}
	list, err = uc.ListApplications(f.ctx, otherEmployer)
	if err != nil || len(list) != 0 {
		t.Fatalf("other employer list: got %d items, err %v", len(list), err)
	}
}

func TestUpdateApplication_StatusRules(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	otherEmployer := f.addEmployer(company.StatusApproved)
	cand := f.addCandidate()
	j := f.addJob(employer)
	uc := f.applications()

	a, err := uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := uc.UpdateApplication(f.ctx, cand, a.ID, UpdateApplicationInput{Status: strPtr("accepted")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("candidate status change: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.UpdateApplication(f.ctx, otherEmployer, a.ID, UpdateApplicationInput{Status: strPtr("viewed")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner status change: expected ErrForbidden, got %v", err)
	}

	_, err = uc.UpdateApplication(f.ctx, employer, a.ID, UpdateApplicationInput{Status: strPtr("hired")})
	ve := asValidation(t, err)
	if ve.Fields["status"] != "invalid_choice" {
		t.Fatalf("expected invalid_choice on status, got %v", ve.Fields)
	}

	// Transitions are unordered: accepted may go back to viewed.
	for _, s := range []string{"accepted", "viewed", "rejected"} {
		got, err := uc.UpdateApplication(f.ctx, employer, a.ID, UpdateApplicationInput{Status: strPtr(s)})
		if err != nil {
			t.Fatalf("set %s: %v", s, err)
		}
		if string(got.Status) != s {
			t.Fatalf("expected %s, got %s", s, got.Status)
		}
	}
}

func TestUpdateApplication_CandidateEditsContent(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	cand := f.addCandidate()
	j := f.addJob(employer)
	uc := f.applications()

	a, err := uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := uc.UpdateApplication(f.ctx, cand, a.ID, UpdateApplicationInput{CoverLetter: strPtr("  updated  ")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CoverLetter != "updated" || f.store.applications[a.ID].CoverLetter != "updated" {
		t.Fatalf("cover letter not stored: %+v", got)
	}

	if _, err := uc.UpdateApplication(f.ctx, employer, a.ID, UpdateApplicationInput{CoverLetter: strPtr("x")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("employer content edit: expected ErrForbidden, got %v", err)
	}

	_, err = uc.UpdateApplication(f.ctx, cand, a.ID, UpdateApplicationInput{})
	asValidation(t, err)
}

func TestWithdrawApplication(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	cand := f.addCandidate()
	j := f.addJob(employer)
	uc := f.applications()

	a, err := uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := uc.WithdrawApplication(f.ctx, employer, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("employer withdraw: expected ErrNotFound, got %v", err)
	}
	if err := uc.WithdrawApplication(f.ctx, cand, a.ID); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if err := uc.WithdrawApplication(f.ctx, cand, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second withdraw: expected ErrNotFound, got %v", err)
	}
	if err := uc.WithdrawApplication(f.ctx, cand, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: expected ErrNotFound, got %v", err)
	}
}
