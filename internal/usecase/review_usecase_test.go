package usecase

import (
	"errors"
	"testing"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/company"
	"jobboard/internal/policy"

	"github.com/google/uuid"
)

func (f *fixture) reviews() *Reviews {
	return NewReviewUsecase(memReviews{f.store}, memCompanies{f.store}, f.gate)
}

// acceptedCandidate returns a candidate holding an accepted application at
// the employer's company.
func (f *fixture) acceptedCandidate(t *testing.T, employer policy.Actor) policy.Actor {
	t.Helper()
	cand := f.addCandidate()
	j := f.addJob(employer)
	uc := f.applications()
	a, err := uc.Apply(f.ctx, cand, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := uc.UpdateApplication(f.ctx, employer, a.ID, UpdateApplicationInput{Status: strPtr(string(application.StatusAccepted))}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	return cand
}

func TestCreateReview_OnlyAcceptedCandidates(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	accepted := f.acceptedCandidate(t, employer)
	outsider := f.addCandidate()
	uc := f.reviews()
	in := CreateReviewInput{CompanyID: employer.CompanyID(), Content: "Great place", Rating: intPtr(5)}

	rv, err := uc.CreateReview(f.ctx, accepted, in)
	if err != nil {
		t.Fatalf("accepted candidate: %v", err)
	}
	if rv.CandidateID == nil || *rv.CandidateID != accepted.ID() || rv.Rating == nil || *rv.Rating != 5 {
		t.Fatalf("unexpected review %+v", rv)
	}

	_, err = uc.CreateReview(f.ctx, outsider, in)
	if ve := asValidation(t, err); ve.Fields["company_id"] != "not_eligible" {
		t.Fatalf("expected not_eligible, got %v", ve.Fields)
	}
	if len(f.store.reviews) != 1 {
		t.Fatalf("expected one stored review, got %d", len(f.store.reviews))
	}
}

func TestCreateReview_RatingRange(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	accepted := f.acceptedCandidate(t, employer)

	for _, r := range []*int{nil, intPtr(0), intPtr(6)} {
		_, err := f.reviews().CreateReview(f.ctx, accepted, CreateReviewInput{CompanyID: employer.CompanyID(), Content: "ok", Rating: r})
		if ve := asValidation(t, err); ve.Fields["rating"] == "" {
			t.Fatalf("expected rating violation, got %v", ve.Fields)
		}
	}
}

func TestReply_Rules(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	accepted := f.acceptedCandidate(t, employer)
	stranger := f.addCandidate()
	uc := f.reviews()

	top, err := uc.CreateReview(f.ctx, accepted, CreateReviewInput{CompanyID: employer.CompanyID(), Content: "Nice", Rating: intPtr(4)})
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	_, err = uc.Reply(f.ctx, employer, top.ID, ReplyInput{Content: "Thanks", Rating: intPtr(5)})
	if ve := asValidation(t, err); ve.Fields["rating"] != "must_be_empty_for_reply" {
		t.Fatalf("expected rating rejection, got %v", ve.Fields)
	}

	if _, err := uc.Reply(f.ctx, employer, uuid.New(), ReplyInput{Content: "?"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing parent: expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Reply(f.ctx, stranger, top.ID, ReplyInput{Content: "me too"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger: expected ErrForbidden, got %v", err)
	}

	ownerReply, err := uc.Reply(f.ctx, employer, top.ID, ReplyInput{Content: "Thanks"})
	if err != nil {
		t.Fatalf("owner reply: %v", err)
	}
	if ownerReply.Rating != nil || ownerReply.CandidateID != nil || *ownerReply.ParentID != top.ID {
		t.Fatalf("unexpected owner reply %+v", ownerReply)
	}

	authorReply, err := uc.CreateReview(f.ctx, accepted, CreateReviewInput{ParentID: &top.ID, Content: "You're welcome"})
	if err != nil {
		t.Fatalf("author reply via CreateReview: %v", err)
	}
	if authorReply.CandidateID == nil || *authorReply.CandidateID != accepted.ID() {
		t.Fatalf("author reply should carry the candidate id")
	}

	_, err = uc.Reply(f.ctx, employer, ownerReply.ID, ReplyInput{Content: "nested"})
	if ve := asValidation(t, err); ve.Fields["parent_id"] != "reply_depth_exceeded" {
		t.Fatalf("expected depth violation, got %v", ve.Fields)
	}
}

func TestListReviews_NestsReplies(t *testing.T) {
	f := newFixture(t)
	employer := f.addEmployer(company.StatusApproved)
	accepted := f.acceptedCandidate(t, employer)
	uc := f.reviews()

	top, err := uc.CreateReview(f.ctx, accepted, CreateReviewInput{CompanyID: employer.CompanyID(), Content: "Nice", Rating: intPtr(4)})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := uc.Reply(f.ctx, employer, top.ID, ReplyInput{Content: "first"}); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if _, err := uc.Reply(f.ctx, accepted, top.ID, ReplyInput{Content: "second"}); err != nil {
		t.Fatalf("reply: %v", err)
	}

	companyID := employer.CompanyID()
	list, err := uc.ListReviews(f.ctx, &companyID, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one top-level review, got %d", len(list))
	}
	if len(list[0].Replies) != 2 || list[0].Replies[0].Content != "first" {
		t.Fatalf("replies not nested oldest first: %+v", list[0].Replies)
	}
}
