package policy

import (
	"context"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/chat"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/follow"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/review"

	"github.com/google/uuid"
)

// AcceptanceChecker answers whether a candidate holds an accepted application
// on any job of a company.
type AcceptanceChecker interface {
	HasAcceptedApplication(ctx context.Context, candidateID, companyID uuid.UUID) (bool, error)
}

func HasBeenAccepted(ctx context.Context, checker AcceptanceChecker, candidateID, companyID uuid.UUID) (bool, error) {
	if checker == nil || candidateID == uuid.Nil || companyID == uuid.Nil {
		return false, nil
	}
	return checker.HasAcceptedApplication(ctx, candidateID, companyID)
}

// ReplyTarget is the review being answered plus the owner of its company.
type ReplyTarget struct {
	Parent         review.Review
	CompanyOwnerID uuid.UUID
}

// NewDefaultGate registers the rules of every resource exposed by the API.
func NewDefaultGate(acceptance AcceptanceChecker) *Gate {
	g := NewGate()
	g.Register(ResourceCompany, PolicyFunc(companyPolicy))
	g.Register(ResourceJob, PolicyFunc(jobPolicy))
	g.Register(ResourceApplication, PolicyFunc(applicationPolicy))
	g.Register(ResourceCandidateProfile, PolicyFunc(candidateProfilePolicy))
	g.Register(ResourceFollow, PolicyFunc(followPolicy))
	g.Register(ResourceReview, reviewPolicy{acceptance: acceptance})
	g.Register(ResourceChatRoom, PolicyFunc(chatRoomPolicy))
	g.Register(ResourceNotification, PolicyFunc(notificationPolicy))
	return g
}

func companyPolicy(_ context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionCreate:
		return IsEmployer(a) && a.Company == nil, nil
	case ActionUpdate, ActionListFollowers:
		c, ok := target.(*company.Company)
		return ok && c != nil && OwnsCompany(a, c.ID), nil
	default:
		return false, nil
	}
}

func jobPolicy(_ context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionCreate:
		return IsEmployer(a) && a.Company != nil && a.Company.Approved(), nil
	case ActionListApplications:
		j, ok := target.(*job.Job)
		return ok && j != nil && OwnsCompany(a, j.CompanyID), nil
	default:
		return false, nil
	}
}

func applicationPolicy(_ context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionCreate:
		return IsCandidate(a) && a.Candidate != nil, nil
	case ActionList:
		return IsCandidate(a) || IsEmployer(a), nil
	}

	app, ok := target.(*application.Application)
	if !ok || app == nil {
		return false, nil
	}
	ownsApplication := IsCandidate(a) && app.CandidateID == a.ID()
	ownsJob := OwnsCompany(a, app.JobCompanyID)

	switch action {
	case ActionView:
		return ownsApplication || ownsJob, nil
	case ActionUpdateStatus:
		return ownsJob, nil
	case ActionUpdate, ActionDelete:
		return ownsApplication, nil
	default:
		return false, nil
	}
}

func candidateProfilePolicy(_ context.Context, a Actor, action Action, _ any) (bool, error) {
	switch action {
	case ActionView, ActionCreate, ActionUpdate:
		return IsCandidate(a), nil
	default:
		return false, nil
	}
}

func followPolicy(_ context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionCreate, ActionList, ActionView:
		return IsCandidate(a), nil
	case ActionDelete:
		f, ok := target.(*follow.Follow)
		return ok && f != nil && f.Active && IsCandidate(a) && f.CandidateID == a.ID(), nil
	default:
		return false, nil
	}
}

type reviewPolicy struct {
	acceptance AcceptanceChecker
}

func (p reviewPolicy) Can(ctx context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionCreate:
		c, ok := target.(*company.Company)
		if !ok || c == nil || !IsCandidate(a) {
			return false, nil
		}
		return HasBeenAccepted(ctx, p.acceptance, a.ID(), c.ID)
	case ActionReply:
		t, ok := target.(*ReplyTarget)
		if !ok || t == nil {
			return false, nil
		}
		return t.Parent.AuthorID == a.ID() || (t.CompanyOwnerID != uuid.Nil && t.CompanyOwnerID == a.ID()), nil
	default:
		return false, nil
	}
}

func chatRoomPolicy(_ context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionCreate, ActionList:
		return IsEmployer(a) || IsCandidate(a), nil
	case ActionView, ActionPostMessage:
		r, ok := target.(*chat.Room)
		return ok && r != nil && r.HasParticipant(a.ID()), nil
	default:
		return false, nil
	}
}

func notificationPolicy(_ context.Context, a Actor, action Action, target any) (bool, error) {
	switch action {
	case ActionList:
		return true, nil
	case ActionUpdate:
		n, ok := target.(*notification.Notification)
		return ok && n != nil && n.UserID == a.ID(), nil
	default:
		return false, nil
	}
}
