package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/review"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, actor policy.Actor, in CreateReviewInput) (review.Review, error)
	Reply(ctx context.Context, actor policy.Actor, parentID uuid.UUID, in ReplyInput) (review.Review, error)
	ListReviews(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]review.Review, error)
}

// CreateReviewInput with ParentID set is treated as a reply.
type CreateReviewInput struct {
	CompanyID uuid.UUID
	Content   string
	Rating    *int
	ParentID  *uuid.UUID
}

type ReplyInput struct {
	Content string
	Rating  *int
}

type Reviews struct {
	reviews   repository.ReviewRepository
	companies repository.CompanyRepository
	gate      *policy.Gate
	now       func() time.Time
}

func NewReviewUsecase(reviews repository.ReviewRepository, companies repository.CompanyRepository, gate *policy.Gate) *Reviews {
	return &Reviews{reviews: reviews, companies: companies, gate: gate, now: time.Now}
}

// CreateReview writes a top-level review. Only candidates with an accepted
// application at the company are eligible; anyone else gets a validation
// error on company_id.
func (u *Reviews) CreateReview(ctx context.Context, actor policy.Actor, in CreateReviewInput) (review.Review, error) {
	if in.ParentID != nil {
		return u.Reply(ctx, actor, *in.ParentID, ReplyInput{Content: in.Content, Rating: in.Rating})
	}

	v := validation.Violations{}
	if in.CompanyID == uuid.Nil {
		v.Add("company_id", "required")
	}
	validation.Required("content", in.Content, v)
	validation.MaxLen("content", in.Content, 5000, v)
	if in.Rating == nil {
		v.Add("rating", "required")
	} else {
		validation.RangeInt("rating", *in.Rating, 1, 5, v)
	}
	if err := v.Err(); err != nil {
		return review.Review{}, err
	}

	c, err := u.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, internal(err)
	}

	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceReview, &c); err != nil {
		if errors.Is(err, ErrForbidden) {
			return review.Review{}, validation.Field("company_id", "not_eligible")
		}
		return review.Review{}, err
	}

	now := u.now().UTC()
	author := actor.ID()
	rv := review.Review{
		ID:          uuid.New(),
		CompanyID:   c.ID,
		AuthorID:    author,
		CandidateID: &author,
		Content:     strings.TrimSpace(in.Content),
		Rating:      in.Rating,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, internal(err)
	}
	return rv, nil
}

// Reply answers a top-level review. The original reviewer and the owner of
// the reviewed company may reply; replies never carry a rating and cannot be
// replied to.
func (u *Reviews) Reply(ctx context.Context, actor policy.Actor, parentID uuid.UUID, in ReplyInput) (review.Review, error) {
	v := validation.Violations{}
	if in.Rating != nil {
		v.Add("rating", "must_be_empty_for_reply")
	}
	validation.Required("content", in.Content, v)
	validation.MaxLen("content", in.Content, 5000, v)
	if err := v.Err(); err != nil {
		return review.Review{}, err
	}

	parent, err := u.reviews.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, internal(err)
	}
	if parent.IsReply() {
		return review.Review{}, validation.Field("parent_id", "reply_depth_exceeded")
	}

	c, err := u.companies.GetByID(ctx, parent.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, internal(err)
	}

	target := &policy.ReplyTarget{Parent: parent, CompanyOwnerID: c.UserID}
	if err := authorize(ctx, u.gate, actor, policy.ActionReply, policy.ResourceReview, target); err != nil {
		return review.Review{}, err
	}

	now := u.now().UTC()
	rv := review.Review{
		ID:        uuid.New(),
		CompanyID: parent.CompanyID,
		AuthorID:  actor.ID(),
		ParentID:  &parent.ID,
		Content:   strings.TrimSpace(in.Content),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if parent.AuthorID == actor.ID() {
		rv.CandidateID = parent.CandidateID
	}
	if err := u.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return review.Review{}, ErrNotFound
		}
		return review.Review{}, internal(err)
	}
	return rv, nil
}

// ListReviews returns top-level reviews newest first, each with its replies
// oldest first.
func (u *Reviews) ListReviews(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]review.Review, error) {
	top, err := u.reviews.ListTopLevel(ctx, companyID, limit, offset)
	if err != nil {
		return nil, internal(err)
	}
	if len(top) == 0 {
		return top, nil
	}

	ids := make([]uuid.UUID, 0, len(top))
	for _, rv := range top {
		ids = append(ids, rv.ID)
	}
	replies, err := u.reviews.ListReplies(ctx, ids)
	if err != nil {
		return nil, internal(err)
	}
	for i := range top {
		top[i].Replies = replies[top[i].ID]
		if top[i].Replies == nil {
			top[i].Replies = []review.Review{}
		}
	}
	return top, nil
}
