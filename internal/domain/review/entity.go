package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	AuthorID    uuid.UUID
	CandidateID *uuid.UUID
	ParentID    *uuid.UUID
	Content     string
	Rating      *int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Replies []Review
}

func (r Review) IsReply() bool {
	return r.ParentID != nil
}
