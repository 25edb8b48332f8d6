package follow

import (
	"time"

	"github.com/google/uuid"
)

type Follow struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	CompanyID   uuid.UUID
	Active      bool
	CreatedAt   time.Time
}
