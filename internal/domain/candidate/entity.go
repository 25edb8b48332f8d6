package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	CVURL                   string
	Skills                  string
	Experience              string
	Education               string
	VerificationDocumentURL string
	Active                  bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
