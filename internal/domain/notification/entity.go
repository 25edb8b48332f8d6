package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	Link      string
	IsRead    bool
	Active    bool
	CreatedAt time.Time
}
