package chat

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID                uuid.UUID
	JobID             *uuid.UUID
	EmployerID        uuid.UUID
	CandidateID       uuid.UUID
	ExternalRoomToken string
	Active            bool
	CreatedAt         time.Time
}

func (r Room) HasParticipant(userID uuid.UUID) bool {
	return userID != uuid.Nil && (r.EmployerID == userID || r.CandidateID == userID)
}

type Message struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	SenderID uuid.UUID
	Content  string
	SentAt   time.Time
}
