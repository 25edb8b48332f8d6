package dto

import (
	"time"

	"jobboard/internal/domain/chat"
	"jobboard/internal/domain/follow"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/review"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type FollowResponse struct {
	ID        uuid.UUID        `json:"id"`
	CompanyID uuid.UUID        `json:"company_id"`
	CreatedAt time.Time        `json:"created_at"`
	Company   *CompanyResponse `json:"company,omitempty"`
}

func NewFollowResponse(f follow.Follow) FollowResponse {
	return FollowResponse{ID: f.ID, CompanyID: f.CompanyID, CreatedAt: f.CreatedAt}
}

func NewFollowedCompanyResponses(items []repository.FollowedCompany) []FollowResponse {
	out := make([]FollowResponse, 0, len(items))
	for _, it := range items {
		r := NewFollowResponse(it.Follow)
		c := NewCompanyResponse(it.Company)
		r.Company = &c
		out = append(out, r)
	}
	return out
}

type ReviewResponse struct {
	ID        uuid.UUID        `json:"id"`
	CompanyID uuid.UUID        `json:"company_id"`
	AuthorID  uuid.UUID        `json:"author_id"`
	ParentID  *uuid.UUID       `json:"parent_id"`
	Content   string           `json:"content"`
	Rating    *int             `json:"rating"`
	CreatedAt time.Time        `json:"created_at"`
	Replies   []ReviewResponse `json:"replies,omitempty"`
}

func NewReviewResponse(rv review.Review) ReviewResponse {
	out := ReviewResponse{
		ID:        rv.ID,
		CompanyID: rv.CompanyID,
		AuthorID:  rv.AuthorID,
		ParentID:  rv.ParentID,
		Content:   rv.Content,
		Rating:    rv.Rating,
		CreatedAt: rv.CreatedAt,
	}
	if !rv.IsReply() {
		out.Replies = make([]ReviewResponse, 0, len(rv.Replies))
		for _, reply := range rv.Replies {
			out.Replies = append(out.Replies, NewReviewResponse(reply))
		}
	}
	return out
}

func NewReviewResponses(items []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, rv := range items {
		out = append(out, NewReviewResponse(rv))
	}
	return out
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponses(items []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{ID: n.ID, Message: n.Message, Link: n.Link, IsRead: n.IsRead, CreatedAt: n.CreatedAt})
	}
	return out
}

type ChatRoomResponse struct {
	ID                uuid.UUID  `json:"id"`
	JobID             *uuid.UUID `json:"job_id"`
	EmployerID        uuid.UUID  `json:"employer_id"`
	CandidateID       uuid.UUID  `json:"candidate_id"`
	ExternalRoomToken string     `json:"external_room_token"`
	CreatedAt         time.Time  `json:"created_at"`
}

func NewChatRoomResponse(r chat.Room) ChatRoomResponse {
	return ChatRoomResponse{
		ID:                r.ID,
		JobID:             r.JobID,
		EmployerID:        r.EmployerID,
		CandidateID:       r.CandidateID,
		ExternalRoomToken: r.ExternalRoomToken,
		CreatedAt:         r.CreatedAt,
	}
}

func NewChatRoomResponses(items []chat.Room) []ChatRoomResponse {
	out := make([]ChatRoomResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewChatRoomResponse(r))
	}
	return out
}

type ChatMessageResponse struct {
	ID       uuid.UUID `json:"id"`
	RoomID   uuid.UUID `json:"room_id"`
	SenderID uuid.UUID `json:"sender_id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

func NewChatMessageResponse(m chat.Message) ChatMessageResponse {
	return ChatMessageResponse{ID: m.ID, RoomID: m.RoomID, SenderID: m.SenderID, Content: m.Content, SentAt: m.SentAt}
}

func NewChatMessageResponses(items []chat.Message) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewChatMessageResponse(m))
	}
	return out
}
