package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/chat"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

const maxMessageLength = 4000

type ChatUsecase interface {
	OpenRoom(ctx context.Context, actor policy.Actor, in OpenRoomInput) (chat.Room, bool, error)
	ListRooms(ctx context.Context, actor policy.Actor) ([]chat.Room, error)
	ListMessages(ctx context.Context, actor policy.Actor, roomID uuid.UUID, limit, offset int) ([]chat.Message, error)
	PostMessage(ctx context.Context, actor policy.Actor, roomID uuid.UUID, content string) (chat.Message, error)
}

type OpenRoomInput struct {
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
}

type Chats struct {
	chats     repository.ChatRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	users     user.Repository
	gate      *policy.Gate
	now       func() time.Time
}

func NewChatUsecase(chats repository.ChatRepository, jobs repository.JobRepository, companies repository.CompanyRepository, users user.Repository, gate *policy.Gate) *Chats {
	return &Chats{chats: chats, jobs: jobs, companies: companies, users: users, gate: gate, now: time.Now}
}

// OpenRoom returns the room of the (employer, candidate, job) triple,
// creating it when absent. created reports whether this call inserted it.
func (u *Chats) OpenRoom(ctx context.Context, actor policy.Actor, in OpenRoomInput) (chat.Room, bool, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceChatRoom, nil); err != nil {
		return chat.Room{}, false, err
	}

	var employerID, candidateID uuid.UUID
	if policy.IsEmployer(actor) {
		if in.CandidateID == nil || *in.CandidateID == uuid.Nil {
			return chat.Room{}, false, validation.Field("candidate_id", "required")
		}
		if actor.Company == nil {
			return chat.Room{}, false, ErrForbidden
		}
		cand, err := u.users.GetUserByID(ctx, *in.CandidateID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return chat.Room{}, false, ErrNotFound
			}
			return chat.Room{}, false, internal(err)
		}
		if cand.Role != user.RoleCandidate || !cand.IsActive {
			return chat.Room{}, false, validation.Field("candidate_id", "not_a_candidate")
		}
		if in.JobID != nil {
			j, err := u.jobs.GetByID(ctx, *in.JobID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return chat.Room{}, false, ErrNotFound
				}
				return chat.Room{}, false, internal(err)
			}
			if !policy.OwnsCompany(actor, j.CompanyID) {
				return chat.Room{}, false, ErrForbidden
			}
		}
		employerID, candidateID = actor.ID(), cand.ID
	} else {
		if in.JobID == nil || *in.JobID == uuid.Nil {
			return chat.Room{}, false, validation.Field("job_id", "required")
		}
		j, err := u.jobs.GetByID(ctx, *in.JobID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return chat.Room{}, false, ErrNotFound
			}
			return chat.Room{}, false, internal(err)
		}
		c, err := u.companies.GetByID(ctx, j.CompanyID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return chat.Room{}, false, ErrNotFound
			}
			return chat.Room{}, false, internal(err)
		}
		employerID, candidateID = c.UserID, actor.ID()
	}

	room, err := u.chats.FindRoom(ctx, employerID, candidateID, in.JobID)
	if err == nil {
		return room, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return chat.Room{}, false, internal(err)
	}

	room = chat.Room{
		ID:                uuid.New(),
		JobID:             in.JobID,
		EmployerID:        employerID,
		CandidateID:       candidateID,
		ExternalRoomToken: uuid.NewString(),
		Active:            true,
		CreatedAt:         u.now().UTC(),
	}
	if err := u.chats.CreateRoom(ctx, room); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return chat.Room{}, false, internal(err)
		}
		// Lost a race with a concurrent open of the same triple.
		existing, ferr := u.chats.FindRoom(ctx, employerID, candidateID, in.JobID)
		if ferr != nil {
			return chat.Room{}, false, internal(ferr)
		}
		return existing, false, nil
	}
	return room, true, nil
}

func (u *Chats) ListRooms(ctx context.Context, actor policy.Actor) ([]chat.Room, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionList, policy.ResourceChatRoom, nil); err != nil {
		return nil, err
	}
	rooms, err := u.chats.ListRoomsByUser(ctx, actor.ID())
	if err != nil {
		return nil, internal(err)
	}
	return rooms, nil
}

func (u *Chats) ListMessages(ctx context.Context, actor policy.Actor, roomID uuid.UUID, limit, offset int) ([]chat.Message, error) {
	room, err := u.participantRoom(ctx, actor, roomID, policy.ActionView)
	if err != nil {
		return nil, err
	}
	msgs, err := u.chats.ListMessages(ctx, room.ID, limit, offset)
	if err != nil {
		return nil, internal(err)
	}
	return msgs, nil
}

// PostMessage appends a message to the room. The sender is always the actor.
func (u *Chats) PostMessage(ctx context.Context, actor policy.Actor, roomID uuid.UUID, content string) (chat.Message, error) {
	room, err := u.participantRoom(ctx, actor, roomID, policy.ActionPostMessage)
	if err != nil {
		return chat.Message{}, err
	}

	v := validation.Violations{}
	validation.Required("content", content, v)
	validation.MaxLen("content", content, maxMessageLength, v)
	if err := v.Err(); err != nil {
		return chat.Message{}, err
	}

	m := chat.Message{
		ID:       uuid.New(),
		RoomID:   room.ID,
		SenderID: actor.ID(),
		Content:  strings.TrimSpace(content),
		SentAt:   u.now().UTC(),
	}
	if err := u.chats.CreateMessage(ctx, m); err != nil {
		return chat.Message{}, internal(err)
	}
	return m, nil
}

// participantRoom hides rooms from non-participants by reporting them missing.
func (u *Chats) participantRoom(ctx context.Context, actor policy.Actor, roomID uuid.UUID, action policy.Action) (chat.Room, error) {
	room, err := u.chats.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.Room{}, ErrNotFound
		}
		return chat.Room{}, internal(err)
	}
	if err := authorize(ctx, u.gate, actor, action, policy.ResourceChatRoom, &room); err != nil {
		if errors.Is(err, ErrForbidden) {
			return chat.Room{}, ErrNotFound
		}
		return chat.Room{}, err
	}
	return room, nil
}
