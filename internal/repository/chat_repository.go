package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/chat"

	"github.com/google/uuid"
)

type ChatRepository interface {
	FindRoom(ctx context.Context, employerID, candidateID uuid.UUID, jobID *uuid.UUID) (chat.Room, error)
	CreateRoom(ctx context.Context, room chat.Room) error
	GetRoom(ctx context.Context, id uuid.UUID) (chat.Room, error)
	ListRoomsByUser(ctx context.Context, userID uuid.UUID) ([]chat.Room, error)
	ListMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]chat.Message, error)
	CreateMessage(ctx context.Context, m chat.Message) error
}

type PostgresChatRepository struct {
	db database.DB
}

func NewPostgresChatRepository(db database.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

const roomColumns = `id, job_id, employer_id, candidate_id, external_room_token, active, created_at`

// FindRoom looks a room up by its participant triple. A nil jobID matches
// rooms opened without a job.
func (r *PostgresChatRepository) FindRoom(ctx context.Context, employerID, candidateID uuid.UUID, jobID *uuid.UUID) (chat.Room, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+`
		 FROM chat_rooms
		 WHERE employer_id = $1 AND candidate_id = $2 AND job_id IS NOT DISTINCT FROM $3`,
		employerID, candidateID, jobID,
	)
	return scanRoom(row)
}

func (r *PostgresChatRepository) CreateRoom(ctx context.Context, room chat.Room) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_rooms (id, job_id, employer_id, candidate_id, external_room_token, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		room.ID, room.JobID, room.EmployerID, room.CandidateID, room.ExternalRoomToken, room.CreatedAt,
	)
	return translate(err)
}

func (r *PostgresChatRepository) GetRoom(ctx context.Context, id uuid.UUID) (chat.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM chat_rooms WHERE id = $1 AND active = true`, id)
	return scanRoom(row)
}

func (r *PostgresChatRepository) ListRoomsByUser(ctx context.Context, userID uuid.UUID) ([]chat.Room, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+`
		 FROM chat_rooms
		 WHERE (employer_id = $1 OR candidate_id = $1) AND active = true
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresChatRepository) ListMessages(ctx context.Context, roomID uuid.UUID, limit, offset int) ([]chat.Message, error) {
	limit, offset = clampPage(limit, offset, 50, 200)
	rows, err := r.db.Query(ctx,
		`SELECT id, room_id, sender_id, content, sent_at
		 FROM messages
		 WHERE room_id = $1
		 ORDER BY sent_at ASC
		 LIMIT $2 OFFSET $3`,
		roomID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Content, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresChatRepository) CreateMessage(ctx context.Context, m chat.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO messages (id, room_id, sender_id, content, sent_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.RoomID, m.SenderID, m.Content, m.SentAt,
	)
	return translate(err)
}

func scanRoom(row database.Row) (chat.Room, error) {
	var room chat.Room
	if err := row.Scan(&room.ID, &room.JobID, &room.EmployerID, &room.CandidateID,
		&room.ExternalRoomToken, &room.Active, &room.CreatedAt); err != nil {
		return chat.Room{}, translate(err)
	}
	return room, nil
}
