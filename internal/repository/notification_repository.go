package repository

import (
	"context"
	"fmt"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	CreateBulk(ctx context.Context, items []notification.Notification) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (notification.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// notificationBatchSize keeps one statement under the 65535 bind parameter
// limit of the Postgres protocol.
const notificationBatchSize = 1000

// CreateBulk writes items with multi-row INSERT statements, one per batch of
// notificationBatchSize rows. It returns the number of rows written.
func (r *PostgresNotificationRepository) CreateBulk(ctx context.Context, items []notification.Notification) (int64, error) {
	var total int64
	for start := 0; start < len(items); start += notificationBatchSize {
		end := start + notificationBatchSize
		if end > len(items) {
			end = len(items)
		}
		q, args := buildNotificationInsert(items[start:end])
		n, err := r.db.Exec(ctx, q, args...)
		if err != nil {
			return total, translate(err)
		}
		total += n
	}
	return total, nil
}

func buildNotificationInsert(items []notification.Notification) (string, []any) {
	const cols = 5
	var b strings.Builder
	b.WriteString(`INSERT INTO notifications (id, user_id, message, link, created_at) VALUES `)
	args := make([]any, 0, len(items)*cols)
	for i, n := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		base := i * cols
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, n.ID, n.UserID, n.Message, n.Link, n.CreatedAt)
	}
	return b.String(), args
}

func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, message, link, is_read, active, created_at
		 FROM notifications
		 WHERE user_id = $1 AND active = true
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var c int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM notifications WHERE user_id = $1 AND active = true AND is_read = false`,
		userID,
	)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (notification.Notification, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, message, link, is_read, active, created_at FROM notifications WHERE id = $1 AND active = true`,
		id,
	)
	return scanNotification(row)
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false AND active = true`,
		userID,
	)
}

func scanNotification(row database.Row) (notification.Notification, error) {
	var n notification.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.Link, &n.IsRead, &n.Active, &n.CreatedAt); err != nil {
		return notification.Notification{}, translate(err)
	}
	return n, nil
}
