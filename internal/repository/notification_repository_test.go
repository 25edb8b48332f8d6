package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

func makeNotifications(n int) []notification.Notification {
	out := make([]notification.Notification, 0, n)
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		out = append(out, notification.Notification{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			Message:   "new job",
			Link:      "/jobs/x",
			CreatedAt: now,
		})
	}
	return out
}

func TestCreateBulk_SingleStatement(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresNotificationRepository(db)

	n, err := repo.CreateBulk(context.Background(), makeNotifications(3))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
	if len(db.execs) != 1 {
		t.Fatalf("expected one statement, got %d", len(db.execs))
	}
	q := db.execs[0].query
	if !strings.Contains(q, "($11, $12, $13, $14, $15)") {
		t.Fatalf("expected third value tuple in %q", q)
	}
	if len(db.execs[0].args) != 15 {
		t.Fatalf("expected 15 args, got %d", len(db.execs[0].args))
	}
}

func TestCreateBulk_Batches(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresNotificationRepository(db)

	n, err := repo.CreateBulk(context.Background(), makeNotifications(notificationBatchSize+1))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != int64(notificationBatchSize+1) {
		t.Fatalf("expected %d rows, got %d", notificationBatchSize+1, n)
	}
	if len(db.execs) != 2 {
		t.Fatalf("expected two statements, got %d", len(db.execs))
	}
}

func TestCreateBulk_Empty(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresNotificationRepository(db)

	n, err := repo.CreateBulk(context.Background(), nil)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
	if len(db.execs) != 0 {
		t.Fatalf("expected no statements")
	}
}
