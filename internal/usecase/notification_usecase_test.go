package usecase

import (
	"errors"
	"testing"

	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

func TestNotifications_OwnOnly(t *testing.T) {
	f := newFixture(t)
	owner := f.addCandidate()
	other := f.addCandidate()
	repo := memNotifications{s: f.store}
	items := []notification.Notification{
		{ID: uuid.New(), UserID: owner.ID(), Message: "a", Active: true},
		{ID: uuid.New(), UserID: owner.ID(), Message: "b", Active: true},
		{ID: uuid.New(), UserID: other.ID(), Message: "c", Active: true},
	}
	if _, err := repo.CreateBulk(f.ctx, items); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewNotificationUsecase(repo, f.gate)

	list, err := uc.ListNotifications(f.ctx, owner, 20, 0)
	if err != nil || len(list) != 2 || list[0].Message != "b" {
		t.Fatalf("list: %+v err=%v", list, err)
	}

	if err := uc.MarkRead(f.ctx, other, items[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign mark: expected ErrNotFound, got %v", err)
	}
	if err := uc.MarkRead(f.ctx, owner, items[0].ID); err != nil {
		t.Fatalf("mark: %v", err)
	}
	n, err := uc.UnreadCount(f.ctx, owner)
	if err != nil || n != 1 {
		t.Fatalf("unread: %d err=%v", n, err)
	}
	marked, err := uc.MarkAllRead(f.ctx, owner)
	if err != nil || marked != 1 {
		t.Fatalf("mark all: %d err=%v", marked, err)
	}
	if n, _ := uc.UnreadCount(f.ctx, other); n != 1 {
		t.Fatalf("other user's notifications must stay unread, got %d", n)
	}
}
