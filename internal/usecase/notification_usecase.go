package usecase

import (
	"context"
	"errors"

	"jobboard/internal/domain/notification"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, actor policy.Actor, limit, offset int) ([]notification.Notification, error)
	UnreadCount(ctx context.Context, actor policy.Actor) (int, error)
	MarkRead(ctx context.Context, actor policy.Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor policy.Actor) (int64, error)
}

type Notifications struct {
	notifications repository.NotificationRepository
	gate          *policy.Gate
}

func NewNotificationUsecase(notifications repository.NotificationRepository, gate *policy.Gate) *Notifications {
	return &Notifications{notifications: notifications, gate: gate}
}

func (u *Notifications) ListNotifications(ctx context.Context, actor policy.Actor, limit, offset int) ([]notification.Notification, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionList, policy.ResourceNotification, nil); err != nil {
		return nil, err
	}
	items, err := u.notifications.ListByUser(ctx, actor.ID(), limit, offset)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *Notifications) UnreadCount(ctx context.Context, actor policy.Actor) (int, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionList, policy.ResourceNotification, nil); err != nil {
		return 0, err
	}
	n, err := u.notifications.CountUnread(ctx, actor.ID())
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}

// MarkRead flags one of the actor's notifications. Someone else's
// notification is reported as missing.
func (u *Notifications) MarkRead(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	n, err := u.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return internal(err)
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionUpdate, policy.ResourceNotification, &n); err != nil {
		if errors.Is(err, ErrForbidden) {
			return ErrNotFound
		}
		return err
	}
	if n.IsRead {
		return nil
	}
	if err := u.notifications.MarkRead(ctx, n.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return internal(err)
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, actor policy.Actor) (int64, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionList, policy.ResourceNotification, nil); err != nil {
		return 0, err
	}
	n, err := u.notifications.MarkAllRead(ctx, actor.ID())
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}
