package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

func followerRow(id uuid.UUID, active bool) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "user-" + id.String()[:8]
		*dest[2].(*string) = id.String()[:8] + "@example.com"
		*dest[3].(*string) = "First"
		*dest[4].(*string) = "Last"
		*dest[5].(*string) = string(user.RoleCandidate)
		*dest[6].(*string) = ""
		*dest[7].(*bool) = active
		*dest[8].(*time.Time) = time.Now().UTC()
		return nil
	}
}

func TestListFollowers_EveryActiveFollowIsReturned(t *testing.T) {
	activeID, deactivatedID := uuid.New(), uuid.New()
	db := &fakeDB{rowsScan: []func(dest ...any) error{
		followerRow(activeID, true),
		followerRow(deactivatedID, false),
	}}
	repo := NewPostgresFollowRepository(db)

	users, err := repo.ListFollowers(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected one user per active follow, got %d", len(users))
	}
	if users[1].ID != deactivatedID || users[1].IsActive {
		t.Fatalf("expected deactivated account with IsActive=false, got %+v", users[1])
	}
	if users[0].Role != user.RoleCandidate {
		t.Fatalf("unexpected role %q", users[0].Role)
	}

	q := db.queries[0].query
	if !strings.Contains(q, "f.active = true") {
		t.Fatalf("expected follow-level filter in %q", q)
	}
	if strings.Contains(q, "u.is_active = true") {
		t.Fatalf("account state must not filter followers: %q", q)
	}
}
