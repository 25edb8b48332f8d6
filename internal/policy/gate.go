// Package policy decides whether an actor may perform an action on a
// resource. Workflows never branch on roles themselves; they ask the Gate.
package policy

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrNoPolicyDefined = errors.New("no policy defined for resource")
)

type Action string

const (
	ActionView             Action = "view"
	ActionList             Action = "list"
	ActionCreate           Action = "create"
	ActionUpdate           Action = "update"
	ActionDelete           Action = "delete"
	ActionUpdateStatus     Action = "update_status"
	ActionListApplications Action = "list_applications"
	ActionListFollowers    Action = "list_followers"
	ActionReply            Action = "reply"
	ActionPostMessage      Action = "post_message"
)

type Resource string

const (
	ResourceCompany          Resource = "company"
	ResourceJob              Resource = "job"
	ResourceApplication      Resource = "application"
	ResourceCandidateProfile Resource = "candidate_profile"
	ResourceFollow           Resource = "follow"
	ResourceReview           Resource = "review"
	ResourceChatRoom         Resource = "chat_room"
	ResourceNotification     Resource = "notification"
)

// Policy holds the rules for one resource type. target may be nil for
// list/create checks that depend on the actor alone.
type Policy interface {
	Can(ctx context.Context, actor Actor, action Action, target any) (bool, error)
}

type PolicyFunc func(ctx context.Context, actor Actor, action Action, target any) (bool, error)

func (f PolicyFunc) Can(ctx context.Context, actor Actor, action Action, target any) (bool, error) {
	return f(ctx, actor, action, target)
}

type Gate struct {
	policies map[Resource]Policy
}

func NewGate() *Gate {
	return &Gate{policies: make(map[Resource]Policy)}
}

func (g *Gate) Register(resource Resource, p Policy) {
	g.policies[resource] = p
}

// Authorize returns nil when allowed and ErrForbidden when denied. Any other
// error comes from a policy lookup that could not be evaluated.
func (g *Gate) Authorize(ctx context.Context, actor Actor, action Action, resource Resource, target any) error {
	if !actor.Authenticated() {
		return ErrForbidden
	}
	p, ok := g.policies[resource]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPolicyDefined, resource)
	}
	allowed, err := p.Can(ctx, actor, action, target)
	if err != nil {
		return fmt.Errorf("policy %s/%s: %w", resource, action, err)
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}

func (g *Gate) Can(ctx context.Context, actor Actor, action Action, resource Resource, target any) bool {
	return g.Authorize(ctx, actor, action, resource, target) == nil
}
