package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
)

var (
	ErrInvalidInput = validation.ErrInvalid
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// ValidationError carries the per-field reasons of a rejected input and
// matches ErrInvalidInput.
type ValidationError = validation.Error

func internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

// authorize asks the gate and converts a denial into ErrForbidden. Lookup
// failures inside a policy surface as ErrInternal.
func authorize(ctx context.Context, gate *policy.Gate, actor policy.Actor, action policy.Action, resource policy.Resource, target any) error {
	err := gate.Authorize(ctx, actor, action, resource, target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, policy.ErrForbidden):
		return ErrForbidden
	default:
		return internal(err)
	}
}
