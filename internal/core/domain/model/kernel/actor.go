package kernel

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("actor must be created via NewActor constructor")

// ErrNotPermitted is returned when the acting principal's role (or identity,
// for owner- and driver-bound operations) does not permit the requested
// operation. Never silently ignored by callers.
var ErrNotPermitted = errors.New("actor is not permitted for this operation")

// Actor is the acting principal behind a state-changing operation: who is
// asking and in which role. Every lifecycle operation takes an explicit
// Actor parameter rather than reading ambient session state, so business
// rules stay pure and testable.
type Actor struct { //nolint:recvcheck //using for validation
	id   UUID
	role Role
	name string

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a principal's identity and resolved role.
// The display name may be empty; id and role must be valid.
func NewActor(id UUID, role Role, name string) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the principal's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the principal's authorization role.
func (a Actor) Role() Role {
	return a.role
}

// Name returns the principal's display name. May be empty.
func (a Actor) Name() string {
	return a.name
}
