package account

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("account must be created via NewAccount or RestoreAccount")

// Account represents an application user: identity, profile used at
// checkout, and the role that authorizes lifecycle operations. The role is
// the sole authorization signal; it is mutable only through ChangeRole.
type Account struct {
	uid             kernel.UUID
	displayName     string
	email           string
	role            kernel.Role
	deliveryAddress string
	phoneNumber     string

	isConstructed bool
}

// NewAccount creates an account with validated identity and role.
// New signups start as customers; staff roles are granted via ChangeRole.
func NewAccount(uid kernel.UUID, displayName, email string, role kernel.Role,
	deliveryAddress, phoneNumber string) (*Account, error) {
	a := &Account{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setUID(uid),
		a.setEmail(email),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.displayName = displayName
	a.deliveryAddress = deliveryAddress
	a.phoneNumber = phoneNumber
	return a, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(uid kernel.UUID, displayName, email string, role kernel.Role,
	deliveryAddress, phoneNumber string) (*Account, error) {
	return NewAccount(uid, displayName, email, role, deliveryAddress, phoneNumber)
}

// Validate ensures the Account was created through a factory function.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// UID returns the account's unique identifier.
func (a *Account) UID() kernel.UUID {
	return a.uid
}

// DisplayName returns the user's display name. May be empty.
func (a *Account) DisplayName() string {
	return a.displayName
}

// Email returns the user's email address.
func (a *Account) Email() string {
	return a.email
}

// Role returns the account's authorization role.
func (a *Account) Role() kernel.Role {
	return a.role
}

// DeliveryAddress returns the profile delivery address used at checkout.
// May be empty, in which case checkout is rejected.
func (a *Account) DeliveryAddress() string {
	return a.deliveryAddress
}

// PhoneNumber returns the contact phone number. May be empty.
func (a *Account) PhoneNumber() string {
	return a.phoneNumber
}

// UpdateProfile replaces the mutable profile fields. The role is not
// touched; use ChangeRole for that.
func (a *Account) UpdateProfile(displayName, deliveryAddress, phoneNumber string) {
	a.displayName = displayName
	a.deliveryAddress = deliveryAddress
	a.phoneNumber = phoneNumber
}

// ChangeRole sets the account's role on behalf of the given actor.
//
// Rules:
//   - admins may assign any role
//   - developers may assign any role except developer, and may not touch
//     accounts that currently hold the developer role
//   - everyone else is rejected
func (a *Account) ChangeRole(actor kernel.Actor, newRole kernel.Role) error {
	if err := errors.Join(actor.Validate(), newRole.Validate()); err != nil {
		return err
	}

	switch actor.Role() {
	case kernel.RoleAdmin:
	case kernel.RoleDeveloper:
		if newRole == kernel.RoleDeveloper || a.role == kernel.RoleDeveloper {
			return fmt.Errorf("%w: developers cannot grant or revoke the developer role",
				kernel.ErrNotPermitted)
		}
	default:
		return fmt.Errorf("%w: role %s cannot manage roles", kernel.ErrNotPermitted, actor.Role())
	}

	a.role = newRole
	return nil
}

func (a *Account) setUID(uid kernel.UUID) error {
	if err := uid.Validate(); err != nil {
		return err
	}
	a.uid = uid
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
