package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role represents the authorization role of an acting principal.
// It is the sole authorization signal for all lifecycle operations; the
// identity provider resolving a principal to a role is an external
// collaborator whose value is trusted as given.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel their own pending orders.
	RoleCustomer

	// RoleAdmin manages the kitchen workflow, driver assignment, and roles.
	RoleAdmin

	// RoleHost manages the kitchen workflow with limited reporting access.
	RoleHost

	// RoleDriver accepts assigned orders and confirms deliveries.
	RoleDriver

	// RoleDeveloper has full reporting access and restricted role management.
	RoleDeveloper
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleCustomer:  "customer",
		RoleAdmin:     "admin",
		RoleHost:      "host",
		RoleDriver:    "driver",
		RoleDeveloper: "developer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:  "customer",
		RoleAdmin:     "admin",
		RoleHost:      "host",
		RoleDriver:    "driver",
		RoleDeveloper: "developer",
	}
}

// RoleFromString parses a role name as stored or transmitted externally.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role. Implements fmt.Stringer
// and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsStaff reports whether the role belongs to kitchen staff permitted to
// advance orders through preparation states.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHost
}

// HasFullReportingAccess reports whether the role may see monthly sales and
// payment statistics. Hosts receive the limited report instead.
func (r Role) HasFullReportingAccess() bool {
	return r == RoleAdmin || r == RoleDeveloper
}
