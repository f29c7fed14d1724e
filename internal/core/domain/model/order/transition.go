package order

import (
	"foodorder/internal/core/domain/model/kernel"
)

// transition describes one edge of the lifecycle graph together with the
// roles permitted to traverse it.
type transition struct {
	from  Status
	to    Status
	roles []kernel.Role
}

// lifecycleTransitions is the authoritative transition table: the single
// source of truth for which role may move an order along each edge.
// Ownership and PIN checks that depend on order data (customer cancelling
// their own order, driver identity, delivery PIN) are enforced by
// Order.Advance on top of this table.
var lifecycleTransitions = []transition{
	{from: StatusPending, to: StatusCooking, roles: []kernel.Role{kernel.RoleAdmin, kernel.RoleHost}},
	{from: StatusPending, to: StatusCancelled, roles: []kernel.Role{kernel.RoleCustomer, kernel.RoleAdmin, kernel.RoleHost}},
	{from: StatusCooking, to: StatusReady, roles: []kernel.Role{kernel.RoleAdmin, kernel.RoleHost}},
	{from: StatusReady, to: StatusDelivering, roles: []kernel.Role{kernel.RoleDriver}},
	{from: StatusDelivering, to: StatusDelivered, roles: []kernel.Role{kernel.RoleDriver}},
}

type transitionKey struct {
	from Status
	to   Status
}

// transitionRoles is a lookup built from lifecycleTransitions for O(1)
// edge and role checks.
var transitionRoles = func() map[transitionKey][]kernel.Role {
	m := make(map[transitionKey][]kernel.Role, len(lifecycleTransitions))
	for _, t := range lifecycleTransitions {
		m[transitionKey{from: t.from, to: t.to}] = t.roles
	}
	return m
}()

// TransitionAllowed reports whether the lifecycle graph contains an edge
// from one status to another, regardless of actor role.
func TransitionAllowed(from, to Status) bool {
	_, ok := transitionRoles[transitionKey{from: from, to: to}]
	return ok
}

// RoleMayTransition reports whether the given role is permitted to move an
// order along the given edge. Returns false for edges that do not exist.
func RoleMayTransition(from, to Status, role kernel.Role) bool {
	for _, allowed := range transitionRoles[transitionKey{from: from, to: to}] {
		if allowed == role {
			return true
		}
	}
	return false
}

// AllowedNextStatuses returns the statuses reachable from the given status,
// in table order. Terminal statuses return an empty slice.
func AllowedNextStatuses(from Status) []Status {
	var next []Status
	for _, t := range lifecycleTransitions {
		if t.from == from {
			next = append(next, t.to)
		}
	}
	return next
}
