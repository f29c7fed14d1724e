// Package kernel provides shared value objects used across the domain model:
// UUID identifiers, Money amounts, authorization Roles, and the Actor
// principal passed into every state-changing operation.
//
// All kernel types are immutable value objects. Zero values are invalid and
// fail validation; instances must be created through the provided
// constructor functions.
package kernel
