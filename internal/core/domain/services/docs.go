// Package services contains domain services: operations that span several
// aggregates or whole read sets and therefore do not belong to a single
// aggregate. The statistics calculator lives here as a pure function over an
// order snapshot.
package services
