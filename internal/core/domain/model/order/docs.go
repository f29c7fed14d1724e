// Package order provides the order aggregate and its lifecycle engine.
//
// The package includes:
//   - Order: the aggregate root owning the authoritative status field,
//     the immutable line-item snapshots, and the delivery PIN
//   - Status: the lifecycle states pending, cooking, ready, delivering,
//     delivered, cancelled
//   - the transition table: the single source of truth for which role may
//     move an order along each lifecycle edge
//   - Customer, LineItem, Pin: immutable value objects snapshotted at
//     checkout
//
// Key business rules:
//   - totalAmount is computed once at checkout from line items plus
//     delivery fee and tip, and never recomputed
//   - status moves only along the table's edges; cancellation is possible
//     only while pending; delivered and cancelled are terminal
//   - ready -> delivering and delivering -> delivered are bound to the
//     assigned driver, and delivery confirmation requires the exact PIN
//   - re-requesting the current status is an idempotent no-op, guarding
//     against double-submitted UI actions
package order
