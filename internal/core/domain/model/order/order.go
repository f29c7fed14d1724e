package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

	// ErrInvalidTransition is returned when the requested target status is
	// not reachable from the order's current status. The order is left
	// unchanged; triggering this from application code indicates a bug in
	// the calling surface.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrNotPermitted aliases the kernel authorization error for
	// convenience at the lifecycle call sites.
	ErrNotPermitted = kernel.ErrNotPermitted

	// ErrIncorrectPin is returned when the delivery confirmation code does
	// not exactly match the order's PIN. The correct PIN is never included
	// in the error. The caller may retry with a corrected code.
	ErrIncorrectPin = errors.New("delivery pin does not match")
)

// DefaultCancellationReason is recorded when an order is cancelled without
// an explicit reason.
const DefaultCancellationReason = "unspecified"

// Order represents one customer transaction. It is the aggregate root that
// owns the authoritative status field and manages the order lifecycle from
// checkout through kitchen preparation and delivery.
//
// Order follows these invariants:
//   - Line items are immutable snapshots taken at creation; catalog edits
//     never alter historical orders
//   - totalAmount = sum of line-item totals + delivery fee + tip, computed
//     at creation and never recomputed
//   - The PIN is generated at creation and immutable
//   - Status only moves along the edges of the transition table, and every
//     transition is attributed to a permitted actor
//   - Orders are never deleted; cancellation is a status, preserving the
//     record for reporting
//
// The struct uses private fields to ensure encapsulation and can only be
// created through NewOrder (checkout) or RestoreOrder (persistence).
type Order struct {
	id       kernel.UUID
	customer Customer
	items    []LineItem

	deliveryFee   kernel.Money
	tip           kernel.Money
	totalAmount   kernel.Money
	paymentMethod PaymentMethod

	status             Status
	pin                Pin
	orderDate          time.Time
	statusChangedAt    time.Time
	driverID           *kernel.UUID
	driverName         string
	cancellationReason string

	isConstructed bool
}

// TransitionRequest carries the parameters of a status transition.
// Pin is consulted only for delivering -> delivered; CancellationReason only
// for pending -> cancelled.
type TransitionRequest struct {
	Target             Status
	Pin                string
	CancellationReason string
}

// NewOrder creates an order at checkout. It requires a non-empty cart and a
// customer snapshot with a delivery address, computes the total amount from
// the line items plus delivery fee and tip, generates a random 4-digit
// delivery PIN, and starts the lifecycle in pending status at the given
// creation time.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	deliveryFee kernel.Money,
	tip kernel.Money,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setCharges(deliveryFee, tip),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	o.totalAmount = subtotal.Add(o.deliveryFee).Add(o.tip)

	o.pin = NewRandomPin()
	o.orderDate = now
	o.statusChangedAt = now
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total
// amount is kept as-is and never recomputed, so historical orders survive
// catalog and fee changes unchanged.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	deliveryFee kernel.Money,
	tip kernel.Money,
	totalAmount kernel.Money,
	paymentMethod PaymentMethod,
	status Status,
	pin Pin,
	orderDate time.Time,
	statusChangedAt time.Time,
	driverID *kernel.UUID,
	driverName string,
	cancellationReason string,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setCharges(deliveryFee, tip),
		o.setPaymentMethod(paymentMethod),
		status.Validate(),
		pin.Validate(),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *driverID
		o.driverID = &idCopy
	}

	o.totalAmount = totalAmount
	o.status = status
	o.pin = pin
	o.orderDate = orderDate
	o.statusChangedAt = statusChangedAt
	o.driverName = driverName
	o.cancellationReason = cancellationReason
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call when reconstructing orders from persistence or
// receiving them across boundaries.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer snapshot captured at checkout.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items. The items themselves are
// immutable snapshots.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// DeliveryFee returns the delivery fee charged at checkout.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Tip returns the tip the customer added at checkout.
func (o *Order) Tip() kernel.Money {
	return o.tip
}

// TotalAmount returns the amount computed at creation:
// sum of line-item totals + delivery fee + tip.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Subtotal returns the line-item portion of the total:
// totalAmount - deliveryFee - tip.
func (o *Order) Subtotal() kernel.Money {
	sub, _ := o.totalAmount.Sub(o.deliveryFee)
	sub, _ = sub.Sub(o.tip)
	return sub
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Pin returns the delivery confirmation PIN.
func (o *Order) Pin() Pin {
	return o.pin
}

// OrderDate returns the creation timestamp. Set once, immutable.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// StatusChangedAt returns when the status last changed.
func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// DriverID returns the assigned driver's ID, or nil if unassigned.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	idCopy := *o.driverID
	return &idCopy
}

// DriverName returns the assigned driver's display name. Empty if unassigned.
func (o *Order) DriverName() string {
	return o.driverName
}

// CancellationReason returns the reason recorded on cancellation.
// Empty unless the order is cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// AssignDriver records which driver will deliver the order. Only staff may
// assign, and only before the delivery has started. The driver accepting
// the order later (ready -> delivering) must match this assignment.
//
// Reassignment to a different driver is allowed while the order has not
// left the kitchen.
func (o *Order) AssignDriver(actor kernel.Actor, driverID kernel.UUID, driverName string) error {
	if err := errors.Join(actor.Validate(), driverID.Validate()); err != nil {
		return err
	}
	if !actor.Role().IsStaff() {
		return fmt.Errorf("%w: role %s cannot assign drivers", ErrNotPermitted, actor.Role())
	}
	if o.status == StatusDelivering || o.status.IsTerminal() {
		return fmt.Errorf("%w: cannot assign a driver to a %s order", ErrInvalidTransition, o.status)
	}

	o.driverID = &driverID
	o.driverName = driverName
	return nil
}

// Advance moves the order to the target status on behalf of the given
// actor. It is the single entry point of the lifecycle engine: the
// transition table defines reachable edges and permitted roles, and this
// method layers the data-dependent checks on top:
//
//   - pending -> cancelled by a customer requires ownership; the
//     cancellation reason is recorded, defaulting to "unspecified"
//   - ready -> delivering requires the accepting driver to match the
//     order's assigned driver
//   - delivering -> delivered additionally requires the exact delivery PIN
//
// Re-invoking Advance with the current status is a no-op returning nil,
// never an error; this absorbs double submissions from retried UI actions.
// All checks run before any mutation, so a failed transition leaves the
// order unchanged.
func (o *Order) Advance(actor kernel.Actor, req TransitionRequest, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := req.Target.Validate(); err != nil {
		return err
	}

	if req.Target == o.status {
		return nil
	}

	if !TransitionAllowed(o.status, req.Target) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.status, req.Target)
	}
	if !RoleMayTransition(o.status, req.Target, actor.Role()) {
		return fmt.Errorf("%w: role %s cannot move %s to %s",
			ErrNotPermitted, actor.Role(), o.status, req.Target)
	}

	var reason string
	switch req.Target {
	case StatusCancelled:
		if actor.Role() == kernel.RoleCustomer && !actor.ID().IsEqual(o.customer.ID()) {
			return fmt.Errorf("%w: only the order owner may cancel", ErrNotPermitted)
		}
		reason = req.CancellationReason
		if reason == "" {
			reason = DefaultCancellationReason
		}
	case StatusDelivering, StatusDelivered:
		if o.driverID == nil || !o.driverID.IsEqual(actor.ID()) {
			return fmt.Errorf("%w: order is not assigned to this driver", ErrNotPermitted)
		}
		if req.Target == StatusDelivered && !o.pin.Matches(req.Pin) {
			return ErrIncorrectPin
		}
	default:
	}

	o.status = req.Target
	o.statusChangedAt = now
	if req.Target == StatusCancelled {
		o.cancellationReason = reason
	}
	return nil
}

// StartCooking moves a pending order into the kitchen. Staff only.
func (o *Order) StartCooking(actor kernel.Actor, now time.Time) error {
	return o.Advance(actor, TransitionRequest{Target: StatusCooking}, now)
}

// MarkReady marks a cooking order as ready for pickup. Staff only.
func (o *Order) MarkReady(actor kernel.Actor, now time.Time) error {
	return o.Advance(actor, TransitionRequest{Target: StatusReady}, now)
}

// AcceptDelivery lets the assigned driver take a ready order out.
func (o *Order) AcceptDelivery(actor kernel.Actor, now time.Time) error {
	return o.Advance(actor, TransitionRequest{Target: StatusDelivering}, now)
}

// ConfirmDelivery completes the order when the assigned driver supplies the
// customer's delivery PIN.
func (o *Order) ConfirmDelivery(actor kernel.Actor, pin string, now time.Time) error {
	return o.Advance(actor, TransitionRequest{Target: StatusDelivered, Pin: pin}, now)
}

// Cancel cancels a pending order, recording the reason. Permitted for the
// owning customer and for staff.
func (o *Order) Cancel(actor kernel.Actor, reason string, now time.Time) error {
	return o.Advance(actor, TransitionRequest{Target: StatusCancelled, CancellationReason: reason}, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("cart must contain at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCharges(deliveryFee, tip kernel.Money) error {
	if err := errors.Join(deliveryFee.Validate(), tip.Validate()); err != nil {
		return err
	}
	o.deliveryFee = deliveryFee
	o.tip = tip
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}
