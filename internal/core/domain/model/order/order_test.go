package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role, role.String())
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role, role.String())
	require.NoError(t, err)
	return actor
}

func newTestCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Alice", "555-0101", "12 Main St")
	require.NoError(t, err)
	return customer
}

func newTestItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Burger", money(t, 10000), "burger.png", 2, "no onions")
	require.NoError(t, err)
	return []order.LineItem{item}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		newTestCustomer(t),
		newTestItems(t),
		money(t, 3500),
		money(t, 1000),
		order.PaymentCash,
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

// advanceTo walks a fresh order to the wanted status along the happy path,
// assigning the given driver when delivery states are needed.
func advanceTo(t *testing.T, o *order.Order, target order.Status, driver kernel.Actor) {
	t.Helper()
	now := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	staff := newActor(t, kernel.RoleAdmin)

	steps := []order.Status{order.StatusCooking, order.StatusReady, order.StatusDelivering, order.StatusDelivered}
	for _, step := range steps {
		if o.Status() == target {
			return
		}
		switch step {
		case order.StatusCooking:
			require.NoError(t, o.StartCooking(staff, now))
		case order.StatusReady:
			require.NoError(t, o.MarkReady(staff, now))
		case order.StatusDelivering:
			require.NoError(t, o.AssignDriver(staff, driver.ID(), driver.Name()))
			require.NoError(t, o.AcceptDelivery(driver, now))
		case order.StatusDelivered:
			require.NoError(t, o.ConfirmDelivery(driver, o.Pin().String(), now))
		}
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create pending order with computed total and pin", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), "Burger", money(t, 10000), "", 2, "")
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), newTestCustomer(t), []order.LineItem{item},
			money(t, 3500), money(t, 1000), order.PaymentCash, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int64(24500), o.TotalAmount().Amount())
		assert.Equal(t, int64(20000), o.Subtotal().Amount())
		assert.Equal(t, now, o.OrderDate())
		assert.Len(t, o.Pin().String(), 4)
		assert.Nil(t, o.DriverID())
		assert.Empty(t, o.CancellationReason())
	})

	t.Run("should hold total identity across charges", func(t *testing.T) {
		o := newTestOrder(t)

		expected := o.Subtotal().Add(o.DeliveryFee()).Add(o.Tip())
		assert.True(t, o.TotalAmount().IsEqual(expected))
	})

	t.Run("should fail with empty cart", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), newTestCustomer(t), nil,
			money(t, 3500), money(t, 1000), order.PaymentCash, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when customer has no delivery address", func(t *testing.T) {
		_, err := order.NewCustomer(kernel.NewUUID(), "Alice", "555-0101", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid payment method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), newTestCustomer(t), newTestItems(t),
			money(t, 3500), money(t, 1000), order.PaymentUnknown, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should snapshot items against later mutation of the input slice", func(t *testing.T) {
		items := newTestItems(t)
		o, err := order.NewOrder(
			kernel.NewUUID(), newTestCustomer(t), items,
			money(t, 0), money(t, 0), order.PaymentTransfer, now)
		require.NoError(t, err)

		other, _ := order.NewLineItem(kernel.NewUUID(), "Pizza", money(t, 5000), "", 1, "")
		items[0] = other

		assert.Equal(t, "Burger", o.Items()[0].Name())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value orders", func(t *testing.T) {
		var nilOrder *order.Order
		require.Error(t, nilOrder.Validate())

		var zero order.Order
		require.Error(t, zero.Validate())
	})
}

func TestOrder_Advance_HappyPath(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("should walk the full lifecycle to delivered", func(t *testing.T) {
		o := newTestOrder(t)
		staff := newActor(t, kernel.RoleHost)
		driver := newActor(t, kernel.RoleDriver)

		require.NoError(t, o.StartCooking(staff, now))
		assert.Equal(t, order.StatusCooking, o.Status())

		require.NoError(t, o.MarkReady(staff, now))
		assert.Equal(t, order.StatusReady, o.Status())

		require.NoError(t, o.AssignDriver(staff, driver.ID(), "Sam"))
		assert.True(t, o.DriverID().IsEqual(driver.ID()))
		assert.Equal(t, "Sam", o.DriverName())

		require.NoError(t, o.AcceptDelivery(driver, now))
		assert.Equal(t, order.StatusDelivering, o.Status())

		require.NoError(t, o.ConfirmDelivery(driver, o.Pin().String(), now))
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, now, o.StatusChangedAt())
	})

	t.Run("should cancel a pending order with reason", func(t *testing.T) {
		o := newTestOrder(t)
		staff := newActor(t, kernel.RoleAdmin)

		require.NoError(t, o.Cancel(staff, "out of stock", now))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "out of stock", o.CancellationReason())
	})

	t.Run("should default the cancellation reason", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(newActor(t, kernel.RoleHost), "", now))

		assert.Equal(t, order.DefaultCancellationReason, o.CancellationReason())
	})

	t.Run("should let the owning customer cancel", func(t *testing.T) {
		o := newTestOrder(t)
		owner := actorWithID(t, o.Customer().ID(), kernel.RoleCustomer)

		require.NoError(t, o.Cancel(owner, "changed my mind", now))

		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestOrder_Advance_Idempotence(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("should no-op when target equals current status", func(t *testing.T) {
		o := newTestOrder(t)
		staff := newActor(t, kernel.RoleAdmin)

		require.NoError(t, o.StartCooking(staff, now))
		before := o.StatusChangedAt()

		err := o.Advance(staff, order.TransitionRequest{Target: order.StatusCooking},
			now.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.StatusCooking, o.Status())
		assert.Equal(t, before, o.StatusChangedAt())
	})

	t.Run("should no-op even for a role not on the edge", func(t *testing.T) {
		o := newTestOrder(t)
		driver := newActor(t, kernel.RoleDriver)

		err := o.Advance(driver, order.TransitionRequest{Target: order.StatusPending}, now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Advance_InvalidTransitions(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	staff := newActor(t, kernel.RoleAdmin)

	t.Run("should reject skipping states and leave status unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Advance(staff, order.TransitionRequest{Target: order.StatusDelivered}, now)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject cancelling a cooking order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.StartCooking(staff, now))

		err := o.Cancel(staff, "too late", now)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusCooking, o.Status())
		assert.Empty(t, o.CancellationReason())
	})

	t.Run("should reject any move out of a terminal status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(staff, "", now))

		err := o.StartCooking(staff, now)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should reject an invalid target status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Advance(staff, order.TransitionRequest{Target: order.Status(42)}, now)

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Advance_Authorization(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("should reject customer advancing the kitchen", func(t *testing.T) {
		o := newTestOrder(t)
		customer := actorWithID(t, o.Customer().ID(), kernel.RoleCustomer)

		err := o.StartCooking(customer, now)

		require.ErrorIs(t, err, order.ErrNotPermitted)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject a customer cancelling someone else's order", func(t *testing.T) {
		o := newTestOrder(t)
		stranger := newActor(t, kernel.RoleCustomer)

		err := o.Cancel(stranger, "not mine", now)

		require.ErrorIs(t, err, order.ErrNotPermitted)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject a driver not assigned to the order", func(t *testing.T) {
		o := newTestOrder(t)
		assigned := newActor(t, kernel.RoleDriver)
		advanceTo(t, o, order.StatusReady, assigned)
		require.NoError(t, o.AssignDriver(newActor(t, kernel.RoleAdmin), assigned.ID(), "Sam"))

		other := newActor(t, kernel.RoleDriver)
		err := o.AcceptDelivery(other, now)

		require.ErrorIs(t, err, order.ErrNotPermitted)
		assert.Equal(t, order.StatusReady, o.Status())
	})

	t.Run("should reject accepting a ready order with no driver assigned", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.StatusReady, newActor(t, kernel.RoleDriver))

		err := o.AcceptDelivery(newActor(t, kernel.RoleDriver), now)

		require.ErrorIs(t, err, order.ErrNotPermitted)
	})
}

func TestOrder_ConfirmDelivery_Pin(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("should fail with a wrong pin and stay delivering", func(t *testing.T) {
		o := newTestOrder(t)
		driver := newActor(t, kernel.RoleDriver)
		advanceTo(t, o, order.StatusDelivering, driver)

		wrong := "0000"
		if o.Pin().Matches(wrong) {
			wrong = "0001"
		}
		err := o.ConfirmDelivery(driver, wrong, now)

		require.ErrorIs(t, err, order.ErrIncorrectPin)
		assert.Equal(t, order.StatusDelivering, o.Status())
		assert.NotContains(t, err.Error(), o.Pin().String())
	})

	t.Run("should succeed after a retry with the correct pin", func(t *testing.T) {
		o := newTestOrder(t)
		driver := newActor(t, kernel.RoleDriver)
		advanceTo(t, o, order.StatusDelivering, driver)

		wrong := "0000"
		if o.Pin().Matches(wrong) {
			wrong = "0001"
		}
		require.Error(t, o.ConfirmDelivery(driver, wrong, now))
		require.NoError(t, o.ConfirmDelivery(driver, o.Pin().String(), now))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("should reject non-staff assignment", func(t *testing.T) {
		o := newTestOrder(t)
		driver := newActor(t, kernel.RoleDriver)

		err := o.AssignDriver(driver, driver.ID(), "Sam")

		require.ErrorIs(t, err, order.ErrNotPermitted)
		assert.Nil(t, o.DriverID())
	})

	t.Run("should allow reassignment before delivery starts", func(t *testing.T) {
		o := newTestOrder(t)
		staff := newActor(t, kernel.RoleAdmin)
		first := newActor(t, kernel.RoleDriver)
		second := newActor(t, kernel.RoleDriver)

		require.NoError(t, o.AssignDriver(staff, first.ID(), "Sam"))
		require.NoError(t, o.AssignDriver(staff, second.ID(), "Kim"))

		assert.True(t, o.DriverID().IsEqual(second.ID()))
		assert.Equal(t, "Kim", o.DriverName())
	})

	t.Run("should reject assignment once delivering", func(t *testing.T) {
		o := newTestOrder(t)
		driver := newActor(t, kernel.RoleDriver)
		advanceTo(t, o, order.StatusDelivering, driver)

		err := o.AssignDriver(newActor(t, kernel.RoleAdmin), kernel.NewUUID(), "Kim")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.True(t, o.DriverID().IsEqual(driver.ID()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored total without recomputing", func(t *testing.T) {
		pin, _ := order.PinFromString("1234")
		driverID := kernel.NewUUID()
		orderDate := time.Date(2024, 5, 20, 18, 30, 0, 0, time.UTC)

		// Stored total deliberately differs from what the items would sum
		// to today: historical orders must survive catalog changes.
		o, err := order.RestoreOrder(
			kernel.NewUUID(), newTestCustomer(t), newTestItems(t),
			money(t, 3500), money(t, 1000), money(t, 99999),
			order.PaymentTransfer, order.StatusDelivering, pin,
			orderDate, orderDate, &driverID, "Sam", "")

		require.NoError(t, err)
		assert.Equal(t, int64(99999), o.TotalAmount().Amount())
		assert.Equal(t, order.StatusDelivering, o.Status())
		assert.True(t, o.DriverID().IsEqual(driverID))
		assert.True(t, o.Pin().Matches("1234"))
	})

	t.Run("should fail with an invalid stored status", func(t *testing.T) {
		pin, _ := order.PinFromString("1234")

		_, err := order.RestoreOrder(
			kernel.NewUUID(), newTestCustomer(t), newTestItems(t),
			money(t, 0), money(t, 0), money(t, 100),
			order.PaymentCash, order.StatusUnknown, pin,
			time.Now(), time.Now(), nil, "", "")

		require.Error(t, err)
	})
}

func TestLineItem(t *testing.T) {
	t.Run("should compute line total", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), "Burger", money(t, 10000), "", 3, "")

		require.NoError(t, err)
		assert.Equal(t, int64(30000), item.Total().Amount())
	})

	t.Run("should reject zero and negative quantity", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := order.NewLineItem(kernel.NewUUID(), "Burger", money(t, 10000), "", q, "")
			require.Error(t, err, q)
		}
	})

	t.Run("should reject empty product name", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "", money(t, 10000), "", 1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
