package commands_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role, role.String())
	require.NoError(t, err)
	return actor
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newTestProduct(t *testing.T, name string, price int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "", money(t, price), "",
		product.CategoryMain, stock)
	require.NoError(t, err)
	return p
}

func newPendingOrder(t *testing.T, customer kernel.Actor) *order.Order {
	t.Helper()

	snapshot, err := order.NewCustomer(customer.ID(), customer.Name(), "555-0101", "12 Main St")
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Burger", money(t, 10000), "", 2, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), snapshot, []order.LineItem{item},
		money(t, 3500), money(t, 1000), order.PaymentCash, testNow)
	require.NoError(t, err)
	return o
}

// deliveringOrder walks a fresh order to the delivering status with the
// given driver.
func deliveringOrder(t *testing.T, customer, driver kernel.Actor) *order.Order {
	t.Helper()

	o := newPendingOrder(t, customer)
	staff := newActor(t, kernel.RoleAdmin)
	require.NoError(t, o.StartCooking(staff, testNow))
	require.NoError(t, o.MarkReady(staff, testNow))
	require.NoError(t, o.AssignDriver(staff, driver.ID(), driver.Name()))
	require.NoError(t, o.AcceptDelivery(driver, testNow))
	return o
}
