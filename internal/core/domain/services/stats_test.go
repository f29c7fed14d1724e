package services_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2025, 3, 12, 14, 45, 0, 0, time.UTC)

func deliveredOrder(customer string, total int64, method order.PaymentMethod,
	orderDate time.Time) services.OrderRecord {
	return services.OrderRecord{
		ID:            kernel.NewUUID(),
		CustomerName:  customer,
		Status:        order.StatusDelivered,
		PaymentMethod: method,
		TotalAmount:   total,
		OrderDate:     orderDate,
	}
}

func cancelledOrder(customer string, total int64, reason string,
	orderDate time.Time) services.OrderRecord {
	return services.OrderRecord{
		ID:                 kernel.NewUUID(),
		CustomerName:       customer,
		Status:             order.StatusCancelled,
		TotalAmount:        total,
		OrderDate:          orderDate,
		CancellationReason: reason,
	}
}

func TestAccessLevelFor(t *testing.T) {
	t.Run("admin and developer get full access", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleAdmin, kernel.RoleDeveloper} {
			access, err := services.AccessLevelFor(role)
			require.NoError(t, err)
			assert.Equal(t, services.AccessFull, access, role.String())
		}
	})

	t.Run("host gets limited access", func(t *testing.T) {
		access, err := services.AccessLevelFor(kernel.RoleHost)
		require.NoError(t, err)
		assert.Equal(t, services.AccessLimited, access)
	})

	t.Run("customer and driver are rejected", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleDriver} {
			_, err := services.AccessLevelFor(role)
			require.ErrorIs(t, err, kernel.ErrNotPermitted, role.String())
		}
	})
}

func TestStatsCalculator_Calculate(t *testing.T) {
	calc := services.NewStatsCalculator()

	t.Run("delivered and cancelled orders split correctly", func(t *testing.T) {
		snapshot := services.Snapshot{Orders: []services.OrderRecord{
			deliveredOrder("Alice", 100, order.PaymentCash, statsNow.Add(-time.Hour)),
			deliveredOrder("Bob", 50, order.PaymentTransfer, statsNow.Add(-2*time.Hour)),
			cancelledOrder("Carol", 30, "changed my mind", statsNow.Add(-3*time.Hour)),
		}}

		report := calc.Calculate(snapshot, services.WindowDay, statsNow, services.AccessFull)

		assert.Equal(t, 3, report.General.TotalOrders)
		assert.Equal(t, 2, report.General.DeliveredOrders)
		assert.Equal(t, 1, report.General.CancelledOrders)
		assert.Equal(t, int64(150), report.General.TotalSales)
		assert.Equal(t, int64(75), report.General.AvgTicket)

		require.NotNil(t, report.Payments)
		assert.Equal(t, 1, report.Payments.CashCount)
		assert.Equal(t, 1, report.Payments.TransferCount)
		assert.Equal(t, order.PaymentCash, report.Payments.MostUsed,
			"equal counts resolve to cash")
	})

	t.Run("empty snapshot yields zero report", func(t *testing.T) {
		report := calc.Calculate(services.Snapshot{}, services.WindowAll, statsNow,
			services.AccessFull)

		assert.Zero(t, report.General.TotalOrders)
		assert.Zero(t, report.General.AvgTicket)
		assert.Nil(t, report.Products.TopSeller)
		assert.Empty(t, report.Products.Top5)
		require.Len(t, report.MonthlySales, 12)
		for _, bucket := range report.MonthlySales {
			assert.Zero(t, bucket.Total, bucket.Month)
		}
	})

	t.Run("window filters orders", func(t *testing.T) {
		snapshot := services.Snapshot{Orders: []services.OrderRecord{
			deliveredOrder("Alice", 100, order.PaymentCash, statsNow.Add(-time.Hour)),
			deliveredOrder("Bob", 200, order.PaymentCash, statsNow.AddDate(0, 0, -40)),
		}}

		report := calc.Calculate(snapshot, services.WindowMonth, statsNow, services.AccessFull)

		assert.Equal(t, 1, report.General.TotalOrders)
		assert.Equal(t, int64(100), report.General.TotalSales)
	})

	t.Run("monthly sales ignore the selected window", func(t *testing.T) {
		fortyDaysAgo := statsNow.AddDate(0, 0, -40)
		snapshot := services.Snapshot{Orders: []services.OrderRecord{
			deliveredOrder("Alice", 100, order.PaymentCash, statsNow.Add(-time.Hour)),
			deliveredOrder("Bob", 200, order.PaymentCash, fortyDaysAgo),
			// Too old for the trailing twelve months.
			deliveredOrder("Carol", 999, order.PaymentCash, statsNow.AddDate(-2, 0, 0)),
		}}

		report := calc.Calculate(snapshot, services.WindowDay, statsNow, services.AccessFull)

		require.Len(t, report.MonthlySales, 12)
		byMonth := map[string]int64{}
		for _, bucket := range report.MonthlySales {
			byMonth[bucket.Month] = bucket.Total
		}
		assert.Equal(t, int64(100), byMonth[statsNow.Format("2006-01")])
		assert.Equal(t, int64(200), byMonth[fortyDaysAgo.Format("2006-01")])
		assert.Equal(t, report.MonthlySales[0].Month,
			statsNow.AddDate(0, -11, 0).Format("2006-01"))
	})

	t.Run("product ranking with first-encountered tie break", func(t *testing.T) {
		snapshot := services.Snapshot{DeliveredItems: []services.ItemRecord{
			{OrderID: kernel.NewUUID(), ProductName: "Burger", Quantity: 3, OrderDate: statsNow.Add(-time.Hour)},
			{OrderID: kernel.NewUUID(), ProductName: "Pizza", Quantity: 2, OrderDate: statsNow.Add(-time.Hour)},
			{OrderID: kernel.NewUUID(), ProductName: "Salad", Quantity: 3, OrderDate: statsNow.Add(-time.Hour)},
			{OrderID: kernel.NewUUID(), ProductName: "Pizza", Quantity: 1, OrderDate: statsNow.Add(-time.Hour)},
		}}

		report := calc.Calculate(snapshot, services.WindowDay, statsNow, services.AccessFull)

		require.NotNil(t, report.Products.TopSeller)
		assert.Equal(t, "Burger", report.Products.TopSeller.Name,
			"all three sold 3, Burger came first")
		assert.Equal(t, 3, report.Products.TopSeller.Quantity)
		require.Len(t, report.Products.Top5, 3)
		assert.Equal(t, services.ProductSales{Name: "Pizza", Quantity: 3},
			report.Products.Top5[1], "quantities accumulate per name")
	})

	t.Run("top five products only", func(t *testing.T) {
		items := make([]services.ItemRecord, 0, 7)
		for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			items = append(items, services.ItemRecord{
				OrderID:     kernel.NewUUID(),
				ProductName: name,
				Quantity:    10 - i,
				OrderDate:   statsNow.Add(-time.Hour),
			})
		}

		report := calc.Calculate(services.Snapshot{DeliveredItems: items},
			services.WindowDay, statsNow, services.AccessFull)

		require.Len(t, report.Products.Top5, 5)
		assert.Equal(t, "A", report.Products.Top5[0].Name)
		assert.Equal(t, "E", report.Products.Top5[4].Name)
	})

	t.Run("customer ranking falls back to anonymous label", func(t *testing.T) {
		snapshot := services.Snapshot{Orders: []services.OrderRecord{
			deliveredOrder("Alice", 100, order.PaymentCash, statsNow.Add(-time.Hour)),
			deliveredOrder("", 40, order.PaymentCash, statsNow.Add(-time.Hour)),
			deliveredOrder("", 30, order.PaymentCash, statsNow.Add(-time.Hour)),
			deliveredOrder("Alice", 25, order.PaymentTransfer, statsNow.Add(-time.Hour)),
		}}

		report := calc.Calculate(snapshot, services.WindowDay, statsNow, services.AccessFull)

		require.Len(t, report.Customers.Top5, 2)
		assert.Equal(t, services.CustomerSales{Name: "Alice", Total: 125},
			report.Customers.Top5[0])
		assert.Equal(t, services.CustomerSales{Name: services.AnonymousCustomerLabel, Total: 70},
			report.Customers.Top5[1])
	})

	t.Run("limited access withholds monthly and payment sections", func(t *testing.T) {
		snapshot := services.Snapshot{Orders: []services.OrderRecord{
			deliveredOrder("Alice", 100, order.PaymentCash, statsNow.Add(-time.Hour)),
			cancelledOrder("Bob", 50, "kitchen closed", statsNow.Add(-2*time.Hour)),
		}}

		report := calc.Calculate(snapshot, services.WindowDay, statsNow, services.AccessLimited)

		assert.Nil(t, report.MonthlySales)
		assert.Nil(t, report.Payments)
		require.Len(t, report.CancelledHistory, 1)
		assert.Equal(t, "kitchen closed", report.CancelledHistory[0].Reason)
		assert.Equal(t, "Bob", report.CancelledHistory[0].CustomerName)
		assert.Equal(t, 2, report.General.TotalOrders, "general stats still present")
		assert.Equal(t, 1, report.General.CancelledOrders)
	})

	t.Run("cancelled history respects the window", func(t *testing.T) {
		snapshot := services.Snapshot{Orders: []services.OrderRecord{
			cancelledOrder("Bob", 50, "late", statsNow.AddDate(0, 0, -3)),
		}}

		report := calc.Calculate(snapshot, services.WindowDay, statsNow, services.AccessLimited)

		assert.Empty(t, report.CancelledHistory)
	})
}
