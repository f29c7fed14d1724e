package services

import (
	"sort"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// AnonymousCustomerLabel replaces missing customer names in reports.
const AnonymousCustomerLabel = "anonymous customer"

// monthlyBucketCount is the fixed number of trailing calendar months in the
// monthly sales series. The series ignores the selected time window on
// purpose: the dashboard always shows a year of context.
const monthlyBucketCount = 12

// AccessLevel controls which report sections a caller may see.
type AccessLevel int

const (
	// AccessLimited withholds monthly sales and payment figures and adds
	// the cancelled orders history as a partial substitute.
	AccessLimited AccessLevel = iota
	// AccessFull exposes every report section.
	AccessFull
)

// AccessLevelFor maps an actor role to a reporting access level.
// Roles outside the reporting staff are rejected.
func AccessLevelFor(role kernel.Role) (AccessLevel, error) {
	if role.HasFullReportingAccess() {
		return AccessFull, nil
	}
	if role == kernel.RoleHost {
		return AccessLimited, nil
	}
	return AccessLimited, kernel.ErrNotPermitted
}

// OrderRecord is a flattened order row for aggregation. Rows come from the
// read side and never go through the order aggregate.
type OrderRecord struct {
	ID                 kernel.UUID
	CustomerName       string
	Status             order.Status
	PaymentMethod      order.PaymentMethod
	TotalAmount        int64
	OrderDate          time.Time
	CancellationReason string
}

// ItemRecord is one sold line from a delivered order.
type ItemRecord struct {
	OrderID     kernel.UUID
	ProductName string
	Quantity    int
	OrderDate   time.Time
}

// Snapshot is the raw material for a report: order rows plus the sold lines
// of delivered orders. Rows may cover a broader period than the requested
// window, the calculator filters them itself.
type Snapshot struct {
	Orders         []OrderRecord
	DeliveredItems []ItemRecord
}

// GeneralStats summarizes the in-window order set.
type GeneralStats struct {
	TotalOrders     int
	DeliveredOrders int
	CancelledOrders int
	TotalSales      int64
	AvgTicket       int64
}

// MonthlyBucket is one calendar month of delivered sales. Month is
// formatted as "2006-01".
type MonthlyBucket struct {
	Month string
	Total int64
}

// PaymentStats splits delivered sales by payment method.
type PaymentStats struct {
	CashTotal     int64
	TransferTotal int64
	CashCount     int
	TransferCount int
	MostUsed      order.PaymentMethod
}

// ProductSales is the delivered quantity of one product.
type ProductSales struct {
	Name     string
	Quantity int
}

// ProductStats ranks products by delivered quantity inside the window.
type ProductStats struct {
	TopSeller *ProductSales
	Top5      []ProductSales
}

// CustomerSales is the delivered total of one customer.
type CustomerSales struct {
	Name  string
	Total int64
}

// CustomerStats ranks customers by delivered total inside the window.
type CustomerStats struct {
	Top5 []CustomerSales
}

// CancelledOrder is one entry of the cancellation history shown to
// limited-access callers.
type CancelledOrder struct {
	ID           kernel.UUID
	CustomerName string
	TotalAmount  int64
	Reason       string
	OrderDate    time.Time
}

// Report is the assembled statistics payload. MonthlySales and Payments are
// nil for limited access, CancelledHistory is nil for full access.
type Report struct {
	Window           TimeWindow
	GeneratedAt      time.Time
	General          GeneralStats
	MonthlySales     []MonthlyBucket
	Payments         *PaymentStats
	Products         ProductStats
	Customers        CustomerStats
	CancelledHistory []CancelledOrder
}

// StatsCalculator aggregates an order snapshot into a report. It is a pure
// domain service: the current time and the caller's access level arrive as
// parameters, never from ambient state.
//
// Aggregation rules:
//   - Sales figures count delivered orders only.
//   - The average ticket is zero when nothing was delivered.
//   - The monthly series always spans the trailing twelve calendar months,
//     with explicit zero buckets for empty months.
//   - Payment method ties resolve in favor of cash.
//   - Product ties keep the first product encountered in the snapshot.
type StatsCalculator struct{}

// NewStatsCalculator creates a new StatsCalculator instance.
func NewStatsCalculator() StatsCalculator {
	return StatsCalculator{}
}

// Calculate builds the report for the given window as of now. An empty
// snapshot yields the zero-valued report rather than an error.
func (s StatsCalculator) Calculate(snapshot Snapshot, window TimeWindow,
	now time.Time, access AccessLevel) Report {
	report := Report{
		Window:      window,
		GeneratedAt: now,
	}

	inWindow := make([]OrderRecord, 0, len(snapshot.Orders))
	for _, o := range snapshot.Orders {
		if window.Contains(o.OrderDate, now) {
			inWindow = append(inWindow, o)
		}
	}

	report.General = s.generalStats(inWindow)
	report.Products = s.productStats(snapshot.DeliveredItems, window, now)
	report.Customers = s.customerStats(inWindow)

	if access == AccessFull {
		report.MonthlySales = s.monthlySales(snapshot.Orders, now)
		report.Payments = s.paymentStats(inWindow)
		return report
	}

	report.CancelledHistory = s.cancelledHistory(inWindow)
	return report
}

func (s StatsCalculator) generalStats(orders []OrderRecord) GeneralStats {
	stats := GeneralStats{TotalOrders: len(orders)}

	for _, o := range orders {
		switch o.Status {
		case order.StatusDelivered:
			stats.DeliveredOrders++
			stats.TotalSales += o.TotalAmount
		case order.StatusCancelled:
			stats.CancelledOrders++
		}
	}

	if stats.DeliveredOrders > 0 {
		stats.AvgTicket = stats.TotalSales / int64(stats.DeliveredOrders)
	}

	return stats
}

// monthlySales ignores the selected window and always covers the trailing
// twelve calendar months ending at now, oldest bucket first.
func (s StatsCalculator) monthlySales(orders []OrderRecord, now time.Time) []MonthlyBucket {
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthlyBucketCount - 1), 0)

	buckets := make([]MonthlyBucket, monthlyBucketCount)
	index := make(map[string]int, monthlyBucketCount)
	for i := range buckets {
		month := firstMonth.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = MonthlyBucket{Month: month}
		index[month] = i
	}

	for _, o := range orders {
		if o.Status != order.StatusDelivered {
			continue
		}
		if i, ok := index[o.OrderDate.Format("2006-01")]; ok && !o.OrderDate.After(now) {
			buckets[i].Total += o.TotalAmount
		}
	}

	return buckets
}

func (s StatsCalculator) paymentStats(orders []OrderRecord) *PaymentStats {
	stats := &PaymentStats{MostUsed: order.PaymentCash}

	for _, o := range orders {
		if o.Status != order.StatusDelivered {
			continue
		}
		switch o.PaymentMethod {
		case order.PaymentCash:
			stats.CashCount++
			stats.CashTotal += o.TotalAmount
		case order.PaymentTransfer:
			stats.TransferCount++
			stats.TransferTotal += o.TotalAmount
		}
	}

	// Ties keep cash.
	if stats.TransferCount > stats.CashCount {
		stats.MostUsed = order.PaymentTransfer
	}

	return stats
}

func (s StatsCalculator) productStats(items []ItemRecord, window TimeWindow,
	now time.Time) ProductStats {
	quantities := make(map[string]int)
	var names []string

	for _, item := range items {
		if !window.Contains(item.OrderDate, now) {
			continue
		}
		if _, seen := quantities[item.ProductName]; !seen {
			names = append(names, item.ProductName)
		}
		quantities[item.ProductName] += item.Quantity
	}

	ranked := make([]ProductSales, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, ProductSales{Name: name, Quantity: quantities[name]})
	}
	// Stable sort keeps snapshot encounter order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	stats := ProductStats{Top5: topN(ranked, 5)}
	if len(ranked) > 0 {
		top := ranked[0]
		stats.TopSeller = &top
	}
	return stats
}

func (s StatsCalculator) customerStats(orders []OrderRecord) CustomerStats {
	totals := make(map[string]int64)
	var names []string

	for _, o := range orders {
		if o.Status != order.StatusDelivered {
			continue
		}
		name := o.CustomerName
		if name == "" {
			name = AnonymousCustomerLabel
		}
		if _, seen := totals[name]; !seen {
			names = append(names, name)
		}
		totals[name] += o.TotalAmount
	}

	ranked := make([]CustomerSales, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, CustomerSales{Name: name, Total: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	return CustomerStats{Top5: topN(ranked, 5)}
}

func (s StatsCalculator) cancelledHistory(orders []OrderRecord) []CancelledOrder {
	var history []CancelledOrder
	for _, o := range orders {
		if o.Status != order.StatusCancelled {
			continue
		}
		history = append(history, CancelledOrder{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
			Reason:       o.CancellationReason,
			OrderDate:    o.OrderDate,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].OrderDate.Before(history[j].OrderDate)
	})
	return history
}

func topN[T any](ranked []T, n int) []T {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
