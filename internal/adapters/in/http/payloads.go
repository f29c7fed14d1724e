package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
)

// CheckoutItem is one cart line of a checkout request.
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

// CheckoutRequest is the body of POST /api/v1/orders.
type CheckoutRequest struct {
	DeliveryAddress string         `json:"delivery_address"`
	PhoneNumber     string         `json:"phone_number"`
	PaymentMethod   string         `json:"payment_method"`
	DeliveryFee     int64          `json:"delivery_fee"`
	Tip             int64          `json:"tip"`
	Items           []CheckoutItem `json:"items"`
}

// CheckoutResponse returns the identifier of the newly placed order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:orderID/driver.
type AssignDriverRequest struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
}

// ConfirmDeliveryRequest carries the customer's delivery PIN.
type ConfirmDeliveryRequest struct {
	Pin string `json:"pin"`
}

// CancelOrderRequest carries an optional cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// PostChatMessageRequest is the body of POST /api/v1/orders/:orderID/chat.
type PostChatMessageRequest struct {
	Text string `json:"text"`
}

// PostChatMessageResponse returns the identifier of the stored message.
type PostChatMessageResponse struct {
	MessageID string `json:"message_id"`
}

// ChangeRoleRequest is the body of PATCH /api/v1/accounts/:accountID/role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// OrderItem is one line of an order in board and worklist responses.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// ActiveOrder is one row of the kitchen board.
type ActiveOrder struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	DeliveryAddress string      `json:"delivery_address"`
	Status          string      `json:"status"`
	TotalAmount     int64       `json:"total_amount"`
	OrderDate       time.Time   `json:"order_date"`
	DriverName      string      `json:"driver_name,omitempty"`
	Items           []OrderItem `json:"items"`
}

// DriverOrder is one order on a driver's worklist.
type DriverOrder struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	PhoneNumber     string    `json:"phone_number"`
	DeliveryAddress string    `json:"delivery_address"`
	Status          string    `json:"status"`
	TotalAmount     int64     `json:"total_amount"`
	PaymentMethod   string    `json:"payment_method"`
	OrderDate       time.Time `json:"order_date"`
}

// CustomerOrder is one order in a customer's history.
type CustomerOrder struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"`
	TotalAmount        int64     `json:"total_amount"`
	PaymentMethod      string    `json:"payment_method"`
	OrderDate          time.Time `json:"order_date"`
	DriverName         string    `json:"driver_name,omitempty"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
}

// ChatMessage is one message of an order's chat thread.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// GeneralStats summarizes the reported order set.
type GeneralStats struct {
	TotalOrders     int   `json:"total_orders"`
	DeliveredOrders int   `json:"delivered_orders"`
	CancelledOrders int   `json:"cancelled_orders"`
	TotalSales      int64 `json:"total_sales"`
	AvgTicket       int64 `json:"avg_ticket"`
}

// MonthlyBucket is one month of delivered sales, formatted as "2006-01".
type MonthlyBucket struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// PaymentStats splits delivered sales by payment method.
type PaymentStats struct {
	CashTotal     int64  `json:"cash_total"`
	TransferTotal int64  `json:"transfer_total"`
	CashCount     int    `json:"cash_count"`
	TransferCount int    `json:"transfer_count"`
	MostUsed      string `json:"most_used"`
}

// ProductSales is the delivered quantity of one product.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CustomerSales is the delivered total of one customer.
type CustomerSales struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// CancelledOrder is one entry of the cancellation history.
type CancelledOrder struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  int64     `json:"total_amount"`
	Reason       string    `json:"reason"`
	OrderDate    time.Time `json:"order_date"`
}

// StatsReport is the statistics payload returned by the stats endpoints.
// Monthly sales and payment stats are omitted for limited-access callers,
// the cancellation history is omitted for full-access ones.
type StatsReport struct {
	Window           string           `json:"window"`
	GeneratedAt      time.Time        `json:"generated_at"`
	General          GeneralStats     `json:"general"`
	MonthlySales     []MonthlyBucket  `json:"monthly_sales,omitempty"`
	Payments         *PaymentStats    `json:"payments,omitempty"`
	TopSeller        *ProductSales    `json:"top_seller,omitempty"`
	TopProducts      []ProductSales   `json:"top_products"`
	TopCustomers     []CustomerSales  `json:"top_customers"`
	CancelledHistory []CancelledOrder `json:"cancelled_history,omitempty"`
}

func toActiveOrders(rows []queries.GetActiveOrdersQueryResponse) []ActiveOrder {
	response := make([]ActiveOrder, len(rows))
	for i, row := range rows {
		items := make([]OrderItem, len(row.Items))
		for j, item := range row.Items {
			items[j] = OrderItem{
				Name:     item.Name,
				Quantity: item.Quantity,
				Note:     item.Note,
			}
		}

		response[i] = ActiveOrder{
			ID:              row.ID.String(),
			CustomerName:    row.CustomerName,
			DeliveryAddress: row.DeliveryAddress,
			Status:          row.Status,
			TotalAmount:     row.TotalAmount,
			OrderDate:       row.OrderDate,
			DriverName:      row.DriverName,
			Items:           items,
		}
	}
	return response
}

func toDriverOrders(rows []queries.GetDriverOrdersQueryResponse) []DriverOrder {
	response := make([]DriverOrder, len(rows))
	for i, row := range rows {
		response[i] = DriverOrder{
			ID:              row.ID.String(),
			CustomerName:    row.CustomerName,
			PhoneNumber:     row.PhoneNumber,
			DeliveryAddress: row.DeliveryAddress,
			Status:          row.Status,
			TotalAmount:     row.TotalAmount,
			PaymentMethod:   row.PaymentMethod,
			OrderDate:       row.OrderDate,
		}
	}
	return response
}

func toCustomerOrders(rows []queries.GetCustomerOrdersQueryResponse) []CustomerOrder {
	response := make([]CustomerOrder, len(rows))
	for i, row := range rows {
		response[i] = CustomerOrder{
			ID:                 row.ID.String(),
			Status:             row.Status,
			TotalAmount:        row.TotalAmount,
			PaymentMethod:      row.PaymentMethod,
			OrderDate:          row.OrderDate,
			DriverName:         row.DriverName,
			CancellationReason: row.CancellationReason,
		}
	}
	return response
}

func toChatMessages(rows []queries.GetChatHistoryQueryResponse) []ChatMessage {
	response := make([]ChatMessage, len(rows))
	for i, row := range rows {
		response[i] = ChatMessage{
			ID:         row.ID.String(),
			SenderID:   row.SenderID.String(),
			SenderName: row.SenderName,
			SenderRole: row.SenderRole,
			Text:       row.Text,
			SentAt:     row.SentAt,
		}
	}
	return response
}

func toStatsReport(report services.Report) StatsReport {
	response := StatsReport{
		Window:      report.Window.String(),
		GeneratedAt: report.GeneratedAt,
		General: GeneralStats{
			TotalOrders:     report.General.TotalOrders,
			DeliveredOrders: report.General.DeliveredOrders,
			CancelledOrders: report.General.CancelledOrders,
			TotalSales:      report.General.TotalSales,
			AvgTicket:       report.General.AvgTicket,
		},
		TopProducts:  make([]ProductSales, len(report.Products.Top5)),
		TopCustomers: make([]CustomerSales, len(report.Customers.Top5)),
	}

	for _, bucket := range report.MonthlySales {
		response.MonthlySales = append(response.MonthlySales, MonthlyBucket{
			Month: bucket.Month,
			Total: bucket.Total,
		})
	}

	if report.Payments != nil {
		response.Payments = &PaymentStats{
			CashTotal:     report.Payments.CashTotal,
			TransferTotal: report.Payments.TransferTotal,
			CashCount:     report.Payments.CashCount,
			TransferCount: report.Payments.TransferCount,
			MostUsed:      report.Payments.MostUsed.String(),
		}
	}

	if report.Products.TopSeller != nil {
		response.TopSeller = &ProductSales{
			Name:     report.Products.TopSeller.Name,
			Quantity: report.Products.TopSeller.Quantity,
		}
	}

	for i, product := range report.Products.Top5 {
		response.TopProducts[i] = ProductSales{
			Name:     product.Name,
			Quantity: product.Quantity,
		}
	}

	for i, customer := range report.Customers.Top5 {
		response.TopCustomers[i] = CustomerSales{
			Name:  customer.Name,
			Total: customer.Total,
		}
	}

	for _, cancelled := range report.CancelledHistory {
		response.CancelledHistory = append(response.CancelledHistory, CancelledOrder{
			ID:           cancelled.ID.String(),
			CustomerName: cancelled.CustomerName,
			TotalAmount:  cancelled.TotalAmount,
			Reason:       cancelled.Reason,
			OrderDate:    cancelled.OrderDate,
		})
	}

	return response
}
