// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The customer snapshot is embedded with a customer_ prefix and
// the line items live in a child table.
type OrderDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Customer           CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Items              []ItemDTO   `gorm:"foreignKey:OrderID;references:ID"`
	DeliveryFee        int64
	Tip                int64
	TotalAmount        int64
	PaymentMethod      int
	Status             int `gorm:"index"`
	Pin                string
	OrderDate          time.Time `gorm:"index"`
	StatusChangedAt    time.Time
	DriverID           *uuid.UUID `gorm:"type:uuid;index"`
	DriverName         string
	CancellationReason string
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the embedded customer snapshot within the orders table.
type CustomerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	PhoneNumber     string
	DeliveryAddress string
}

// ItemDTO represents one order line. Lines are written once at checkout and
// never updated afterwards.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Price     int64
	ImageURL  string
	Quantity  int
	Note      string
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Price:     item.Price().Amount(),
			ImageURL:  item.ImageURL(),
			Quantity:  item.Quantity(),
			Note:      item.Note(),
		})
	}

	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			ID:              aggregate.Customer().ID().Bytes(),
			Name:            aggregate.Customer().Name(),
			PhoneNumber:     aggregate.Customer().PhoneNumber(),
			DeliveryAddress: aggregate.Customer().DeliveryAddress(),
		},
		Items:              items,
		DeliveryFee:        aggregate.DeliveryFee().Amount(),
		Tip:                aggregate.Tip().Amount(),
		TotalAmount:        aggregate.TotalAmount().Amount(),
		PaymentMethod:      int(aggregate.PaymentMethod()),
		Status:             int(aggregate.Status()),
		Pin:                aggregate.Pin().String(),
		OrderDate:          aggregate.OrderDate(),
		StatusChangedAt:    aggregate.StatusChangedAt(),
		DriverID:           driverID,
		DriverName:         aggregate.DriverName(),
		CancellationReason: aggregate.CancellationReason(),
	}
}

// toDomain converts a database row back to an order aggregate using
// RestoreOrder, which keeps the stored total untouched.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.Customer.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(customerID, dto.Customer.Name,
		dto.Customer.PhoneNumber, dto.Customer.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	tip, err := kernel.NewMoney(dto.Tip)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	pin, err := order.PinFromString(dto.Pin)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return order.RestoreOrder(id, customer, items, deliveryFee, tip, totalAmount,
		order.PaymentMethod(dto.PaymentMethod), order.Status(dto.Status), pin,
		dto.OrderDate, dto.StatusChangedAt, driverID, dto.DriverName,
		dto.CancellationReason)
}

func itemToDomain(dto ItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, dto.Name, price, dto.ImageURL,
		dto.Quantity, dto.Note)
}
