package product

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was
	// not created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a checkout requests more units
	// than the catalog entry has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Category is the fixed set of menu sections a product belongs to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryStarter
	CategoryMain
	CategorySide
	CategoryDessert
	CategoryDrink
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "unknown",
		CategoryStarter: "starter",
		CategoryMain:    "main",
		CategorySide:    "side",
		CategoryDessert: "dessert",
		CategoryDrink:   "drink",
	}
}

// CategoryFromString parses a category name as stored externally.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if c != CategoryUnknown && str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks if the Category is one of the defined menu sections.
func (c Category) Validate() error {
	if c <= CategoryUnknown || c > CategoryDrink {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the lowercase name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Product is a catalog entry. Orders snapshot its name, price, and image at
// checkout, so later edits to a Product never affect existing orders.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	price         kernel.Money
	imageURL      string
	category      Category
	stockQuantity int

	isConstructed bool
}

// NewProduct creates a catalog entry with validated fields.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	imageURL string,
	category Category,
	stockQuantity int,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.imageURL = imageURL
	return p, nil
}

// RestoreProduct reconstructs a catalog entry from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	imageURL string,
	category Category,
	stockQuantity int,
) (*Product, error) {
	return NewProduct(id, name, description, price, imageURL, category, stockQuantity)
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the menu description. May be empty.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ImageURL returns the product image. May be empty.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// Category returns the menu section.
func (p *Product) Category() Category {
	return p.category
}

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// DecrementStock reserves quantity units at checkout. Fails with
// ErrInsufficientStock when fewer units remain, leaving stock unchanged.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stockQuantity {
		return fmt.Errorf("%w: %d requested, %d in stock", ErrInsufficientStock, quantity, p.stockQuantity)
	}

	p.stockQuantity -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	p.stockQuantity = stockQuantity
	return nil
}
