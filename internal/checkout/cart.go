package checkout

import (
	"errors"
	"fmt"

	"tokopos/internal/domain"
)

// ErrInsufficientStock rejects a cart mutation that would exceed the
// available stock of a product. The cart is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnknownProduct rejects a quantity update for a product that is not in
// the current catalog.
var ErrUnknownProduct = errors.New("unknown product")

// Cart is the transient, unpersisted sequence of sale items being assembled
// before completion. Line order is the order products were first added.
type Cart struct {
	items []domain.SaleItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of product into the cart. Adding an already-present
// product increments the existing line instead of duplicating it; going past
// the product's current stock is rejected.
func (c *Cart) Add(product domain.Product) error {
	for i, item := range c.items {
		if item.ProductID != product.ID {
			continue
		}
		if item.Quantity >= product.Stock {
			return fmt.Errorf("%w: %s has %d in stock", ErrInsufficientStock, product.Name, product.Stock)
		}
		c.items[i].Quantity++
		return nil
	}

	if product.Stock < 1 {
		return fmt.Errorf("%w: %s is out of stock", ErrInsufficientStock, product.Name)
	}
	c.items = append(c.items, domain.SaleItem{
		ProductID:   product.ID,
		ProductName: product.Name, // snapshot
		Quantity:    1,
		Price:       product.Price, // snapshot
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity above the
// product's current stock is rejected with the cart unchanged; zero or
// negative removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int, products []domain.Product) error {
	var product *domain.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return ErrUnknownProduct
	}
	if quantity > product.Stock {
		return fmt.Errorf("%w: %s has %d in stock", ErrInsufficientStock, product.Name, product.Stock)
	}

	if quantity <= 0 {
		c.Remove(productID)
		return nil
	}
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (c *Cart) Remove(productID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the cart lines in encounter order.
func (c *Cart) Items() []domain.SaleItem {
	items := make([]domain.SaleItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total sums quantity times the snapshotted line price, not the live catalog
// price.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
