package checkout

import (
	"time"

	"tokopos/internal/domain"
	"tokopos/internal/xid"
)

// Result pairs the new sale with the product collection it was applied to.
// Both must be persisted together by the caller, products first.
type Result struct {
	Sale     domain.Sale
	Products []domain.Product
}

// Complete turns a cart into a sale and decrements the stock of every
// referenced product. Products not in the cart are returned unchanged. An
// empty cart is a no-op, not an error.
//
// Stock is not re-validated here: cart mutations already enforced
// quantity <= stock, and with a single writer no other operation can change
// stock between cart edit and completion. A stale cart in a multi-writer
// setting could oversell.
func Complete(items []domain.SaleItem, products []domain.Product, customerID string, now time.Time) *Result {
	if len(items) == 0 {
		return nil
	}

	lines := make([]domain.SaleItem, len(items))
	copy(lines, items)

	total := 0.0
	quantityByProduct := make(map[string]int, len(lines))
	for _, item := range lines {
		total += float64(item.Quantity) * item.Price
		quantityByProduct[item.ProductID] += item.Quantity
	}

	updated := make([]domain.Product, len(products))
	copy(updated, products)
	for i, p := range updated {
		if sold, ok := quantityByProduct[p.ID]; ok {
			updated[i].Stock = p.Stock - sold
		}
	}

	return &Result{
		Sale: domain.Sale{
			ID:         xid.New("sale"),
			Items:      lines,
			Total:      total,
			CustomerID: customerID,
			CreatedAt:  now,
		},
		Products: updated,
	}
}
