package domain

import "time"

type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
	Barcode string  `json:"barcode"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// SaleItem carries the product name and price as snapshots taken at sale
// time. Later catalog edits must not alter historical sales.
type SaleItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Sale is an append-only record of a completed transaction. Total is stored,
// not derived, and must always equal the recomputed sum over Items.
type Sale struct {
	ID         string     `json:"id"`
	Items      []SaleItem `json:"items"`
	Total      float64    `json:"total"`
	CustomerID string     `json:"customer_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is session-scoped; at most one is active at a time and its presence is
// the sole authentication signal.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	IsManager bool   `json:"is_manager"`
}

// View identifies the active screen. Pure state, no business logic.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewPOS       View = "pos"
	ViewProducts  View = "products"
	ViewCustomers View = "customers"
	ViewExpenses  View = "expenses"
	ViewReports   View = "reports"
)

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewPOS, ViewProducts, ViewCustomers, ViewExpenses, ViewReports:
		return true
	}
	return false
}

// SeedProducts returns the sample catalog a fresh store starts with.
func SeedProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Apel", Price: 5, Stock: 100, Barcode: "10001"},
		{ID: "p2", Name: "Roti", Price: 2, Stock: 200, Barcode: "10002"},
		{ID: "p3", Name: "Susu", Price: 8, Stock: 50, Barcode: "10003"},
		{ID: "p4", Name: "Telur (tray)", Price: 15, Stock: 80, Barcode: "10004"},
	}
}
