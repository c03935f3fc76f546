package report

import (
	"sort"
	"time"

	"tokopos/internal/domain"
)

const topProductLimit = 5

// ProductTotal accumulates quantity and revenue for one product across the
// filtered sales, using each line's own snapshotted name and price.
type ProductTotal struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type Summary struct {
	TotalRevenue     float64        `json:"total_revenue"`
	TransactionCount int            `json:"transaction_count"`
	TopProducts      []ProductTotal `json:"top_products"`
}

// Summarize reports over sales with CreatedAt >= since (no upper bound).
// Revenue sums the stored sale totals. Top products are ranked by quantity
// descending; ties keep encounter order; at most five entries. Pure
// function: no side effects, no I/O.
func Summarize(sales []domain.Sale, since time.Time) Summary {
	var summary Summary

	index := make(map[string]int)
	totals := make([]ProductTotal, 0, 16)
	for _, sale := range sales {
		if sale.CreatedAt.Before(since) {
			continue
		}
		summary.TotalRevenue += sale.Total
		summary.TransactionCount++

		for _, item := range sale.Items {
			i, seen := index[item.ProductID]
			if !seen {
				i = len(totals)
				index[item.ProductID] = i
				totals = append(totals, ProductTotal{ProductID: item.ProductID, Name: item.ProductName})
			}
			totals[i].Quantity += item.Quantity
			totals[i].Revenue += float64(item.Quantity) * item.Price
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Quantity > totals[j].Quantity
	})
	if len(totals) > topProductLimit {
		totals = totals[:topProductLimit]
	}
	summary.TopProducts = totals

	return summary
}

// ExpenseTotal sums expenses with CreatedAt >= since.
func ExpenseTotal(expenses []domain.Expense, since time.Time) float64 {
	total := 0.0
	for _, e := range expenses {
		if !e.CreatedAt.Before(since) {
			total += e.Amount
		}
	}
	return total
}

// LatestSales returns the most recent n sales, newest first. Sales are
// appended in creation order, so recency is positional.
func LatestSales(sales []domain.Sale, n int) []domain.Sale {
	if n < 1 || len(sales) == 0 {
		return nil
	}
	if n > len(sales) {
		n = len(sales)
	}
	latest := make([]domain.Sale, 0, n)
	for i := len(sales) - 1; i >= len(sales)-n; i-- {
		latest = append(latest, sales[i])
	}
	return latest
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the most recent Sunday. Weeks start
// on Sunday.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}
