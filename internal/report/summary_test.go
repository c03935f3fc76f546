package report

import (
	"fmt"
	"testing"
	"time"

	"tokopos/internal/domain"
)

func saleAt(t time.Time, total float64, items ...domain.SaleItem) domain.Sale {
	return domain.Sale{
		ID:        fmt.Sprintf("sale-%d", t.UnixNano()),
		Items:     items,
		Total:     total,
		CreatedAt: t,
	}
}

func TestSummarizeFiltersBySinceInclusive(t *testing.T) {
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		saleAt(midnight, 10, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 1, Price: 10}),
		saleAt(midnight.AddDate(0, 0, -8), 20, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 2, Price: 10}),
	}

	summary := Summarize(sales, midnight)
	if summary.TotalRevenue != 10 {
		t.Fatalf("expected revenue 10, got %v", summary.TotalRevenue)
	}
	if summary.TransactionCount != 1 {
		t.Fatalf("expected 1 transaction, got %d", summary.TransactionCount)
	}
}

func TestSummarizeUsesStoredTotal(t *testing.T) {
	// Revenue sums Sale.Total as stored, not a recomputation from items.
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		saleAt(since.Add(time.Hour), 42, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 1, Price: 1}),
	}

	if got := Summarize(sales, since).TotalRevenue; got != 42 {
		t.Fatalf("expected stored total 42, got %v", got)
	}
}

func TestTopProductsAccumulateAcrossSales(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		saleAt(since.Add(1*time.Hour), 10, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 2, Price: 5}),
		saleAt(since.Add(2*time.Hour), 15, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 3, Price: 5}),
	}

	summary := Summarize(sales, since)
	if len(summary.TopProducts) != 1 {
		t.Fatalf("expected 1 top product, got %d", len(summary.TopProducts))
	}
	top := summary.TopProducts[0]
	if top.Quantity != 5 || top.Revenue != 25 {
		t.Fatalf("expected quantity 5 revenue 25, got %d/%v", top.Quantity, top.Revenue)
	}
}

func TestTopProductsRankingAndTieBreak(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		saleAt(since.Add(1*time.Hour), 0,
			domain.SaleItem{ProductID: "a", ProductName: "A", Quantity: 2, Price: 1},
			domain.SaleItem{ProductID: "b", ProductName: "B", Quantity: 5, Price: 1},
			domain.SaleItem{ProductID: "c", ProductName: "C", Quantity: 2, Price: 1},
		),
	}

	top := Summarize(sales, since).TopProducts
	if top[0].ProductID != "b" {
		t.Fatalf("expected b first, got %s", top[0].ProductID)
	}
	// a and c tie on quantity; encounter order must hold.
	if top[1].ProductID != "a" || top[2].ProductID != "c" {
		t.Fatalf("tie-break must keep encounter order, got %s then %s", top[1].ProductID, top[2].ProductID)
	}
}

func TestTopProductsTruncatesToFive(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	items := make([]domain.SaleItem, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, domain.SaleItem{
			ProductID:   fmt.Sprintf("p%d", i),
			ProductName: fmt.Sprintf("P%d", i),
			Quantity:    10 - i,
			Price:       1,
		})
	}
	sales := []domain.Sale{saleAt(since.Add(time.Hour), 0, items...)}

	top := Summarize(sales, since).TopProducts
	if len(top) != 5 {
		t.Fatalf("expected 5 top products, got %d", len(top))
	}
	if top[0].ProductID != "p0" || top[4].ProductID != "p4" {
		t.Fatalf("unexpected ranking: %v", top)
	}
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		saleAt(since.Add(1*time.Hour), 10, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 4, Price: 2}),
		saleAt(since.Add(2*time.Hour), 20, domain.SaleItem{ProductID: "p2", ProductName: "Roti", Quantity: 1, Price: 20}),
		saleAt(since.Add(3*time.Hour), 5, domain.SaleItem{ProductID: "p3", ProductName: "Susu", Quantity: 1, Price: 5}),
	}
	permuted := []domain.Sale{sales[2], sales[0], sales[1]}

	a := Summarize(sales, since)
	b := Summarize(permuted, since)
	if a.TotalRevenue != b.TotalRevenue || a.TransactionCount != b.TransactionCount {
		t.Fatalf("permuting input changed the summary: %+v vs %+v", a, b)
	}
}

func TestSummarizeIsPure(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	sales := []domain.Sale{
		saleAt(since.Add(time.Hour), 10, domain.SaleItem{ProductID: "p1", ProductName: "Apel", Quantity: 1, Price: 10}),
	}

	first := Summarize(sales, since)
	second := Summarize(sales, since)
	if first.TotalRevenue != second.TotalRevenue || len(first.TopProducts) != len(second.TopProducts) {
		t.Fatalf("repeated calls diverged")
	}
	if sales[0].Total != 10 || sales[0].Items[0].Quantity != 1 {
		t.Fatalf("input must not be mutated")
	}
}

func TestExpenseTotal(t *testing.T) {
	since := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		{ID: "e1", Description: "electricity", Amount: 30, CreatedAt: since.Add(time.Hour)},
		{ID: "e2", Description: "rent", Amount: 100, CreatedAt: since.AddDate(0, 0, -1)},
		{ID: "e3", Description: "ice", Amount: 5, CreatedAt: since},
	}

	if got := ExpenseTotal(expenses, since); got != 35 {
		t.Fatalf("expected 35, got %v", got)
	}
}

func TestLatestSalesNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	sales := make([]domain.Sale, 0, 7)
	for i := 0; i < 7; i++ {
		sales = append(sales, saleAt(base.Add(time.Duration(i)*time.Hour), float64(i)))
	}

	latest := LatestSales(sales, 5)
	if len(latest) != 5 {
		t.Fatalf("expected 5 sales, got %d", len(latest))
	}
	if latest[0].Total != 6 || latest[4].Total != 2 {
		t.Fatalf("expected newest first, got %v ... %v", latest[0].Total, latest[4].Total)
	}

	if got := LatestSales(sales[:2], 5); len(got) != 2 {
		t.Fatalf("expected all sales when fewer than n, got %d", len(got))
	}
	if got := LatestSales(nil, 5); got != nil {
		t.Fatalf("expected nil for no sales")
	}
}

func TestStartOfDayAndWeek(t *testing.T) {
	// 2026-03-11 is a Wednesday.
	wednesday := time.Date(2026, 3, 11, 15, 30, 45, 0, time.Local)

	day := StartOfDay(wednesday)
	if day.Hour() != 0 || day.Day() != 11 {
		t.Fatalf("unexpected start of day: %v", day)
	}

	week := StartOfWeek(wednesday)
	if week.Weekday() != time.Sunday {
		t.Fatalf("week must start on Sunday, got %v", week.Weekday())
	}
	if week.Day() != 8 || week.Hour() != 0 {
		t.Fatalf("expected Sunday March 8 midnight, got %v", week)
	}

	sunday := time.Date(2026, 3, 8, 10, 0, 0, 0, time.Local)
	if got := StartOfWeek(sunday); got.Day() != 8 {
		t.Fatalf("a Sunday belongs to its own week, got %v", got)
	}
}
