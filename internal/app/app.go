package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tokopos/internal/checkout"
	"tokopos/internal/domain"
	"tokopos/internal/report"
	"tokopos/internal/session"
	"tokopos/internal/store"
	"tokopos/internal/xid"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotManager       = errors.New("manager role required")
	ErrOffline          = errors.New("cannot sync while offline")
	ErrSyncBusy         = errors.New("sync already in progress")
)

// App owns the in-memory mirror of every persisted collection and is the
// only writer. Screens receive copies and submit mutations back through App,
// which re-persists the full collection synchronously after every change.
// Every failure path leaves prior state intact.
type App struct {
	kv        store.KV
	sessions  *session.Manager
	now       func() time.Time
	syncDelay time.Duration

	products  []domain.Product
	customers []domain.Customer
	sales     []domain.Sale
	expenses  []domain.Expense
	user      *domain.User

	view    domain.View
	online  bool
	syncing bool
}

type Option func(*App)

// WithClock overrides the wall-clock source used for createdAt stamps and
// report windows.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithSyncDelay sets the simulated sync duration.
func WithSyncDelay(d time.Duration) Option {
	return func(a *App) { a.syncDelay = d }
}

func New(kv store.KV, sessions *session.Manager, opts ...Option) *App {
	a := &App{
		kv:        kv,
		sessions:  sessions,
		now:       time.Now,
		syncDelay: 2 * time.Second,
		view:      domain.ViewDashboard,
		online:    true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load populates the mirrors from the store, substituting defaults for
// absent or unreadable payloads, and restores the previous session when its
// token is still valid.
func (a *App) Load(ctx context.Context) {
	a.products = store.Read(ctx, a.kv, store.KeyProducts, domain.SeedProducts())
	a.customers = store.Read(ctx, a.kv, store.KeyCustomers, []domain.Customer{})
	a.sales = store.Read(ctx, a.kv, store.KeySales, []domain.Sale{})
	a.expenses = store.Read(ctx, a.kv, store.KeyExpenses, []domain.Expense{})

	a.user = nil
	if saved := store.Read[*domain.User](ctx, a.kv, store.KeyUser, nil); saved != nil {
		token := store.Read(ctx, a.kv, store.KeySessionToken, "")
		restored, err := a.sessions.Restore(token)
		if err != nil {
			log.Printf("[app] session for %s not restored: %v", saved.Email, err)
			a.clearSession(ctx)
		} else {
			a.user = &restored
		}
	}
}

// --- products -------------------------------------------------------------

func (a *App) Products() []domain.Product {
	products := make([]domain.Product, len(a.products))
	copy(products, a.products)
	return products
}

// SaveProduct creates a product (empty ID) or replaces the one with the same
// ID. Manager only.
func (a *App) SaveProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := a.requireManager(); err != nil {
		return domain.Product{}, err
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Barcode = strings.TrimSpace(p.Barcode)
	if p.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: product name required", ErrValidation)
	}
	if p.Price < 0 {
		return domain.Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.Stock < 0 {
		return domain.Product{}, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	if p.ID == "" {
		p.ID = xid.New("prod")
		updated := append(a.Products(), p)
		if err := store.Write(ctx, a.kv, store.KeyProducts, updated); err != nil {
			return domain.Product{}, err
		}
		a.products = updated
		return p, nil
	}

	updated := a.Products()
	for i := range updated {
		if updated[i].ID == p.ID {
			updated[i] = p
			if err := store.Write(ctx, a.kv, store.KeyProducts, updated); err != nil {
				return domain.Product{}, err
			}
			a.products = updated
			return p, nil
		}
	}
	return domain.Product{}, store.ErrNotFound
}

// DeleteProduct removes a product by id. Manager only; the confirmation gate
// lives in the UI layer.
func (a *App) DeleteProduct(ctx context.Context, productID string) error {
	if err := a.requireManager(); err != nil {
		return err
	}

	updated := make([]domain.Product, 0, len(a.products))
	found := false
	for _, p := range a.products {
		if p.ID == productID {
			found = true
			continue
		}
		updated = append(updated, p)
	}
	if !found {
		return store.ErrNotFound
	}
	if err := store.Write(ctx, a.kv, store.KeyProducts, updated); err != nil {
		return err
	}
	a.products = updated
	return nil
}

// --- customers ------------------------------------------------------------

func (a *App) Customers() []domain.Customer {
	customers := make([]domain.Customer, len(a.customers))
	copy(customers, a.customers)
	return customers
}

func (a *App) SaveCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := a.requireUser(); err != nil {
		return domain.Customer{}, err
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" {
		return domain.Customer{}, fmt.Errorf("%w: customer name required", ErrValidation)
	}

	updated := a.Customers()
	if c.ID == "" {
		c.ID = xid.New("cust")
		updated = append(updated, c)
	} else {
		found := false
		for i := range updated {
			if updated[i].ID == c.ID {
				updated[i] = c
				found = true
				break
			}
		}
		if !found {
			return domain.Customer{}, store.ErrNotFound
		}
	}
	if err := store.Write(ctx, a.kv, store.KeyCustomers, updated); err != nil {
		return domain.Customer{}, err
	}
	a.customers = updated
	return c, nil
}

func (a *App) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	updated := make([]domain.Customer, 0, len(a.customers))
	found := false
	for _, c := range a.customers {
		if c.ID == customerID {
			found = true
			continue
		}
		updated = append(updated, c)
	}
	if !found {
		return store.ErrNotFound
	}
	if err := store.Write(ctx, a.kv, store.KeyCustomers, updated); err != nil {
		return err
	}
	a.customers = updated
	return nil
}

// --- expenses -------------------------------------------------------------

func (a *App) Expenses() []domain.Expense {
	expenses := make([]domain.Expense, len(a.expenses))
	copy(expenses, a.expenses)
	return expenses
}

// AddExpense records a new expense. Expenses are created and deleted, never
// edited.
func (a *App) AddExpense(ctx context.Context, description string, amount float64) (domain.Expense, error) {
	if err := a.requireUser(); err != nil {
		return domain.Expense{}, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Expense{}, fmt.Errorf("%w: description required", ErrValidation)
	}
	if amount <= 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	expense := domain.Expense{
		ID:          xid.New("exp"),
		Description: description,
		Amount:      amount,
		CreatedAt:   a.now(),
	}
	updated := append(a.Expenses(), expense)
	if err := store.Write(ctx, a.kv, store.KeyExpenses, updated); err != nil {
		return domain.Expense{}, err
	}
	a.expenses = updated
	return expense, nil
}

func (a *App) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	updated := make([]domain.Expense, 0, len(a.expenses))
	found := false
	for _, e := range a.expenses {
		if e.ID == expenseID {
			found = true
			continue
		}
		updated = append(updated, e)
	}
	if !found {
		return store.ErrNotFound
	}
	if err := store.Write(ctx, a.kv, store.KeyExpenses, updated); err != nil {
		return err
	}
	a.expenses = updated
	return nil
}

// --- sales ----------------------------------------------------------------

func (a *App) Sales() []domain.Sale {
	sales := make([]domain.Sale, len(a.sales))
	copy(sales, a.sales)
	return sales
}

// CompleteSale applies a finished cart: it appends a sale and decrements the
// stock of every referenced product, persisting products before sales. An
// empty cart returns (nil, nil). The two writes are not atomic at the
// storage layer; atomicity is the ordering contract here.
func (a *App) CompleteSale(ctx context.Context, items []domain.SaleItem, customerID string) (*domain.Sale, error) {
	if err := a.requireUser(); err != nil {
		return nil, err
	}

	result := checkout.Complete(items, a.products, customerID, a.now())
	if result == nil {
		return nil, nil
	}

	// Mutate first, write after: the writes reflect the in-memory state.
	a.products = result.Products
	a.sales = append(a.sales, result.Sale)

	if err := store.Write(ctx, a.kv, store.KeyProducts, a.products); err != nil {
		return nil, err
	}
	if err := store.Write(ctx, a.kv, store.KeySales, a.sales); err != nil {
		return nil, err
	}

	sale := result.Sale
	return &sale, nil
}

// --- reports --------------------------------------------------------------

func (a *App) Summarize(since time.Time) report.Summary {
	return report.Summarize(a.sales, since)
}

func (a *App) SummarizeToday() report.Summary {
	return report.Summarize(a.sales, report.StartOfDay(a.now()))
}

func (a *App) SummarizeWeek() report.Summary {
	return report.Summarize(a.sales, report.StartOfWeek(a.now()))
}

// DashboardStats is the landing-screen digest: today's trading plus the
// latest sales.
type DashboardStats struct {
	TodayRevenue      float64
	TodayTransactions int
	TodayExpenses     float64
	LatestSales       []domain.Sale
}

func (a *App) Dashboard() DashboardStats {
	dayStart := report.StartOfDay(a.now())
	today := report.Summarize(a.sales, dayStart)
	return DashboardStats{
		TodayRevenue:      today.TotalRevenue,
		TodayTransactions: today.TransactionCount,
		TodayExpenses:     report.ExpenseTotal(a.expenses, dayStart),
		LatestSales:       report.LatestSales(a.sales, 5),
	}
}

// --- session --------------------------------------------------------------

func (a *App) IsAuthenticated() bool {
	return a.user != nil
}

func (a *App) CurrentUser() (domain.User, bool) {
	if a.user == nil {
		return domain.User{}, false
	}
	return *a.user, true
}

// Login activates a new user unconditionally and persists the session slot.
func (a *App) Login(ctx context.Context, email string, isManager bool) (domain.User, error) {
	user, token, err := a.sessions.Login(email, isManager)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := store.Write(ctx, a.kv, store.KeyUser, &user); err != nil {
		return domain.User{}, err
	}
	if err := store.Write(ctx, a.kv, store.KeySessionToken, token); err != nil {
		return domain.User{}, err
	}

	a.user = &user
	a.view = domain.ViewDashboard
	return user, nil
}

func (a *App) Logout(ctx context.Context) {
	a.clearSession(ctx)
}

func (a *App) clearSession(ctx context.Context) {
	a.user = nil
	if err := store.Write[*domain.User](ctx, a.kv, store.KeyUser, nil); err != nil {
		log.Printf("[app] WARN: failed to clear user slot: %v", err)
	}
	if err := store.Write(ctx, a.kv, store.KeySessionToken, ""); err != nil {
		log.Printf("[app] WARN: failed to clear session token: %v", err)
	}
}

// --- view router ----------------------------------------------------------

func (a *App) View() domain.View {
	return a.view
}

// Navigate selects the active screen. Pure state; unauthenticated users have
// no screen to go to besides the login flow.
func (a *App) Navigate(view domain.View) error {
	if !a.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !view.Valid() {
		return fmt.Errorf("%w: unknown view %q", ErrValidation, view)
	}
	a.view = view
	return nil
}

// --- sync -----------------------------------------------------------------

func (a *App) Online() bool {
	return a.online
}

func (a *App) SetOnline(online bool) {
	a.online = online
}

func (a *App) Syncing() bool {
	return a.syncing
}

// Sync simulates a data synchronization: a fixed delay with no actual
// transfer. Offline fails immediately without starting the delay; a sync
// already in flight is rejected.
func (a *App) Sync(ctx context.Context) error {
	if !a.online {
		return ErrOffline
	}
	if a.syncing {
		return ErrSyncBusy
	}

	a.syncing = true
	defer func() { a.syncing = false }()

	log.Printf("[app] starting data sync")
	select {
	case <-time.After(a.syncDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[app] sync complete")
	return nil
}

// --- guards ---------------------------------------------------------------

func (a *App) requireUser() error {
	if a.user == nil {
		return ErrNotAuthenticated
	}
	return nil
}

func (a *App) requireManager() error {
	if a.user == nil {
		return ErrNotAuthenticated
	}
	if !a.user.IsManager {
		return ErrNotManager
	}
	return nil
}
