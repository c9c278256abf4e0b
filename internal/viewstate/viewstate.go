// Package viewstate holds the client-side mirror of the transaction list.
//
// The container tracks the displayed transactions together with a loading
// flag and the last error message, and notifies subscribed observers after
// every change. It is a derived copy of the server state, not the source of
// truth: every mutating action reconciles it from the gateway result.
package viewstate

import (
	"context"
	"sync"

	"github.com/finance-tracker/backend/internal/client"
	"github.com/shopspring/decimal"
)

// Gateway is the part of the transaction API client the container uses.
type Gateway interface {
	Transactions(ctx context.Context) ([]client.Transaction, error)
	TransactionsOrderedByAmount(ctx context.Context, order string) ([]client.Transaction, error)
	TransactionsInRange(ctx context.Context, min, max decimal.Decimal) ([]client.Transaction, error)
	TransactionsByType(ctx context.Context, t client.TransactionType) ([]client.Transaction, error)
	Create(ctx context.Context, transaction client.Transaction) (client.Transaction, error)
	Delete(ctx context.Context, id uint64) error
}

// State is a snapshot of the observable state.
type State struct {
	Transactions []client.Transaction // The currently displayed transactions
	Loading      bool                 // True exactly while a request is in flight
	Err          string               // The last failure message, empty after a success
}

// Container is the observable view state. All methods are safe for
// concurrent use. Actions that hit the gateway block until the request
// resolves, observers are notified when an action starts and when it
// resolves.
//
// Concurrently running actions resolve independently: whichever resolves
// last determines the displayed list, there is no preference for the action
// that was issued last.
type Container struct {
	mu           sync.Mutex
	gateway      Gateway
	transactions []client.Transaction
	loading      bool
	err          string
	observers    []func()
}

func New(gateway Gateway) *Container {
	return &Container{
		gateway: gateway,
	}
}

// Subscribe registers an observer that is called after every state change.
func (c *Container) Subscribe(observer func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, observer)
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	transactions := make([]client.Transaction, len(c.transactions))
	copy(transactions, c.transactions)

	return State{
		Transactions: transactions,
		Loading:      c.loading,
		Err:          c.err,
	}
}

// Load replaces the list with all transactions.
func (c *Container) Load(ctx context.Context) {
	c.begin()
	transactions, err := c.gateway.Transactions(ctx)
	c.resolveList(transactions, err, "Failed to load transactions")
}

// SortByAmount replaces the list with all transactions ordered by amount.
func (c *Container) SortByAmount(ctx context.Context, order string) {
	c.begin()
	transactions, err := c.gateway.TransactionsOrderedByAmount(ctx, order)
	c.resolveList(transactions, err, "Failed to sort transactions")
}

// FilterByAmountRange replaces the list with the transactions in the given
// inclusive amount range. When either bound is unset the filter degrades to
// a full unfiltered reload.
func (c *Container) FilterByAmountRange(ctx context.Context, min, max *decimal.Decimal) {
	if min == nil || max == nil {
		c.Load(ctx)
		return
	}

	c.begin()
	transactions, err := c.gateway.TransactionsInRange(ctx, *min, *max)
	c.resolveList(transactions, err, "Failed to filter transactions")
}

// FilterByType replaces the list with the transactions of the given type.
func (c *Container) FilterByType(ctx context.Context, t client.TransactionType) {
	c.begin()
	transactions, err := c.gateway.TransactionsByType(ctx, t)
	c.resolveList(transactions, err, "Failed to filter transactions")
}

// ClearFilters reloads the full unfiltered list.
func (c *Container) ClearFilters(ctx context.Context) {
	c.Load(ctx)
}

// Add creates a transaction and appends the stored record to the list.
//
// The list is not re-fetched. After a sort or filter the displayed order can
// therefore diverge from the server ordering until the next list action.
func (c *Container) Add(ctx context.Context, transaction client.Transaction) {
	c.begin()
	created, err := c.gateway.Create(ctx, transaction)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.err = "Failed to create transaction"
	} else {
		c.transactions = append(c.transactions, created)
	}
	c.mu.Unlock()

	c.notify()
}

// Remove deletes a transaction and removes it from the list without a
// re-fetch.
func (c *Container) Remove(ctx context.Context, id uint64) {
	c.begin()
	err := c.gateway.Delete(ctx, id)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.err = "Failed to delete transaction"
	} else {
		remaining := c.transactions[:0:0]
		for _, transaction := range c.transactions {
			if transaction.ID != id {
				remaining = append(remaining, transaction)
			}
		}
		c.transactions = remaining
	}
	c.mu.Unlock()

	c.notify()
}

// TotalIncome is the sum of all income amounts in the displayed list.
func (c *Container) TotalIncome() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sumByType(c.transactions, client.TypeIncome)
}

// TotalExpenses is the sum of all expense amounts in the displayed list.
func (c *Container) TotalExpenses() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sumByType(c.transactions, client.TypeExpense)
}

// Balance is TotalIncome minus TotalExpenses.
func (c *Container) Balance() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sumByType(c.transactions, client.TypeIncome).
		Sub(sumByType(c.transactions, client.TypeExpense))
}

// The aggregates are always recomputed from the displayed list, there is no
// separate accumulator that could drift.
func sumByType(transactions []client.Transaction, t client.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == t {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}

// begin marks the start of an action: loading is set and a previous error
// is cleared.
func (c *Container) begin() {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	c.notify()
}

// resolveList applies the result of a list-returning gateway call. On
// failure the displayed list stays untouched.
func (c *Container) resolveList(transactions []client.Transaction, err error, failure string) {
	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.err = failure
	} else {
		c.transactions = transactions
	}
	c.mu.Unlock()

	c.notify()
}

func (c *Container) notify() {
	c.mu.Lock()
	observers := make([]func(), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, observer := range observers {
		observer()
	}
}
