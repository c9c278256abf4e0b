// Package client is a typed HTTP client for the transaction API.
//
// Every method performs exactly one request. There are no retries and no
// caching. Failures are deliberately opaque: any transport error or
// non-success status is reported as a wrapped ErrRequest, callers must not
// assume anything beyond "the operation did not complete".
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrRequest is returned for every failed request.
var ErrRequest = errors.New("the request could not be completed")

// TransactionType mirrors the wire encoding of the transaction type.
type TransactionType uint8

const (
	TypeIncome  TransactionType = 0
	TypeExpense TransactionType = 1
)

// Transaction is the API representation of a transaction.
type Transaction struct {
	ID       uint64          `json:"id,omitempty"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Type     TransactionType `json:"type"`
	Notes    string          `json:"notes,omitempty"`
}

// Client calls the transaction API of a backend instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the backend at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/transaction",
		httpClient: httpClient,
	}
}

// Transactions returns all transactions, most recent first.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	return c.list(ctx, "", nil)
}

// TransactionsOrderedByAmount returns all transactions ordered by amount.
// Every order other than "asc" is treated as "desc".
func (c *Client) TransactionsOrderedByAmount(ctx context.Context, order string) ([]Transaction, error) {
	return c.list(ctx, "/ordered-by-amount", url.Values{"order": {order}})
}

// TransactionsByExactAmount returns all transactions with exactly the given amount.
func (c *Client) TransactionsByExactAmount(ctx context.Context, amount decimal.Decimal) ([]Transaction, error) {
	return c.list(ctx, "/by-exact-amount/"+amount.String(), nil)
}

// TransactionsGreaterThan returns all transactions with an amount strictly
// greater than the given one.
func (c *Client) TransactionsGreaterThan(ctx context.Context, amount decimal.Decimal) ([]Transaction, error) {
	return c.list(ctx, "/greater-than/"+amount.String(), nil)
}

// TransactionsLessThan returns all transactions with an amount strictly less
// than the given one.
func (c *Client) TransactionsLessThan(ctx context.Context, amount decimal.Decimal) ([]Transaction, error) {
	return c.list(ctx, "/less-than/"+amount.String(), nil)
}

// TransactionsInRange returns all transactions with min <= amount <= max.
func (c *Client) TransactionsInRange(ctx context.Context, min, max decimal.Decimal) ([]Transaction, error) {
	return c.list(ctx, "/by-amount-range", url.Values{
		"min": {min.String()},
		"max": {max.String()},
	})
}

// TransactionsByType returns all transactions of the given type.
func (c *Client) TransactionsByType(ctx context.Context, t TransactionType) ([]Transaction, error) {
	return c.list(ctx, "", url.Values{"type": {fmt.Sprint(uint8(t))}})
}

// IncomeTransactions returns all income transactions.
func (c *Client) IncomeTransactions(ctx context.Context) ([]Transaction, error) {
	return c.TransactionsByType(ctx, TypeIncome)
}

// ExpenseTransactions returns all expense transactions.
func (c *Client) ExpenseTransactions(ctx context.Context) ([]Transaction, error) {
	return c.TransactionsByType(ctx, TypeExpense)
}

// Transaction returns a single transaction.
func (c *Client) Transaction(ctx context.Context, id uint64) (Transaction, error) {
	var transaction Transaction
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", id), nil, nil, &transaction)
	return transaction, err
}

// Create stores a new transaction and returns it with the assigned ID.
func (c *Client) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	var created Transaction
	err := c.do(ctx, http.MethodPost, "/create", nil, &transaction, &created)
	return created, err
}

// Update replaces the transaction with the given ID. The ID of the passed
// transaction must match.
func (c *Client) Update(ctx context.Context, id uint64, transaction Transaction) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/%d", id), nil, &transaction, nil)
}

// Delete permanently removes a transaction.
func (c *Client) Delete(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%d", id), nil, nil, nil)
}

func (c *Client) list(ctx context.Context, path string, query url.Values) ([]Transaction, error) {
	var transactions []Transaction
	err := c.do(ctx, http.MethodGet, path, query, nil, &transactions)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// do performs a single round trip. The response body is decoded into target
// when target is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, requestURL, ErrRequest)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, requestURL, ErrRequest)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, requestURL, ErrRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s %s: %w", method, requestURL, ErrRequest)
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%s %s: %w", method, requestURL, ErrRequest)
	}

	return nil
}
