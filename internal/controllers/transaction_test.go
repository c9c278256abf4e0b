package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransaction(t *testing.T, transaction models.Transaction, expectedStatus ...int) models.Transaction {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodPost, "http://example.com/api/transaction/create", transaction)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var created models.Transaction
	if recorder.Code == http.StatusCreated {
		test.DecodeResponse(t, &recorder, &created)
	}

	return created
}

func (suite *TestSuiteStandard) TestTransactionOptions() {
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Groceries", Amount: decimal.NewFromFloat(12.99), Type: models.TypeExpense})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Collection", "", http.StatusNoContent},
		{"Create", "/create", http.StatusNoContent},
		{"Import", "/import", http.StatusNoContent},
		{"Existing", "/1", http.StatusNoContent},
		{"Nonexistent", "/818", http.StatusNotFound},
		{"Invalid ID", "/notanumber", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/api/transaction%s", tt.path), "")
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	transaction := createTestTransaction(suite.T(), models.Transaction{
		Category: "Salary",
		Amount:   decimal.NewFromFloat(1000),
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:     models.TypeIncome,
		Notes:    "January paycheck",
	})

	assert.NotZero(suite.T(), transaction.ID)
	assert.Equal(suite.T(), "Salary", transaction.Category)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(1000)))
	assert.Equal(suite.T(), models.TypeIncome, transaction.Type)
	assert.Equal(suite.T(), "January paycheck", transaction.Notes)
}

func (suite *TestSuiteStandard) TestTransactionCreateLocationHeader() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/create", models.Transaction{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(14.03),
		Type:     models.TypeExpense,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &created)

	assert.Equal(suite.T(), fmt.Sprintf("/api/transaction/%d", created.ID), recorder.Header().Get("Location"))
}

func (suite *TestSuiteStandard) TestTransactionCreateDefaultsDate() {
	transaction := createTestTransaction(suite.T(), models.Transaction{
		Category: "Coffee",
		Amount:   decimal.NewFromFloat(3.50),
		Type:     models.TypeExpense,
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "Transaction date was not defaulted")
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	tests := []struct {
		name     string
		body     any
		contains string
	}{
		{"Broken body", `{ "category": 2" }`, "invalid or un-parseable data"},
		{"Empty body", "", "request body must not be empty"},
		{"No category", models.Transaction{Amount: decimal.NewFromFloat(10), Type: models.TypeExpense}, "the category must be set"},
		{"Negative amount", models.Transaction{Category: "Rent", Amount: decimal.NewFromFloat(-500), Type: models.TypeExpense}, "the amount must not be negative"},
		{"Invalid type", map[string]any{"category": "Rent", "amount": 500, "type": 7}, "the type must be 0 (income) or 1 (expense)"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/api/transaction/create", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, response.Error, tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	created := createTestTransaction(suite.T(), models.Transaction{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(14.03),
		Date:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Type:     models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transaction models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &transaction)

	assert.Equal(suite.T(), created.ID, transaction.ID)
	assert.Equal(suite.T(), "Groceries", transaction.Category)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(14.03)))
}

func (suite *TestSuiteStandard) TestTransactionGetNonexistent() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction/4000", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "there is no transaction matching your query", response.Error)
}

func (suite *TestSuiteStandard) TestTransactionGetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction/definitely-not-a-number", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGetAll() {
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Salary", Amount: decimal.NewFromFloat(1000), Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Type: models.TypeIncome})
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Rent", Amount: decimal.NewFromFloat(500), Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Type: models.TypeExpense})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions []models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &transactions)

	if !assert.Len(suite.T(), transactions, 2) {
		return
	}

	// Most recent first
	assert.Equal(suite.T(), "Rent", transactions[0].Category)
	assert.Equal(suite.T(), "Salary", transactions[1].Category)
}

func (suite *TestSuiteStandard) TestTransactionsGetEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions []models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	assert.Len(suite.T(), transactions, 0)
}

func (suite *TestSuiteStandard) TestTransactionsGetByType() {
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Salary", Amount: decimal.NewFromFloat(1000), Type: models.TypeIncome})
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Rent", Amount: decimal.NewFromFloat(500), Type: models.TypeExpense})

	tests := []struct {
		name     string
		query    string
		status   int
		expected int
	}{
		{"Income", "?type=0", http.StatusOK, 1},
		{"Expense", "?type=1", http.StatusOK, 1},
		{"Unknown type", "?type=7", http.StatusBadRequest, 0},
		{"Not a number", "?type=groceries", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/transaction%s", tt.query), "")
			assert.Equal(t, tt.status, recorder.Code)

			if recorder.Code == http.StatusOK {
				var transactions []models.Transaction
				test.DecodeResponse(t, &recorder, &transactions)
				assert.Len(t, transactions, tt.expected)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsOrderedByAmount() {
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Salary", Amount: decimal.NewFromFloat(1000), Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Type: models.TypeIncome})
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Rent", Amount: decimal.NewFromFloat(500), Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Type: models.TypeExpense})

	tests := []struct {
		name       string
		query      string
		categories []string
	}{
		{"Ascending", "?order=asc", []string{"Rent", "Salary"}},
		{"Descending", "?order=desc", []string{"Salary", "Rent"}},
		{"Default", "", []string{"Salary", "Rent"}},
		{"Unknown order falls back to descending", "?order=sideways", []string{"Salary", "Rent"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/transaction/ordered-by-amount%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var transactions []models.Transaction
			test.DecodeResponse(t, &recorder, &transactions)

			require.Len(t, transactions, len(tt.categories))
			for i, category := range tt.categories {
				assert.Equal(t, category, transactions[i].Category)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsAmountFilters() {
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Coffee", Amount: decimal.NewFromFloat(3.50), Type: models.TypeExpense})
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Groceries", Amount: decimal.NewFromFloat(50), Type: models.TypeExpense})
	_ = createTestTransaction(suite.T(), models.Transaction{Category: "Rent", Amount: decimal.NewFromFloat(500), Type: models.TypeExpense})

	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"Exact match", "/by-exact-amount/50", []string{"Groceries"}},
		{"Exact match without results", "/by-exact-amount/49.99", []string{}},
		{"Greater than", "/greater-than/50", []string{"Rent"}},
		{"Less than", "/less-than/50", []string{"Coffee"}},
		{"Range", "/by-amount-range?min=3.50&max=50", []string{"Coffee", "Groceries"}},
		{"Inverted range", "/by-amount-range?min=100&max=10", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/transaction%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var transactions []models.Transaction
			test.DecodeResponse(t, &recorder, &transactions)

			categories := make([]string, 0, len(transactions))
			for _, transaction := range transactions {
				categories = append(categories, transaction.Category)
			}
			assert.ElementsMatch(t, tt.expected, categories)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsAmountFiltersInvalid() {
	tests := []struct {
		name string
		path string
	}{
		{"Exact amount not a number", "/by-exact-amount/expensive"},
		{"Greater than not a number", "/greater-than/much"},
		{"Less than not a number", "/less-than/little"},
		{"Range without min", "/by-amount-range?max=10"},
		{"Range without max", "/by-amount-range?min=10"},
		{"Range with unparseable bound", "/by-amount-range?min=banana&max=10"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/transaction%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	created := createTestTransaction(suite.T(), models.Transaction{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(14.03),
		Date:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Type:     models.TypeExpense,
		Notes:    "Weekly shopping",
	})

	created.Amount = decimal.NewFromFloat(16.17)
	created.Notes = ""

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), created)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &updated)

	assert.True(suite.T(), updated.Amount.Equal(decimal.NewFromFloat(16.17)))
	assert.Equal(suite.T(), "", updated.Notes, "Zero values must overwrite existing fields")
}

// TestTransactionUpdateRunsSaveHooks verifies that an update goes through
// the same normalization as a create: strings are trimmed and a zero date
// is defaulted.
func (suite *TestSuiteStandard) TestTransactionUpdateRunsSaveHooks() {
	created := createTestTransaction(suite.T(), models.Transaction{
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(14.03),
		Date:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Type:     models.TypeExpense,
	})

	created.Category = "  Padded  "
	created.Date = time.Time{}

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), created)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &updated)

	assert.Equal(suite.T(), "Padded", updated.Category)
	assert.False(suite.T(), updated.Date.IsZero(), "A zero date must be defaulted on update")
	assert.WithinDuration(suite.T(), time.Now().In(time.UTC), updated.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestTransactionUpdateIDMismatch() {
	created := createTestTransaction(suite.T(), models.Transaction{Category: "Groceries", Amount: decimal.NewFromFloat(14.03), Type: models.TypeExpense})

	mismatched := created
	mismatched.ID = created.ID + 1
	mismatched.Category = "Hijacked"

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), mismatched)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// The stored transaction must be untouched
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transaction models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &transaction)
	assert.Equal(suite.T(), "Groceries", transaction.Category)
}

func (suite *TestSuiteStandard) TestTransactionUpdateNonexistent() {
	transaction := models.Transaction{
		ID:       917,
		Category: "Groceries",
		Amount:   decimal.NewFromFloat(14.03),
		Type:     models.TypeExpense,
	}

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/api/transaction/917", transaction)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUpdateAfterDelete() {
	created := createTestTransaction(suite.T(), models.Transaction{Category: "Groceries", Amount: decimal.NewFromFloat(14.03), Type: models.TypeExpense})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	created.Amount = decimal.NewFromFloat(20)
	recorder = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), created)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUpdateInvalid() {
	created := createTestTransaction(suite.T(), models.Transaction{Category: "Groceries", Amount: decimal.NewFromFloat(14.03), Type: models.TypeExpense})

	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "amount": "14.0`},
		{"Empty body", ""},
		{"Negative amount", models.Transaction{ID: created.ID, Category: "Groceries", Amount: decimal.NewFromFloat(-1), Type: models.TypeExpense}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	created := createTestTransaction(suite.T(), models.Transaction{Category: "Groceries", Amount: decimal.NewFromFloat(14.03), Type: models.TypeExpense})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/transaction/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDeleteNonexistent() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/transaction/notanumber", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/transaction/3000", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "an error occurred on the server during your request", response.Error)
}
