package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType encodes the direction of a transaction. The amount always
// carries the magnitude, the type carries the direction.
type TransactionType uint8

const (
	TypeIncome  TransactionType = 0
	TypeExpense TransactionType = 1
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (t TransactionType) String() string {
	if t == TypeIncome {
		return "income"
	}

	return "expense"
}

// Transaction represents a single recorded income or expense movement.
type Transaction struct {
	ID       uint64          `json:"id" example:"17" gorm:"primarykey"`                            // ID of the transaction, assigned on creation
	Category string          `json:"category" example:"Groceries"`                                 // User supplied category label
	Amount   decimal.Decimal `json:"amount" example:"14.03" minimum:"0" gorm:"type:DECIMAL(20,8)"` // The amount for the transaction
	Date     time.Time       `json:"date" example:"2024-01-01T00:00:00Z"`                          // Date of the transaction. Defaults to the creation date
	Type     TransactionType `json:"type" example:"1" enums:"0,1"`                                 // 0 for income, 1 for expense
	Notes    string          `json:"notes,omitempty" example:"Weekly shopping" default:""`         // Optional free text
}

// AfterFind updates the date to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store it in UTC, but somehow reading
// it from the database returns it as +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the timezone for the Date to UTC, defaulting to the current time
//   - validates the record, reporting all violations at once
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Notes = strings.TrimSpace(t.Notes)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	var violations []string
	if t.Category == "" {
		violations = append(violations, "the category must be set")
	}

	if t.Amount.IsNegative() {
		violations = append(violations, "the amount must not be negative")
	}

	if !t.Type.Valid() {
		violations = append(violations, "the type must be 0 (income) or 1 (expense)")
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", ErrTransactionInvalid, strings.Join(violations, ", "))
	}

	return nil
}
