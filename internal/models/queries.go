package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// dateDesc sorts newest first. The tie-break for all list queries.
//
// datetime() is needed so that transactions on the same day are sorted by
// their exact time, not in insertion order.
func dateDesc(db *gorm.DB) *gorm.DB {
	return db.Order("datetime(transactions.date) DESC")
}

func find(q *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Transactions returns all transactions, most recent first.
func Transactions() ([]Transaction, error) {
	return find(DB.Scopes(dateDesc))
}

// TransactionsOrderedByAmount returns all transactions ordered by amount.
// Every order other than "asc" is treated as "desc".
func TransactionsOrderedByAmount(order string) ([]Transaction, error) {
	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}

	return find(DB.Order("transactions.amount " + direction).Scopes(dateDesc))
}

// TransactionsByAmount returns all transactions with exactly the given amount.
func TransactionsByAmount(amount decimal.Decimal) ([]Transaction, error) {
	return find(DB.Where("transactions.amount = ?", amount).Scopes(dateDesc))
}

// TransactionsGreaterThan returns all transactions with an amount strictly
// greater than the given one.
func TransactionsGreaterThan(amount decimal.Decimal) ([]Transaction, error) {
	return find(DB.Where("transactions.amount > ?", amount).Scopes(dateDesc))
}

// TransactionsLessThan returns all transactions with an amount strictly less
// than the given one.
func TransactionsLessThan(amount decimal.Decimal) ([]Transaction, error) {
	return find(DB.Where("transactions.amount < ?", amount).Scopes(dateDesc))
}

// TransactionsInRange returns all transactions with min <= amount <= max.
// The result is empty when min > max.
func TransactionsInRange(min, max decimal.Decimal) ([]Transaction, error) {
	return find(DB.
		Where("transactions.amount >= ?", min).
		Where("transactions.amount <= ?", max).
		Scopes(dateDesc))
}

// TransactionsByType returns all transactions of the given type.
func TransactionsByType(t TransactionType) ([]Transaction, error) {
	return find(DB.Where("transactions.type = ?", t).Scopes(dateDesc))
}
