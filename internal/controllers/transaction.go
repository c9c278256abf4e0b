package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// decimalQuery parses the query parameter with the given name as a decimal
// number. It is an error for the parameter to be unset.
func decimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return decimal.Zero, fmt.Errorf("the %s parameter must be set", name)
	}

	return decimal.NewFromString(value)
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Collection endpoints
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.GET("/ordered-by-amount", GetTransactionsOrderedByAmount)
		r.GET("/by-exact-amount/:amount", GetTransactionsByAmount)
		r.GET("/greater-than/:amount", GetTransactionsGreaterThan)
		r.GET("/less-than/:amount", GetTransactionsLessThan)
		r.GET("/by-amount-range", GetTransactionsInRange)
		r.OPTIONS("/create", OptionsTransactionCreate)
		r.POST("/create", CreateTransaction)
		r.OPTIONS("/import", OptionsTransactionImport)
		r.POST("/import", ImportTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/transaction [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/transaction/create [options]
func OptionsTransactionCreate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/api/transaction/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		newError(c, status(err), err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List transactions
// @Description	Returns all transactions, most recent first. Can be filtered by type.
// @Tags			Transactions
// @Produce		json
// @Success		200		{array}		models.Transaction
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			type	query		int	false	"Filter by type. 0 for income, 1 for expense."
// @Router			/api/transaction [get]
func GetTransactions(c *gin.Context) {
	var transactions []models.Transaction
	var err error

	if raw, ok := c.GetQuery("type"); ok {
		parsed, parseErr := strconv.ParseUint(raw, 10, 8)
		if parseErr != nil || !models.TransactionType(parsed).Valid() {
			newError(c, http.StatusBadRequest, errTypeInvalid)
			return
		}

		transactions, err = models.TransactionsByType(models.TransactionType(parsed))
	} else {
		transactions, err = models.Transactions()
	}

	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		List transactions ordered by amount
// @Description	Returns all transactions ordered by amount. Transactions with equal amounts are ordered most recent first.
// @Tags			Transactions
// @Produce		json
// @Success		200		{array}		models.Transaction
// @Failure		500		{object}	httpError
// @Param			order	query		string	false	"Sort direction, 'asc' or 'desc'. Defaults to 'desc'."
// @Router			/api/transaction/ordered-by-amount [get]
func GetTransactionsOrderedByAmount(c *gin.Context) {
	transactions, err := models.TransactionsOrderedByAmount(c.DefaultQuery("order", "desc"))
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		List transactions with an exact amount
// @Description	Returns all transactions with exactly the given amount, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200		{array}		models.Transaction
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			amount	path		string	true	"The amount to match"
// @Router			/api/transaction/by-exact-amount/{amount} [get]
func GetTransactionsByAmount(c *gin.Context) {
	amount, err := httputil.ParseAmount(c, "amount")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	transactions, err := models.TransactionsByAmount(amount)
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		List transactions greater than an amount
// @Description	Returns all transactions with an amount strictly greater than the given one, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200		{array}		models.Transaction
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			amount	path		string	true	"The lower bound, exclusive"
// @Router			/api/transaction/greater-than/{amount} [get]
func GetTransactionsGreaterThan(c *gin.Context) {
	amount, err := httputil.ParseAmount(c, "amount")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	transactions, err := models.TransactionsGreaterThan(amount)
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		List transactions less than an amount
// @Description	Returns all transactions with an amount strictly less than the given one, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200		{array}		models.Transaction
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			amount	path		string	true	"The upper bound, exclusive"
// @Router			/api/transaction/less-than/{amount} [get]
func GetTransactionsLessThan(c *gin.Context) {
	amount, err := httputil.ParseAmount(c, "amount")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	transactions, err := models.TransactionsLessThan(amount)
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		List transactions in an amount range
// @Description	Returns all transactions with min <= amount <= max, most recent first. The result is empty when min > max.
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}		models.Transaction
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			min	query		string	true	"The lower bound, inclusive"
// @Param			max	query		string	true	"The upper bound, inclusive"
// @Router			/api/transaction/by-amount-range [get]
func GetTransactionsInRange(c *gin.Context) {
	min, errMin := decimalQuery(c, "min")
	max, errMax := decimalQuery(c, "max")
	if errMin != nil || errMax != nil {
		newError(c, http.StatusBadRequest, errRangeBounds)
		return
	}

	transactions, err := models.TransactionsInRange(min, max)
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	models.Transaction
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/api/transaction/{id} [get]
func GetTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Create transaction
// @Description	Creates a new transaction. The ID is assigned by the backend.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/api/transaction/create [post]
func CreateTransaction(c *gin.Context) {
	var transaction models.Transaction
	err := httputil.BindData(c, &transaction)
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	// The store assigns the ID
	transaction.ID = 0

	err = models.DB.Create(&transaction).Error
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", strings.TrimSuffix(c.Request.URL.Path, "/create"), transaction.ID))
	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Update transaction
// @Description	Replaces an existing transaction. All fields are overwritten with the supplied values.
// @Tags			Transactions
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		uint64				true	"ID of the transaction"
// @Param			transaction	body		models.Transaction	true	"Transaction. Its ID must match the ID in the URL."
// @Router			/api/transaction/{id} [put]
func UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	var transaction models.Transaction
	err = httputil.BindData(c, &transaction)
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	if transaction.ID != id {
		newError(c, http.StatusBadRequest, errIDMismatch)
		return
	}

	// The write happens without checking that the record exists. A missing
	// record, including one deleted concurrently after a successful read,
	// only surfaces as zero affected rows here.
	res := models.DB.Model(&transaction).Select("*").Updates(&transaction)
	if res.Error != nil {
		newError(c, status(res.Error), res.Error)
		return
	}

	if res.RowsAffected == 0 {
		err := fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
		newError(c, http.StatusNotFound, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete transaction
// @Description	Permanently deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/api/transaction/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		newError(c, status(err), err)
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		newError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
