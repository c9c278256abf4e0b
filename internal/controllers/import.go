package controllers

import (
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// csvHeader is the exact header row an import file must carry.
var csvHeader = []string{"category", "amount", "date", "type", "notes"}

// ImportResponse is the result of a CSV import. Rows are imported
// independently, a failing row does not prevent other rows from
// being created.
type ImportResponse struct {
	Created []models.Transaction `json:"created"` // Transactions that were created
	Errors  []string             `json:"errors"`  // One message per row that could not be imported
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, pattern string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !glob.Glob(pattern, formFile.Filename) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, pattern)
	}

	return formFile.Open()
}

// parseType reads a transaction type from CSV input. Both the numeric
// wire values and the written-out names are accepted.
func parseType(value string) (models.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "income":
		return models.TypeIncome, nil
	case "1", "expense":
		return models.TypeExpense, nil
	}

	return 0, fmt.Errorf("%q is not a valid transaction type", value)
}

// parseRow converts a CSV record into a transaction.
func parseRow(record []string) (models.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%q is not a valid amount", record[1])
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[2]))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%q is not a valid date, use YYYY-MM-DD", record[2])
	}

	tType, err := parseType(record[3])
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Category: record[0],
		Amount:   amount,
		Date:     date,
		Type:     tType,
		Notes:    record[4],
	}, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/transaction/import [options]
func OptionsTransactionImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions
// @Description	Creates transactions from an uploaded CSV file with the header "category,amount,date,type,notes". Rows are imported independently; the response lists the created transactions and one error per failed row. The status is 201 only if every row was imported.
// @Tags			Transactions
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Param			file	formData	file	true	"The CSV file to import"
// @Router			/api/transaction/import [post]
func ImportTransactions(c *gin.Context) {
	f, err := getUploadedFile(c, "*.csv")
	if err != nil {
		newError(c, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		newError(c, http.StatusBadRequest, errCSVHeader)
		return
	}

	for i, field := range header {
		header[i] = strings.ToLower(strings.TrimSpace(field))
	}

	if !slices.Equal(header, csvHeader) {
		newError(c, http.StatusBadRequest, errCSVHeader)
		return
	}

	records, err := reader.ReadAll()
	if err != nil {
		newError(c, http.StatusBadRequest, fmt.Errorf("%w: %s", httputil.ErrInvalidBody, err))
		return
	}

	response := ImportResponse{
		Created: make([]models.Transaction, 0),
		Errors:  make([]string, 0),
	}

	// The CSV line number is offset by the header row
	for i, record := range records {
		transaction, err := parseRow(record)
		if err != nil {
			response.Errors = append(response.Errors, fmt.Sprintf("row %d: %s", i+2, err))
			continue
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			response.Errors = append(response.Errors, fmt.Sprintf("row %d: %s", i+2, err))
			continue
		}

		response.Created = append(response.Created, transaction)
	}

	responseStatus := http.StatusCreated
	if len(response.Errors) > 0 {
		responseStatus = http.StatusBadRequest
	}

	c.JSON(responseStatus, response)
}
