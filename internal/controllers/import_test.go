package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/finance-tracker/backend/internal/controllers"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// csvUpload builds a multipart body with a single form file named "file".
func csvUpload(t *testing.T, filename, content string) (*bytes.Buffer, map[string]string) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, map[string]string{"Content-Type": writer.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestImport() {
	body, headers := csvUpload(suite.T(), "transactions.csv", "category,amount,date,type,notes\nSalary,1000,2024-01-01,income,January paycheck\nRent,500,2024-01-02,1,\n")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Created, 2)
	assert.Len(suite.T(), response.Errors, 0)

	assert.Equal(suite.T(), "Salary", response.Created[0].Category)
	assert.Equal(suite.T(), models.TypeIncome, response.Created[0].Type)
	assert.True(suite.T(), response.Created[0].Amount.Equal(decimal.NewFromFloat(1000)))
	assert.Equal(suite.T(), models.TypeExpense, response.Created[1].Type)

	// The rows must be persisted
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions []models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	assert.Len(suite.T(), transactions, 2)
}

func (suite *TestSuiteStandard) TestImportPartialFailure() {
	body, headers := csvUpload(suite.T(), "transactions.csv", "category,amount,date,type,notes\nSalary,1000,2024-01-01,income,\nRent,a lot,2024-01-02,expense,\nCoffee,3.50,yesterday,expense,\n")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Created, 1)
	require.Len(suite.T(), response.Errors, 2)

	assert.Contains(suite.T(), response.Errors[0], "row 3")
	assert.Contains(suite.T(), response.Errors[0], "not a valid amount")
	assert.Contains(suite.T(), response.Errors[1], "row 4")
	assert.Contains(suite.T(), response.Errors[1], "not a valid date")

	// The valid row must still be persisted
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/transaction", "")
	var transactions []models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	assert.Len(suite.T(), transactions, 1)
}

func (suite *TestSuiteStandard) TestImportInvalidType() {
	body, headers := csvUpload(suite.T(), "transactions.csv", "category,amount,date,type,notes\nSalary,1000,2024-01-01,transfer,\n")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response controllers.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Errors, 1)
	assert.Contains(suite.T(), response.Errors[0], "not a valid transaction type")
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	body, headers := csvUpload(suite.T(), "transactions.xlsx", "category,amount,date,type,notes\n")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), response.Error, "*.csv")
}

func (suite *TestSuiteStandard) TestImportWrongHeader() {
	body, headers := csvUpload(suite.T(), "transactions.csv", "name,value\nRent,500\n")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transaction/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), response.Error, "file")
}
