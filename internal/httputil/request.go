package httputil

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RequestHost returns the scheme and host the request was made against.
//
// The scheme defaults to http and only switches to https
// if the x-forwarded-proto header is set to "https".
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	return scheme + "://" + c.Request.Host
}

// ParseID parses the URI parameter with the given name as a record ID.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return parsed, nil
}

// ParseAmount parses the URI parameter with the given name as a decimal amount.
func ParseAmount(c *gin.Context, param string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(c.Param(param))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, c.Param(param))
	}

	return parsed, nil
}

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
