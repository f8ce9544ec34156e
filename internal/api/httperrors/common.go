package httperrors

import (
	"net/http"

	"github/chapool/evm-gateway/internal/types"
)

var (
	ErrBadRequestInvalidAmount   = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "The amount is not a non-negative integer.")
	ErrBadRequestInvalidCurrency = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "The body must be a JSON currency string.")
)
