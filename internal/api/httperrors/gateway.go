package httperrors

import (
	"errors"
	"net/http"

	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/types"
)

var (
	ErrConflictAlreadyRegistered = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeALREADYREGISTERED, "A chain is already registered for this currency.")
	ErrNotFoundUnknownCurrency   = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeUNKNOWNCURRENCY, "No chain is registered for this currency.")
	ErrBadRequestUnknownTicker   = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeUNKNOWNTICKER, "The ticker does not name a supported currency.")
	ErrBadRequestEndpoint        = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDENDPOINT, "The node URL is not a usable http(s) endpoint.")
	ErrBadRequestInvalidAddress  = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS, "The recipient is not a valid EVM address.")
	ErrBadGatewayBroadcast       = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeBROADCASTFAILED, "The node rejected the transaction.")
	ErrBadGatewayNode            = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeNODEUNAVAILABLE, "The chain node could not be queried.")
	ErrInternalKeyMaterial       = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeKEYMATERIAL, "The signing key is unavailable.")
	ErrInternalSigning           = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeSIGNINGFAILED, "The transaction could not be signed.")
	ErrInternalPersistence       = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypePERSISTENCEFAILED, "The chain registry could not be persisted.")
)

// Order matters: a broadcast failure also matches gateway.ErrRPC.
var gatewayErrors = []struct {
	sentinel error
	httpErr  *HTTPError
}{
	{gateway.ErrAlreadyRegistered, ErrConflictAlreadyRegistered},
	{gateway.ErrUnknownCurrency, ErrNotFoundUnknownCurrency},
	{gateway.ErrUnknownTicker, ErrBadRequestUnknownTicker},
	{gateway.ErrEndpoint, ErrBadRequestEndpoint},
	{gateway.ErrInvalidAddress, ErrBadRequestInvalidAddress},
	{gateway.ErrBroadcast, ErrBadGatewayBroadcast},
	{gateway.ErrRPC, ErrBadGatewayNode},
	{gateway.ErrKeyMaterial, ErrInternalKeyMaterial},
	{gateway.ErrSigning, ErrInternalSigning},
	{gateway.ErrPersistence, ErrInternalPersistence},
}

// FromGateway translates a gateway error into its public HTTP error, carrying
// err as detail and internal cause. It returns nil for errors of other kinds.
func FromGateway(err error) *HTTPError {
	if err == nil {
		return nil
	}

	for _, candidate := range gatewayErrors {
		if errors.Is(err, candidate.sentinel) {
			return NewHTTPErrorWithInternal(candidate.httpErr, err)
		}
	}

	return nil
}

// NewHTTPErrorWithInternal copies template and attaches err.
func NewHTTPErrorWithInternal(template *HTTPError, err error) *HTTPError {
	e := NewHTTPErrorWithDetail(int(*template.Code), *template.Type, *template.Title, err.Error())
	e.Internal = err

	return e
}
