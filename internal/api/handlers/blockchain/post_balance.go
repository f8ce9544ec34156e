package blockchain

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/httperrors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/util"
)

func PostBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.Blockchain.POST("/balance", postBalanceHandler(s))
}

// The body is a bare JSON string naming the currency, e.g. "Eth".
func postBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		ticker, err := util.BindJSONString(c)
		if err != nil {
			return httperrors.NewHTTPErrorWithInternal(httperrors.ErrBadRequestInvalidCurrency, err)
		}

		currency, err := gateway.ParseCurrency(ticker)
		if err != nil {
			return err
		}

		report, err := s.Balance.BalanceFor(ctx, currency)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, reportToBalanceReport(report))
	}
}
