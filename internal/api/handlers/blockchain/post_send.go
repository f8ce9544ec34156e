package blockchain

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/httperrors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/types"
	"github/chapool/evm-gateway/internal/util"
)

func PostSendRoute(s *api.Server) *echo.Route {
	return s.Router.Blockchain.POST("/send", postSendHandler(s))
}

func postSendHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSendPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		currency, err := gateway.ParseCurrency(*body.Currency)
		if err != nil {
			return err
		}

		//nolint:mnd // base 10
		amount, ok := new(big.Int).SetString(body.Amount.String(), 10)
		if !ok {
			return httperrors.ErrBadRequestInvalidAmount
		}

		hash, err := s.Transfer.Execute(ctx, currency, gateway.TransferRequest{
			To:       *body.To,
			Amount:   amount,
			Currency: currency,
		})
		if err != nil {
			log.Debug().Err(err).Str("currency", currency.String()).Msg("Send failed")
			return err
		}

		return c.JSON(http.StatusOK, hash.Hex())
	}
}
