package config

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/types"
	"github/chapool/evm-gateway/internal/util"
)

func PostAddRoute(s *api.Server) *echo.Route {
	return s.Router.Config.POST("/add", postAddHandler(s))
}

func postAddHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostConfigAddPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		config := gateway.ChainConfig{
			NodeURL: body.NodeURL.String(),
			Denom:   *body.Denom,
			Ticker:  *body.Ticker,
		}

		if _, err := client.ValidateEndpoint(config.NodeURL); err != nil {
			log.Debug().Err(err).Str("node_url", config.NodeURL).Msg("Rejecting chain config with unusable node url")
			return err
		}

		currency, err := config.Currency()
		if err != nil {
			log.Debug().Err(err).Str("ticker", config.Ticker).Msg("Rejecting chain config with unknown ticker")
			return err
		}

		err = s.Registry.Register(ctx, currency, config)
		s.Metrics.ObserveRegistration(currency, err)
		if err != nil {
			log.Error().Err(err).Str("currency", currency.String()).Msg("Failed to register chain")
			return err
		}

		log.Info().
			Str("currency", currency.String()).
			Str("node_url", config.NodeURL).
			Str("denom", config.Denom).
			Msg("Chain registered")

		return c.JSON(http.StatusOK, fmt.Sprintf("Currency %s added", currency))
	}
}
