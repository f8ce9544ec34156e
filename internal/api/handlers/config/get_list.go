package config

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"github/chapool/evm-gateway/internal/types"
	"github/chapool/evm-gateway/internal/util"
)

func GetListRoute(s *api.Server) *echo.Route {
	return s.Router.Config.GET("/list", getListHandler(s))
}

func getListHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries := s.Registry.List()

		response := make(types.GetConfigListResponse, 0, len(entries))
		for _, entry := range entries {
			response = append(response, entryToChainConfigEntry(entry))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

func entryToChainConfigEntry(entry registry.Entry) *types.ChainConfigEntry {
	return &types.ChainConfigEntry{
		Currency: swag.String(entry.Currency.String()),
		Config: &types.ChainConfig{
			NodeURL: swag.String(entry.Config.NodeURL),
			Denom:   swag.String(entry.Config.Denom),
			Ticker:  swag.String(entry.Config.Ticker),
		},
	}
}
