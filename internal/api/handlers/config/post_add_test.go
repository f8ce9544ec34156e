package config_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/httperrors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"github/chapool/evm-gateway/internal/test"
	"github/chapool/evm-gateway/internal/types"
)

func TestPostAdd(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"node_url": "http://localhost:8545",
			"denom":    "ether",
			"ticker":   "Eth",
		}

		res := test.PerformRequest(t, s, "POST", "/config/add", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var message string
		test.ParseResponseBody(t, res, &message)
		assert.Equal(t, "Currency Eth added", message)

		config, ok := s.Registry.Get(gateway.CurrencyEth)
		require.True(t, ok)
		assert.Equal(t, gateway.ChainConfig{NodeURL: "http://localhost:8545", Denom: "ether", Ticker: "Eth"}, config)

		persisted, err := registry.NewFileStore(s.Config.Gateway.ChainsFile).Load(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []gateway.ChainConfig{config}, persisted)
	})
}

func TestPostAddCaseInsensitiveTicker(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/config/add", test.GenericPayload{
			"node_url": "https://polygon-rpc.example.com",
			"denom":    "matic",
			"ticker":   "MATIC",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		_, ok := s.Registry.Get(gateway.CurrencyMatic)
		assert.True(t, ok)
	})
}

func TestPostAddAlreadyRegistered(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/config/add", test.GenericPayload{
			"node_url": "http://localhost:8545",
			"denom":    "ether",
			"ticker":   "Eth",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/config/add", test.GenericPayload{
			"node_url": "http://localhost:9999",
			"denom":    "ether",
			"ticker":   "Eth",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictAlreadyRegistered)

		config, ok := s.Registry.Get(gateway.CurrencyEth)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:8545", config.NodeURL)
		assert.Equal(t, 1, s.Registry.Len())
	})
}

func TestPostAddUnknownTicker(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/config/add", test.GenericPayload{
			"node_url": "http://localhost:8545",
			"denom":    "btc",
			"ticker":   "Btc",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestUnknownTicker)
		assert.Zero(t, s.Registry.Len())
	})
}

func TestPostAddInvalidEndpoint(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/config/add", test.GenericPayload{
			"node_url": "ws://localhost:8546",
			"denom":    "ether",
			"ticker":   "Eth",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestEndpoint)
		assert.Zero(t, s.Registry.Len())
	})
}

func TestPostAddMissingFields(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/config/add", test.GenericPayload{
			"node_url": "http://localhost:8545",
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.HTTPValidationError
		test.ParseResponseAndValidate(t, res, &response)

		keys := make([]string, 0, len(response.ValidationErrors))
		for _, e := range response.ValidationErrors {
			keys = append(keys, *e.Key)
		}
		assert.ElementsMatch(t, []string{"denom", "ticker"}, keys)
		assert.Zero(t, s.Registry.Len())
	})
}
