package blockchain_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/httperrors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/test"
	"github/chapool/evm-gateway/internal/test/ethnode"
	"github/chapool/evm-gateway/internal/types"
)

const recipient = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

var account = common.HexToAddress(test.TestAccount)

func register(t *testing.T, s *api.Server, currency gateway.Currency, nodeURL string, denom string) {
	t.Helper()

	require.NoError(t, s.Registry.Register(t.Context(), currency, gateway.ChainConfig{
		NodeURL: nodeURL,
		Denom:   denom,
		Ticker:  currency.String(),
	}))
}

func TestPostBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		node.SetBalance(account, new(big.Int).Mul(big.NewInt(2), big.NewInt(1_000_000_000_000_000_000)))
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequestWithRawBody(t, s, "POST", "/blockchain/balance", strings.NewReader(`"Eth"`), nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.BalanceReport
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "Eth", *response.Currency)
		assert.Equal(t, account.Hex(), *response.Account)
		assert.Equal(t, json.Number("2"), *response.Amount)
		assert.Equal(t, "ether", *response.Denom)
	})
}

func TestPostBalanceAmountIsExactNumber(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		wei, ok := new(big.Int).SetString("123456789012345678901234567", 10)
		require.True(t, ok)
		node.SetBalance(account, wei)
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequestWithRawBody(t, s, "POST", "/blockchain/balance", strings.NewReader(`"Eth"`), nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		assert.JSONEq(t, `{
			"currency": "Eth",
			"account": "`+account.Hex()+`",
			"amount": 123456789.012345678901234567,
			"denom": "ether"
		}`, res.Body.String())
		assert.Contains(t, res.Body.String(), `"amount":123456789.012345678901234567`)
	})
}

func TestPostBalanceUnregistered(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithRawBody(t, s, "POST", "/blockchain/balance", strings.NewReader(`"Matic"`), nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundUnknownCurrency)
	})
}

func TestPostBalanceUnknownTicker(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithRawBody(t, s, "POST", "/blockchain/balance", strings.NewReader(`"Doge"`), nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestUnknownTicker)
	})
}

func TestPostBalanceMalformedBody(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithRawBody(t, s, "POST", "/blockchain/balance", strings.NewReader(`{"currency":"Eth"}`), nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidCurrency)
	})
}

func TestPostBalanceNodeDown(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		node.Fail("eth_getBalance", "service unavailable")
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequestWithRawBody(t, s, "POST", "/blockchain/balance", strings.NewReader(`"Eth"`), nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadGatewayNode)
	})
}

func TestGetBalanceAll(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		eth := ethnode.New(t)
		eth.SetBalance(account, big.NewInt(1_500_000_000_000_000_000))
		register(t, s, gateway.CurrencyEth, eth.URL(), "ether")

		matic := ethnode.New(t)
		matic.SetBalance(account, big.NewInt(250_000_000_000_000_000))
		register(t, s, gateway.CurrencyMatic, matic.URL(), "matic")

		res := test.PerformRequest(t, s, "GET", "/blockchain/balance_all", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetBalanceAllResponse
		test.ParseResponseAndValidate(t, res, &response)

		require.Len(t, response, 2)
		assert.Equal(t, "Eth", *response[0].Currency)
		assert.Equal(t, json.Number("1.5"), *response[0].Amount)
		assert.Equal(t, "Matic", *response[1].Currency)
		assert.Equal(t, json.Number("0.25"), *response[1].Amount)
		assert.Equal(t, "matic", *response[1].Denom)
	})
}

func TestGetBalanceAllEmpty(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/blockchain/balance_all", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.JSONEq(t, "[]", res.Body.String())
	})
}

func TestGetBalanceAllNoPartialResult(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		eth := ethnode.New(t)
		eth.SetBalance(account, big.NewInt(1))
		register(t, s, gateway.CurrencyEth, eth.URL(), "ether")

		matic := ethnode.New(t)
		matic.ReturnMalformed()
		register(t, s, gateway.CurrencyMatic, matic.URL(), "matic")

		res := test.PerformRequest(t, s, "GET", "/blockchain/balance_all", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadGatewayNode)
		assert.NotContains(t, res.Body.String(), `"denom"`)
	})
}

func TestPostSend(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		node.SetNonce(account, 3)
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       recipient,
			"amount":   1000,
			"currency": "Eth",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var hash string
		test.ParseResponseBody(t, res, &hash)

		sent := node.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, sent[0].Hash().Hex(), hash)
		assert.Equal(t, int64(1000), sent[0].Value().Int64())
		assert.Equal(t, uint64(3), sent[0].Nonce())
		assert.Equal(t, common.HexToAddress(recipient), *sent[0].To())
	})
}

func TestPostSendLargeAmountAsString(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       recipient,
			"amount":   "340282366920938463463374607431768211455",
			"currency": "Eth",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		sent := node.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "340282366920938463463374607431768211455", sent[0].Value().String())
	})
}

func TestPostSendZeroAmount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       recipient,
			"amount":   0,
			"currency": "Eth",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Len(t, node.Sent(), 1)
	})
}

func TestPostSendInvalidAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       "0xnot-an-address",
			"amount":   1,
			"currency": "Eth",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidAddress)
		assert.Zero(t, node.TotalCalls())
	})
}

func TestPostSendNegativeAmount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       recipient,
			"amount":   -5,
			"currency": "Eth",
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
		assert.Zero(t, node.TotalCalls())
	})
}

func TestPostSendUnregisteredCurrency(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       recipient,
			"amount":   1,
			"currency": "Matic",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundUnknownCurrency)
	})
}

func TestPostSendRejectedByNode(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		node := ethnode.New(t)
		node.Fail("eth_sendRawTransaction", "insufficient funds for gas * price + value")
		register(t, s, gateway.CurrencyEth, node.URL(), "ether")

		res := test.PerformRequest(t, s, "POST", "/blockchain/send", test.GenericPayload{
			"to":       recipient,
			"amount":   1,
			"currency": "Eth",
		}, nil)
		response := test.RequireHTTPError(t, res, httperrors.ErrBadGatewayBroadcast)
		assert.Contains(t, response.Detail, "insufficient funds")
		assert.Equal(t, 1, node.Calls("eth_sendRawTransaction"))
	})
}
