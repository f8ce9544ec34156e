package api_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/router"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/test"
	"github/chapool/evm-gateway/internal/test/chainstub"
)

func TestInitNewServerWithComponents(t *testing.T) {
	cfg := test.NewTestConfig(t)

	stub := &chainstub.Client{Balance: big.NewInt(3_000_000_000_000_000_000)}
	reg := chainstub.Registry(t, chainstub.EthConfig("http://node1"))

	s, err := api.InitNewServerWithComponents(cfg, reg, stub.Dialer())
	require.NoError(t, err)

	assert.False(t, s.Ready())
	require.NoError(t, router.Init(s))
	assert.True(t, s.Ready())

	assert.Equal(t, test.TestAccount, s.Signer.Account().Hex())

	report, err := s.Balance.BalanceFor(t.Context(), gateway.CurrencyEth)
	require.NoError(t, err)
	assert.Equal(t, "3", report.Amount.String())

	hash, err := s.Transfer.Execute(t.Context(), gateway.CurrencyEth, gateway.TransferRequest{
		To:       "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		Amount:   big.NewInt(0),
		Currency: gateway.CurrencyEth,
	})
	require.NoError(t, err)
	assert.NotEqual(t, [32]byte{}, [32]byte(hash))
	assert.Len(t, stub.Broadcasts(), 1)

	assert.Empty(t, s.Shutdown(t.Context()))
}
