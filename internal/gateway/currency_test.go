package gateway_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/gateway"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		ticker string
		want   gateway.Currency
	}{
		{"Eth", gateway.CurrencyEth},
		{"ETH", gateway.CurrencyEth},
		{" eth ", gateway.CurrencyEth},
		{"Matic", gateway.CurrencyMatic},
		{"MATIC", gateway.CurrencyMatic},
	}

	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			got, err := gateway.ParseCurrency(tt.ticker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCurrencyUnknown(t *testing.T) {
	for _, ticker := range []string{"", "Btc", "Ethereum", "Eth2"} {
		_, err := gateway.ParseCurrency(ticker)
		assert.ErrorIs(t, err, gateway.ErrUnknownTicker, ticker)
	}
}

func TestCurrencyJSON(t *testing.T) {
	data, err := json.Marshal(gateway.CurrencyMatic)
	require.NoError(t, err)
	assert.JSONEq(t, `"Matic"`, string(data))

	var c gateway.Currency
	require.NoError(t, json.Unmarshal([]byte(`"eth"`), &c))
	assert.Equal(t, gateway.CurrencyEth, c)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"Doge"`), &c), gateway.ErrUnknownTicker)
	assert.ErrorIs(t, json.Unmarshal([]byte(`1`), &c), gateway.ErrUnknownTicker)

	_, err = json.Marshal(gateway.Currency(42))
	assert.Error(t, err)
}

func TestCurrencyDecimals(t *testing.T) {
	for _, c := range gateway.Currencies() {
		assert.True(t, c.Valid())
		assert.Equal(t, int32(18), c.Decimals())
	}
}

func TestKindKeepsBothErrors(t *testing.T) {
	cause := assert.AnError
	err := gateway.Kind(gateway.ErrRPC, cause)

	assert.ErrorIs(t, err, gateway.ErrRPC)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), cause.Error())
	assert.Equal(t, gateway.ErrSigning, gateway.Kind(gateway.ErrSigning, nil))
}
