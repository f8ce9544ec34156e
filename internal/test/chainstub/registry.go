package chainstub

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/registry"
)

// Registry returns a file-backed registry in a temporary directory holding configs.
//
//nolint:ireturn
func Registry(t *testing.T, configs ...gateway.ChainConfig) registry.Registry {
	t.Helper()

	reg, err := registry.New(t.Context(), registry.NewFileStore(filepath.Join(t.TempDir(), "config.toml")))
	require.NoError(t, err)

	for _, config := range configs {
		currency, err := config.Currency()
		require.NoError(t, err)
		require.NoError(t, reg.Register(t.Context(), currency, config))
	}

	return reg
}

// EthConfig is a registered-looking Eth chain pointing at nodeURL.
func EthConfig(nodeURL string) gateway.ChainConfig {
	return gateway.ChainConfig{NodeURL: nodeURL, Denom: "ether", Ticker: "Eth"}
}

// MaticConfig is a registered-looking Matic chain pointing at nodeURL.
func MaticConfig(nodeURL string) gateway.ChainConfig {
	return gateway.ChainConfig{NodeURL: nodeURL, Denom: "matic", Ticker: "Matic"}
}
