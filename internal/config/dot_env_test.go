package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/config"
)

func TestDotEnvLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("GATEWAY_RPC_TIMEOUT=3s\nACCOUNT=0x2c7536E3605D9C16a7a3D7b1898e529396a65c23\n"), 0o600))

	err := config.DotEnvLoad(path, func(k string, v string) error {
		t.Setenv(k, v)
		return nil
	})
	require.NoError(t, err)

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "3s", cfg.Gateway.RPCTimeout.String())
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", cfg.Gateway.Account)
}

func TestDotEnvLoadMissingFile(t *testing.T) {
	err := config.DotEnvLoad(filepath.Join(t.TempDir(), ".env.local"), func(_ string, _ string) error {
		t.Fatal("setter must not be called")
		return nil
	})

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestDotEnvLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("THIS IS NOT AN ENV FILE\n"), 0o600))

	err := config.DotEnvLoad(path, func(_ string, _ string) error {
		return nil
	})
	require.Error(t, err)
}
