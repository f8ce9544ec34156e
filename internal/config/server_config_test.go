package config_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestServiceEnvHidesSecrets(t *testing.T) {
	t.Setenv("SECRET", "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	t.Setenv("GATEWAY_KEYSTORE_PASSWORD", "hunter2")
	t.Setenv("SERVER_MANAGEMENT_SECRET", "mgmt")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "hunter2", cfg.Gateway.KeystorePassword)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "4c0883a6")
	assert.NotContains(t, string(out), "hunter2")
	assert.NotContains(t, string(out), "mgmt\"")
}

func TestServiceEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ECHO_LISTEN_ADDRESS", "0.0.0.0:8080")
	t.Setenv("GATEWAY_RPC_TIMEOUT", "3s")
	t.Setenv("GATEWAY_BALANCE_CONCURRENCY", "9")
	t.Setenv("GATEWAY_CHAINS_FILE", "/tmp/chains.toml")
	t.Setenv("SERVER_LOGGER_LEVEL", "WARN")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "0.0.0.0:8080", cfg.Echo.ListenAddress)
	assert.Equal(t, 3*time.Second, cfg.Gateway.RPCTimeout)
	assert.Equal(t, 9, cfg.Gateway.BalanceConcurrency)
	assert.Equal(t, "/tmp/chains.toml", cfg.Gateway.ChainsFile)
	assert.Equal(t, zerolog.WarnLevel, cfg.Logger.Level)
}

func TestServiceEnvInvalidLogLevelFallsBack(t *testing.T) {
	t.Setenv("SERVER_LOGGER_LEVEL", "chatty")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger.Level)
}
