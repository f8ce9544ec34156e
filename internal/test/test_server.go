package test

import (
	"context"
	"path/filepath"
	"testing"

	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/router"
	"github/chapool/evm-gateway/internal/config"
)

const (
	// TestSecret is the private key used by test servers. Never fund it.
	TestSecret = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	// TestAccount is the address derived from TestSecret.
	TestAccount = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

// NewTestConfig returns the env config with every file location moved into a
// temporary directory and the signing key set to TestSecret.
func NewTestConfig(t *testing.T) config.Server {
	t.Helper()

	dir := t.TempDir()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Gateway.ChainsFile = filepath.Join(dir, "config.toml")
	cfg.Gateway.SecretKey = TestSecret
	cfg.Gateway.Account = ""
	cfg.Gateway.KeystoreFile = ""
	cfg.Management.ProbeWriteablePathsAbs = []string{dir}
	cfg.Echo.EnableRateLimitMiddleware = false
	cfg.Logger.PrettyPrintConsole = false

	return cfg
}

// WithTestServer executes closure with a fully initialized server backed by an
// empty chain registry in a temporary directory.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, NewTestConfig(t), closure)
}

// WithTestServerConfigurable executes closure with a server built from cfg.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, cfg)

	closure(s)

	// echo is shutdown directly after the test run, this ensures the server is shutdown
	// before the temporary directories are removed.
	ctx := context.Background()
	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

// NewTestServer builds a server from cfg and initializes its router.
func NewTestServer(t *testing.T, cfg config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServer(cfg)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	return s
}
