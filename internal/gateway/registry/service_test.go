package registry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/registry"
)

var errDiskFull = errors.New("disk full")

type failingStore struct {
	appends int
}

func (s *failingStore) Load(context.Context) ([]gateway.ChainConfig, error) {
	return nil, nil
}

func (s *failingStore) Append(context.Context, gateway.ChainConfig) error {
	s.appends++
	return errDiskFull
}

func newFileRegistry(t *testing.T) (registry.Registry, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "toml", "config.toml")
	reg, err := registry.New(t.Context(), registry.NewFileStore(path))
	require.NoError(t, err)

	return reg, path
}

func TestRegisterThenGet(t *testing.T) {
	reg, _ := newFileRegistry(t)

	cfg := gateway.ChainConfig{NodeURL: "http://node1", Denom: "ether", Ticker: "Eth"}
	require.NoError(t, reg.Register(t.Context(), gateway.CurrencyEth, cfg))

	got, ok := reg.Get(gateway.CurrencyEth)
	require.True(t, ok)
	assert.Equal(t, cfg, got)

	_, ok = reg.Get(gateway.CurrencyMatic)
	assert.False(t, ok)
}

func TestRegisterTwiceKeepsFirstConfig(t *testing.T) {
	reg, _ := newFileRegistry(t)

	first := gateway.ChainConfig{NodeURL: "http://node1", Denom: "ether", Ticker: "Eth"}
	second := gateway.ChainConfig{NodeURL: "http://node2", Denom: "ether", Ticker: "Eth"}

	require.NoError(t, reg.Register(t.Context(), gateway.CurrencyEth, first))

	err := reg.Register(t.Context(), gateway.CurrencyEth, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrAlreadyRegistered)

	got, ok := reg.Get(gateway.CurrencyEth)
	require.True(t, ok)
	assert.Equal(t, first, got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegisterPersistenceFailureIsNotObservable(t *testing.T) {
	store := &failingStore{}
	reg, err := registry.New(t.Context(), store)
	require.NoError(t, err)

	err = reg.Register(t.Context(), gateway.CurrencyMatic, gateway.ChainConfig{NodeURL: "http://polygon", Denom: "matic", Ticker: "Matic"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrPersistence)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, store.appends)

	_, ok := reg.Get(gateway.CurrencyMatic)
	assert.False(t, ok)
	assert.Empty(t, reg.List())
}

func TestReloadReproducesRegisteredSet(t *testing.T) {
	reg, path := newFileRegistry(t)

	eth := gateway.ChainConfig{NodeURL: "http://node1", Denom: "ether", Ticker: "Eth"}
	matic := gateway.ChainConfig{NodeURL: "https://polygon-rpc.example", Denom: "matic", Ticker: "Matic"}
	require.NoError(t, reg.Register(t.Context(), gateway.CurrencyMatic, matic))
	require.NoError(t, reg.Register(t.Context(), gateway.CurrencyEth, eth))

	reloaded, err := registry.New(t.Context(), registry.NewFileStore(path))
	require.NoError(t, err)

	assert.ElementsMatch(t, reg.List(), reloaded.List())
	assert.Equal(t, []registry.Entry{
		{Currency: gateway.CurrencyEth, Config: eth},
		{Currency: gateway.CurrencyMatic, Config: matic},
	}, reloaded.List())
}

func TestRegisterRejectsTickerOfOtherCurrency(t *testing.T) {
	reg, path := newFileRegistry(t)

	err := reg.Register(t.Context(), gateway.CurrencyEth, gateway.ChainConfig{NodeURL: "http://node1", Denom: "ether", Ticker: "Matic"})
	require.ErrorIs(t, err, gateway.ErrUnknownTicker)

	_, ok := reg.Get(gateway.CurrencyEth)
	assert.False(t, ok)
	assert.NoFileExists(t, path)

	cfg := gateway.ChainConfig{NodeURL: "http://node1", Denom: "ether", Ticker: "ETH"}
	require.NoError(t, reg.Register(t.Context(), gateway.CurrencyEth, cfg))

	reloaded, err := registry.New(t.Context(), registry.NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, reg.List(), reloaded.List())
	assert.Equal(t, []registry.Entry{{Currency: gateway.CurrencyEth, Config: cfg}}, reloaded.List())
}

func TestLoadKeepsFirstDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[[config]]
node_url = "http://first"
denom = "ether"
ticker = "Eth"

[[config]]
node_url = "http://second"
denom = "ether"
ticker = "ETH"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	reg, err := registry.New(t.Context(), registry.NewFileStore(path))
	require.NoError(t, err)

	got, ok := reg.Get(gateway.CurrencyEth)
	require.True(t, ok)
	assert.Equal(t, "http://first", got.NodeURL)
	assert.Equal(t, 1, reg.Len())
}

func TestLoadRejectsUnknownTicker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[[config]]
node_url = "http://node"
denom = "sol"
ticker = "Sol"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := registry.New(t.Context(), registry.NewFileStore(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrUnknownTicker)
}

func TestConcurrentRegisterSingleWinner(t *testing.T) {
	reg, path := newFileRegistry(t)

	const workers = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cfg := gateway.ChainConfig{NodeURL: "http://node" + string(rune('a'+i)), Denom: "ether", Ticker: "Eth"}
			err := reg.Register(context.Background(), gateway.CurrencyEth, cfg)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, gateway.ErrAlreadyRegistered):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)

	persisted, err := registry.NewFileStore(path).Load(t.Context())
	require.NoError(t, err)
	require.Len(t, persisted, 1)

	got, ok := reg.Get(gateway.CurrencyEth)
	require.True(t, ok)
	assert.Equal(t, persisted[0], got)
}
