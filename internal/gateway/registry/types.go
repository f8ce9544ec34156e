package registry

import (
	"context"

	"github/chapool/evm-gateway/internal/gateway"
)

// Registry is the single source of truth for which chains can currently be served.
type Registry interface {
	// Register inserts config for currency. It fails with gateway.ErrAlreadyRegistered
	// if an entry exists and with gateway.ErrPersistence if the store write fails;
	// in both cases the registry is left unchanged. config.Ticker must resolve to
	// currency, otherwise gateway.ErrUnknownTicker is returned.
	Register(ctx context.Context, currency gateway.Currency, config gateway.ChainConfig) error

	// Get returns the config registered for currency.
	Get(currency gateway.Currency) (gateway.ChainConfig, bool)

	// List returns a snapshot of all entries ordered by currency.
	List() []Entry

	// Len returns the number of registered chains.
	Len() int
}

// Store persists the registered chain configs.
type Store interface {
	// Load returns all persisted configs in the order they were appended.
	Load(ctx context.Context) ([]gateway.ChainConfig, error)

	// Append durably adds config to the persisted set.
	Append(ctx context.Context, config gateway.ChainConfig) error
}

// Entry is one registered chain.
type Entry struct {
	Currency gateway.Currency    `json:"currency"`
	Config   gateway.ChainConfig `json:"config"`
}
