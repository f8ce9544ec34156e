package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/evm-gateway/internal/gateway"
)

type registry struct {
	store Store

	// mu guards chains for readers and writers alike. Register keeps it held
	// across the store write so that concurrent registrations fully serialize.
	mu     sync.Mutex
	chains map[gateway.Currency]gateway.ChainConfig
}

// New creates a registry and replays every config persisted in store.
// A persisted ticker that does not map to a known currency fails the load;
// a currency persisted twice keeps its first record.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func New(ctx context.Context, store Store) (Registry, error) {
	if store == nil {
		return nil, errors.New("registry store is required")
	}

	configs, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted chain configs")
	}

	chains := make(map[gateway.Currency]gateway.ChainConfig, len(configs))
	for _, config := range configs {
		currency, err := config.Currency()
		if err != nil {
			return nil, errors.Wrapf(err, "persisted config for node %s", config.NodeURL)
		}

		if _, exists := chains[currency]; exists {
			log.Warn().
				Str("currency", currency.String()).
				Str("node_url", config.NodeURL).
				Msg("Ignoring duplicate persisted chain config")
			continue
		}

		chains[currency] = config
	}

	log.Debug().Int("count", len(chains)).Msg("Chain registry loaded")

	return &registry{
		store:  store,
		chains: chains,
	}, nil
}

func (r *registry) Register(ctx context.Context, currency gateway.Currency, config gateway.ChainConfig) error {
	if !currency.Valid() {
		return errors.Wrapf(gateway.ErrUnknownTicker, "currency %d", uint8(currency))
	}

	// The file is replayed by ticker, so the key must be what the ticker resolves to.
	tickerCurrency, err := config.Currency()
	if err != nil {
		return err
	}
	if tickerCurrency != currency {
		return errors.Wrapf(gateway.ErrUnknownTicker, "ticker %q does not name %s", config.Ticker, currency)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chains[currency]; exists {
		return errors.Wrapf(gateway.ErrAlreadyRegistered, "config for %s already present", currency)
	}

	if err := r.store.Append(ctx, config); err != nil {
		return gateway.Kind(gateway.ErrPersistence, err)
	}

	r.chains[currency] = config

	return nil
}

func (r *registry) Get(currency gateway.Currency) (gateway.ChainConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, ok := r.chains[currency]
	return config, ok
}

func (r *registry) List() []Entry {
	r.mu.Lock()
	entries := make([]Entry, 0, len(r.chains))
	for currency, config := range r.chains {
		entries = append(entries, Entry{Currency: currency, Config: config})
	}
	r.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Currency < entries[j].Currency
	})

	return entries
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.chains)
}
