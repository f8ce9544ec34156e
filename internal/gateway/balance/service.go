package balance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

type service struct {
	registry    registry.Registry
	dial        client.Dialer
	account     common.Address
	concurrency int
	observer    Observer
}

// Options tunes the balance service.
type Options struct {
	// Concurrency bounds the number of chains queried at once by BalanceForAll.
	Concurrency int
	Observer    Observer
}

// NewService creates a balance service for account.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(reg registry.Registry, dial client.Dialer, account common.Address, opts Options) Service {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &service{
		registry:    reg,
		dial:        dial,
		account:     account,
		concurrency: concurrency,
		observer:    opts.Observer,
	}
}

func (s *service) BalanceFor(ctx context.Context, currency gateway.Currency) (Report, error) {
	config, ok := s.registry.Get(currency)
	if !ok {
		err := errors.Wrapf(gateway.ErrUnknownCurrency, "no chain registered for %s", currency)
		s.observe(currency, err)

		return Report{}, err
	}

	return s.query(ctx, registry.Entry{Currency: currency, Config: config})
}

// BalanceForAll fans out over a snapshot of the registry. The first failure
// cancels the queries still in flight.
func (s *service) BalanceForAll(ctx context.Context) ([]Report, error) {
	entries := s.registry.List()
	reports := make([]Report, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			report, err := s.query(gctx, entry)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (s *service) query(ctx context.Context, entry registry.Entry) (Report, error) {
	report, err := s.fetch(ctx, entry)
	s.observe(entry.Currency, err)

	if err != nil {
		log.Error().
			Err(err).
			Str("currency", entry.Currency.String()).
			Str("node_url", entry.Config.NodeURL).
			Msg("Balance query failed")

		return Report{}, err
	}

	return report, nil
}

func (s *service) fetch(ctx context.Context, entry registry.Entry) (Report, error) {
	c, err := s.dial(entry.Config)
	if err != nil {
		return Report{}, err
	}
	defer c.Close()

	wei, err := c.BalanceOf(ctx, s.account)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Currency: entry.Currency,
		Account:  s.account.Hex(),
		Amount:   ToUnits(wei, entry.Currency.Decimals()),
		Denom:    entry.Config.Denom,
	}, nil
}

func (s *service) observe(currency gateway.Currency, err error) {
	if s.observer != nil {
		s.observer.ObserveBalance(currency, err)
	}
}

// ToUnits scales a base-unit amount down by 10^decimals without losing precision.
func ToUnits(baseUnits *big.Int, decimals int32) decimal.Decimal {
	if baseUnits == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(baseUnits, -decimals)
}
