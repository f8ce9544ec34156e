package chains

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/registry"
)

// Resolve loads the chains file at path and returns the config registered for ticker.
func Resolve(ctx context.Context, path string, ticker string) (gateway.Currency, gateway.ChainConfig, error) {
	currency, err := gateway.ParseCurrency(ticker)
	if err != nil {
		return 0, gateway.ChainConfig{}, err
	}

	reg, err := registry.New(ctx, registry.NewFileStore(path))
	if err != nil {
		return 0, gateway.ChainConfig{}, err
	}

	chainConfig, ok := reg.Get(currency)
	if !ok {
		return 0, gateway.ChainConfig{}, errors.Wrapf(gateway.ErrUnknownCurrency, "no chain registered for %s in %s", currency, path)
	}

	return currency, chainConfig, nil
}
