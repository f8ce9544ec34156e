package balance

import (
	"context"

	"github.com/shopspring/decimal"
	"github/chapool/evm-gateway/internal/gateway"
)

// Service reports the gateway account's balance on registered chains.
type Service interface {
	// BalanceFor queries the chain registered for currency.
	BalanceFor(ctx context.Context, currency gateway.Currency) (Report, error)

	// BalanceForAll queries every registered chain. Either all chains answer
	// or the whole call fails; a partial list is never returned.
	BalanceForAll(ctx context.Context) ([]Report, error)
}

// Observer is notified about every finished balance query.
type Observer interface {
	ObserveBalance(currency gateway.Currency, err error)
}

// Report is the balance of the gateway account on one chain, in whole units.
type Report struct {
	Currency gateway.Currency `json:"currency"`
	Account  string           `json:"account"`
	Amount   decimal.Decimal  `json:"amount"`
	Denom    string           `json:"denom"`
}
