package transfer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github/chapool/evm-gateway/internal/gateway"
)

// Service submits native-currency transfers on registered chains.
type Service interface {
	// Execute signs and broadcasts req on the chain registered for currency and
	// returns the transaction hash reported by the node.
	Execute(ctx context.Context, currency gateway.Currency, req gateway.TransferRequest) (common.Hash, error)
}

// Observer is notified about every finished transfer attempt.
type Observer interface {
	ObserveTransfer(currency gateway.Currency, err error)
}
