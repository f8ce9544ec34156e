package client

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github/chapool/evm-gateway/internal/gateway"
)

// Client talks to the JSON-RPC node of one chain.
// Every failure it returns matches gateway.ErrRPC. No call is retried.
type Client interface {
	// BalanceOf returns the balance of address in base units at the latest block.
	BalanceOf(ctx context.Context, address common.Address) (*big.Int, error)

	// Broadcast submits a signed raw transaction and returns the hash assigned by the node.
	Broadcast(ctx context.Context, rawTx []byte) (common.Hash, error)

	// ChainID returns the EIP-155 chain id of the node.
	ChainID(ctx context.Context) (*big.Int, error)

	// PendingNonceAt returns the next nonce for address, including pending transactions.
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)

	// SuggestGasPrice returns the legacy gas price suggested by the node.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	// SuggestGasTipCap returns the EIP-1559 priority fee suggested by the node.
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)

	// BaseFee returns the base fee of the latest block, or nil if the chain has no EIP-1559 support.
	BaseFee(ctx context.Context) (*big.Int, error)

	// EstimateGas estimates the gas needed by msg.
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// Close releases the underlying transport.
	Close()
}

// Dialer constructs a Client for a chain config. It never touches the network.
type Dialer func(config gateway.ChainConfig) (Client, error)

// Options configures the RPC transport.
type Options struct {
	// Timeout bounds every HTTP round-trip to the node. Zero means no timeout.
	Timeout time.Duration
}
