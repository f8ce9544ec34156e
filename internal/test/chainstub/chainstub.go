// Package chainstub provides an in-memory client.Client that records calls.
package chainstub

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
)

// Client is a scripted chain client. Zero values answer with sensible defaults:
// chain id 1337, nonce 0, legacy fees and a 21000 gas limit.
type Client struct {
	ChainIDValue *big.Int
	Nonce        uint64
	GasPrice     *big.Int
	TipCap       *big.Int
	BaseFeeValue *big.Int
	Gas          uint64
	Balance      *big.Int

	BalanceErr   error
	BroadcastErr error
	ChainIDErr   error

	mu         sync.Mutex
	calls      int
	broadcasts [][]byte
	closed     bool
}

var _ client.Client = (*Client)(nil)

// Dialer returns a dialer that hands out c for every config.
func (c *Client) Dialer() client.Dialer {
	return func(gateway.ChainConfig) (client.Client, error) {
		return c, nil
	}
}

// Calls returns the number of network-facing calls made.
func (c *Client) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

// Broadcasts returns the raw transactions passed to Broadcast.
func (c *Client) Broadcasts() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([][]byte(nil), c.broadcasts...)
}

// Transactions decodes the broadcast raw transactions.
func (c *Client) Transactions() ([]*types.Transaction, error) {
	txs := make([]*types.Transaction, 0, len(c.Broadcasts()))
	for _, raw := range c.Broadcasts() {
		tx := new(types.Transaction)
		if err := tx.UnmarshalBinary(raw); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// Closed reports whether Close was called.
func (c *Client) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func (c *Client) record() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
}

func (c *Client) BalanceOf(_ context.Context, _ common.Address) (*big.Int, error) {
	c.record()
	if c.BalanceErr != nil {
		return nil, gateway.Kind(gateway.ErrRPC, c.BalanceErr)
	}
	if c.Balance == nil {
		return new(big.Int), nil
	}

	return new(big.Int).Set(c.Balance), nil
}

func (c *Client) Broadcast(_ context.Context, rawTx []byte) (common.Hash, error) {
	c.mu.Lock()
	c.calls++
	c.broadcasts = append(c.broadcasts, rawTx)
	c.mu.Unlock()

	if c.BroadcastErr != nil {
		return common.Hash{}, gateway.Kind(gateway.ErrRPC, c.BroadcastErr)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(rawTx); err != nil {
		return common.Hash{}, gateway.Kind(gateway.ErrRPC, err)
	}

	return tx.Hash(), nil
}

func (c *Client) ChainID(_ context.Context) (*big.Int, error) {
	c.record()
	if c.ChainIDErr != nil {
		return nil, gateway.Kind(gateway.ErrRPC, c.ChainIDErr)
	}
	if c.ChainIDValue == nil {
		return big.NewInt(1337), nil
	}

	return c.ChainIDValue, nil
}

func (c *Client) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	c.record()
	return c.Nonce, nil
}

func (c *Client) SuggestGasPrice(_ context.Context) (*big.Int, error) {
	c.record()
	if c.GasPrice == nil {
		return big.NewInt(1_000_000_000), nil
	}

	return c.GasPrice, nil
}

func (c *Client) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	c.record()
	if c.TipCap == nil {
		return big.NewInt(1_000_000_000), nil
	}

	return c.TipCap, nil
}

func (c *Client) BaseFee(_ context.Context) (*big.Int, error) {
	c.record()
	return c.BaseFeeValue, nil
}

func (c *Client) EstimateGas(_ context.Context, _ ethereum.CallMsg) (uint64, error) {
	c.record()
	if c.Gas == 0 {
		return 21000, nil
	}

	return c.Gas, nil
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
}
