package ethnode_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/test/ethnode"
)

var holder = common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")

func dial(t *testing.T, node *ethnode.Node) *rpc.Client {
	t.Helper()

	c, err := rpc.DialContext(t.Context(), node.URL())
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return c
}

func TestNodeServesEthNamespace(t *testing.T) {
	node := ethnode.New(t)
	node.SetBalance(holder, big.NewInt(42))
	node.SetNonce(holder, 7)

	eth := ethclient.NewClient(dial(t, node))

	chainID, err := eth.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(ethnode.DefaultChainID), chainID.Int64())

	balance, err := eth.BalanceAt(t.Context(), holder, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.Int64())

	nonce, err := eth.PendingNonceAt(t.Context(), holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), nonce)

	assert.Equal(t, 1, node.Calls("eth_chainId"))
	assert.Equal(t, 1, node.Calls("eth_getBalance"))
	assert.Equal(t, 3, node.TotalCalls())
}

func TestNodeScriptedFailure(t *testing.T) {
	node := ethnode.New(t)
	node.Fail("eth_gasPrice", "service unavailable")

	var price string
	err := dial(t, node).CallContext(t.Context(), &price, "eth_gasPrice")
	require.Error(t, err)

	var rpcErr rpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, -32000, rpcErr.ErrorCode())
	assert.Equal(t, "service unavailable", rpcErr.Error())
	assert.Equal(t, 1, node.Calls("eth_gasPrice"))
}

func TestNodeUnknownMethod(t *testing.T) {
	node := ethnode.New(t)

	var out string
	err := dial(t, node).CallContext(t.Context(), &out, "eth_syncing")
	require.Error(t, err)

	var rpcErr rpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, -32601, rpcErr.ErrorCode())
	assert.Zero(t, node.TotalCalls())
}

func TestNodeMalformedResponse(t *testing.T) {
	node := ethnode.New(t)
	node.ReturnMalformed()

	var out string
	err := dial(t, node).CallContext(t.Context(), &out, "eth_chainId")
	require.Error(t, err)
	assert.Equal(t, 1, node.Calls("eth_chainId"))
}
