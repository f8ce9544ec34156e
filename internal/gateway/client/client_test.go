package client_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/test/ethnode"
)

var account = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")

func newClient(t *testing.T, node *ethnode.Node) client.Client {
	t.Helper()

	c, err := client.New(gateway.ChainConfig{NodeURL: node.URL(), Denom: "ether", Ticker: "Eth"}, client.Options{Timeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return c
}

func TestNewRejectsMalformedEndpoint(t *testing.T) {
	for _, nodeURL := range []string{"", "   ", "node1", "ftp://node1", "ws://node1:8546", "http://", "http://[::1"} {
		_, err := client.New(gateway.ChainConfig{NodeURL: nodeURL}, client.Options{})
		assert.ErrorIs(t, err, gateway.ErrEndpoint, nodeURL)
	}
}

func TestNewDoesNotContactNode(t *testing.T) {
	node := ethnode.New(t)

	c, err := client.New(gateway.ChainConfig{NodeURL: node.URL()}, client.Options{})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 0, node.TotalCalls())
}

func TestBalanceOf(t *testing.T) {
	node := ethnode.New(t)
	twoEther := new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18))
	node.SetBalance(account, twoEther)

	balance, err := newClient(t, node).BalanceOf(t.Context(), account)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Cmp(twoEther))
	assert.Equal(t, 1, node.Calls("eth_getBalance"))
}

func TestBalanceOfNodeError(t *testing.T) {
	node := ethnode.New(t)
	node.Fail("eth_getBalance", "header not found")

	_, err := newClient(t, node).BalanceOf(t.Context(), account)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrRPC)
	assert.Contains(t, err.Error(), "header not found")
	assert.Equal(t, 1, node.Calls("eth_getBalance"))
}

func TestBalanceOfMalformedResponse(t *testing.T) {
	node := ethnode.New(t)
	node.ReturnMalformed()

	_, err := newClient(t, node).BalanceOf(t.Context(), account)
	assert.ErrorIs(t, err, gateway.ErrRPC)
}

func TestBalanceOfUnreachableNode(t *testing.T) {
	c, err := client.New(gateway.ChainConfig{NodeURL: "http://127.0.0.1:1"}, client.Options{Timeout: time.Second})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.BalanceOf(t.Context(), account)
	assert.ErrorIs(t, err, gateway.ErrRPC)
}

func TestBroadcastReturnsNodeHash(t *testing.T) {
	node := ethnode.New(t)
	c := newClient(t, node)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	chainID := big.NewInt(ethnode.DefaultChainID)
	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(chainID), &types.LegacyTx{
		Nonce:    0,
		To:       &account,
		Value:    big.NewInt(1),
		Gas:      ethnode.DefaultGas,
		GasPrice: big.NewInt(ethnode.DefaultGasPrice),
	})
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	hash, err := c.Broadcast(t.Context(), raw)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), hash)
	require.Len(t, node.Sent(), 1)
}

func TestBroadcastRejected(t *testing.T) {
	node := ethnode.New(t)
	node.Fail("eth_sendRawTransaction", "insufficient funds for gas * price + value")

	_, err := newClient(t, node).Broadcast(t.Context(), []byte{0x01})
	assert.ErrorIs(t, err, gateway.ErrRPC)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestFeeQueries(t *testing.T) {
	node := ethnode.New(t)
	c := newClient(t, node)

	chainID, err := c.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(ethnode.DefaultChainID), chainID.Int64())

	baseFee, err := c.BaseFee(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(ethnode.DefaultBaseFee), baseFee.Int64())

	node.SetBaseFee(nil)
	baseFee, err = c.BaseFee(t.Context())
	require.NoError(t, err)
	assert.Nil(t, baseFee)

	node.SetNonce(account, 9)
	nonce, err := c.PendingNonceAt(t.Context(), account)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), nonce)

	tip, err := c.SuggestGasTipCap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(ethnode.DefaultTipCap), tip.Int64())

	price, err := c.SuggestGasPrice(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(ethnode.DefaultGasPrice), price.Int64())
}
