package client

import (
	"context"
	"math/big"
	"net/http"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/gateway"
)

// rpcClient wraps the go-ethereum client for a single node URL.
type rpcClient struct {
	url string
	rpc *rpc.Client
	eth *ethclient.Client
}

// NewDialer returns a Dialer building HTTP clients with opts.
func NewDialer(opts Options) Dialer {
	return func(config gateway.ChainConfig) (Client, error) {
		return New(config, opts)
	}
}

// New builds a client for config.NodeURL. Only the URL is validated; the node
// is not contacted until the first call.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func New(config gateway.ChainConfig, opts Options) (Client, error) {
	endpoint, err := ValidateEndpoint(config.NodeURL)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: opts.Timeout}

	// DialOptions over http(s) only prepares the transport.
	rc, err := rpc.DialOptions(context.Background(), endpoint.String(), rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, gateway.Kind(gateway.ErrEndpoint, err)
	}

	return &rpcClient{
		url: endpoint.String(),
		rpc: rc,
		eth: ethclient.NewClient(rc),
	}, nil
}

// ValidateEndpoint checks that rawURL is an absolute http(s) URL with a host.
func ValidateEndpoint(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, errors.Wrap(gateway.ErrEndpoint, "node url is empty")
	}

	endpoint, err := url.Parse(trimmed)
	if err != nil {
		return nil, gateway.Kind(gateway.ErrEndpoint, err)
	}

	switch endpoint.Scheme {
	case "http", "https":
	default:
		return nil, errors.Wrapf(gateway.ErrEndpoint, "unsupported scheme %q in %s", endpoint.Scheme, trimmed)
	}

	if endpoint.Host == "" {
		return nil, errors.Wrapf(gateway.ErrEndpoint, "missing host in %s", trimmed)
	}

	return endpoint, nil
}

func (c *rpcClient) BalanceOf(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, c.rpcError(err, "failed to get balance")
	}

	return balance, nil
}

func (c *rpcClient) Broadcast(ctx context.Context, rawTx []byte) (common.Hash, error) {
	var hash common.Hash
	if err := c.rpc.CallContext(ctx, &hash, "eth_sendRawTransaction", hexutil.Encode(rawTx)); err != nil {
		return common.Hash{}, c.rpcError(err, "failed to send raw transaction")
	}

	return hash, nil
}

func (c *rpcClient) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, c.rpcError(err, "failed to get chain ID")
	}

	return chainID, nil
}

func (c *rpcClient) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	nonce, err := c.eth.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, c.rpcError(err, "failed to get pending nonce")
	}

	return nonce, nil
}

func (c *rpcClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, c.rpcError(err, "failed to suggest gas price")
	}

	return price, nil
}

func (c *rpcClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	tipCap, err := c.eth.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, c.rpcError(err, "failed to suggest gas tip cap")
	}

	return tipCap, nil
}

// latestBlock holds the only field of eth_getBlockByNumber the signer needs.
type latestBlock struct {
	BaseFee *hexutil.Big `json:"baseFeePerGas"`
}

func (c *rpcClient) BaseFee(ctx context.Context) (*big.Int, error) {
	var block *latestBlock
	if err := c.rpc.CallContext(ctx, &block, "eth_getBlockByNumber", "latest", false); err != nil {
		return nil, c.rpcError(err, "failed to get latest block")
	}

	if block == nil {
		return nil, c.rpcError(ethereum.NotFound, "latest block not found")
	}

	if block.BaseFee == nil {
		//nolint:nilnil // a missing base fee marks a chain without EIP-1559
		return nil, nil
	}

	return block.BaseFee.ToInt(), nil
}

func (c *rpcClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := c.eth.EstimateGas(ctx, msg)
	if err != nil {
		return 0, c.rpcError(err, "failed to estimate gas")
	}

	return gas, nil
}

func (c *rpcClient) Close() {
	c.rpc.Close()
}

func (c *rpcClient) rpcError(err error, msg string) error {
	return gateway.Kind(gateway.ErrRPC, errors.Wrapf(err, "%s (node %s)", msg, c.url))
}
