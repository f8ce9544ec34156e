// Package ethnode provides an in-process JSON-RPC node that answers the eth_*
// calls used by the gateway. It is meant for tests only.
package ethnode

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	DefaultChainID  = 1337
	DefaultGasPrice = 2_000_000_000
	DefaultTipCap   = 1_000_000_000
	DefaultBaseFee  = 7
	DefaultGas      = 21000
)

// Node is a fake EVM node. All setters are safe for concurrent use.
type Node struct {
	server *httptest.Server
	rpc    *rpc.Server

	mu        sync.Mutex
	chainID   *big.Int
	balances  map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	gasPrice  *big.Int
	tipCap    *big.Int
	baseFee   *big.Int
	gas       uint64
	failing   map[string]string
	sent      []*types.Transaction
	calls     map[string]int
	malformed bool
}

// New starts a node that is shut down when the test ends.
func New(t *testing.T) *Node {
	t.Helper()

	n := &Node{
		rpc:      rpc.NewServer(),
		chainID:  big.NewInt(DefaultChainID),
		balances: make(map[common.Address]*big.Int),
		nonces:   make(map[common.Address]uint64),
		gasPrice: big.NewInt(DefaultGasPrice),
		tipCap:   big.NewInt(DefaultTipCap),
		baseFee:  big.NewInt(DefaultBaseFee),
		gas:      DefaultGas,
		failing:  make(map[string]string),
		calls:    make(map[string]int),
	}

	if err := n.rpc.RegisterName("eth", &ethService{node: n}); err != nil {
		t.Fatalf("Failed to register eth service: %v", err)
	}

	n.server = httptest.NewServer(http.HandlerFunc(n.serveHTTP))
	t.Cleanup(func() {
		n.server.Close()
		n.rpc.Stop()
	})

	return n
}

// URL is the HTTP endpoint of the node.
func (n *Node) URL() string {
	return n.server.URL
}

// SetBalance sets the balance returned for address.
func (n *Node) SetBalance(address common.Address, wei *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.balances[address] = new(big.Int).Set(wei)
}

// SetNonce sets the pending nonce returned for address.
func (n *Node) SetNonce(address common.Address, nonce uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nonces[address] = nonce
}

// SetBaseFee sets the base fee of the latest block. nil makes the node look pre-London.
func (n *Node) SetBaseFee(baseFee *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.baseFee = baseFee
}

// Fail makes every call of method answer with a JSON-RPC error carrying message.
func (n *Node) Fail(method string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.failing[method] = message
}

// ReturnMalformed makes the node answer every call with a body that is not JSON.
func (n *Node) ReturnMalformed() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.malformed = true
}

// Sent returns the transactions received through eth_sendRawTransaction.
func (n *Node) Sent() []*types.Transaction {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]*types.Transaction(nil), n.sent...)
}

// Calls returns how many times method was invoked.
func (n *Node) Calls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.calls[method]
}

// TotalCalls returns the number of JSON-RPC calls served.
func (n *Node) TotalCalls() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	total := 0
	for _, c := range n.calls {
		total += c
	}

	return total
}

// serveHTTP hands requests to the rpc server unless the node was told to
// answer with garbage.
func (n *Node) serveHTTP(w http.ResponseWriter, r *http.Request) {
	n.mu.Lock()
	malformed := n.malformed
	n.mu.Unlock()

	if !malformed {
		n.rpc.ServeHTTP(w, r)
		return
	}

	var req struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		n.mu.Lock()
		n.calls[req.Method]++
		n.mu.Unlock()
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte("not json"))
}

// begin counts a call of method and returns the scripted failure, if any.
func (n *Node) begin(method string) error {
	n.calls[method]++

	if msg, ok := n.failing[method]; ok {
		return &nodeError{message: msg}
	}

	return nil
}

// nodeError is reported with the generic server error code, like geth does
// for rejected transactions.
type nodeError struct {
	message string
}

func (e *nodeError) Error() string {
	return e.message
}

func (e *nodeError) ErrorCode() int {
	return -32000
}
