package ethnode

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

// ethService implements the eth namespace served by Node.
type ethService struct {
	node *Node
}

func (s *ethService) ChainId() (*hexutil.Big, error) { //nolint:revive,stylecheck // rpc method name eth_chainId
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_chainId"); err != nil {
		return nil, err
	}

	return (*hexutil.Big)(new(big.Int).Set(n.chainID)), nil
}

func (s *ethService) GetBalance(address common.Address, _ rpc.BlockNumberOrHash) (*hexutil.Big, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_getBalance"); err != nil {
		return nil, err
	}

	balance, ok := n.balances[address]
	if !ok {
		balance = new(big.Int)
	}

	return (*hexutil.Big)(new(big.Int).Set(balance)), nil
}

func (s *ethService) GetTransactionCount(address common.Address, _ rpc.BlockNumberOrHash) (hexutil.Uint64, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_getTransactionCount"); err != nil {
		return 0, err
	}

	return hexutil.Uint64(n.nonces[address]), nil
}

func (s *ethService) GasPrice() (*hexutil.Big, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_gasPrice"); err != nil {
		return nil, err
	}

	return (*hexutil.Big)(new(big.Int).Set(n.gasPrice)), nil
}

func (s *ethService) MaxPriorityFeePerGas() (*hexutil.Big, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_maxPriorityFeePerGas"); err != nil {
		return nil, err
	}

	return (*hexutil.Big)(new(big.Int).Set(n.tipCap)), nil
}

// GetBlockByNumber returns a header-only block; only baseFeePerGas is read by callers.
func (s *ethService) GetBlockByNumber(_ rpc.BlockNumber, _ bool) (map[string]any, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_getBlockByNumber"); err != nil {
		return nil, err
	}

	block := map[string]any{"number": "0x10"}
	if n.baseFee != nil {
		block["baseFeePerGas"] = (*hexutil.Big)(new(big.Int).Set(n.baseFee))
	}

	return block, nil
}

func (s *ethService) EstimateGas(_ map[string]any, _ *rpc.BlockNumberOrHash) (hexutil.Uint64, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_estimateGas"); err != nil {
		return 0, err
	}

	return hexutil.Uint64(n.gas), nil
}

func (s *ethService) SendRawTransaction(input hexutil.Bytes) (common.Hash, error) {
	n := s.node
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("eth_sendRawTransaction"); err != nil {
		return common.Hash{}, err
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(input); err != nil {
		return common.Hash{}, err
	}

	n.sent = append(n.sent, tx)

	return tx.Hash(), nil
}
