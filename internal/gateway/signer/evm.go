package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
)

// maxFee = baseFee * eip1559FeeMultiplier + tipCap
const eip1559FeeMultiplier = 2

type unsignedTransaction struct {
	chainID *big.Int
	nonce   uint64
	data    types.TxData
}

// buildTransaction asks the node for everything except destination and value:
// chain id, pending nonce, fees and gas limit. Chains reporting a base fee get
// an EIP-1559 transaction, the others a legacy one.
func (s *service) buildTransaction(ctx context.Context, c client.Client, to common.Address, amount *big.Int) (*unsignedTransaction, error) {
	value := new(big.Int)
	if amount != nil {
		value.Set(amount)
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	nonce, err := c.PendingNonceAt(ctx, s.account)
	if err != nil {
		return nil, err
	}

	gasLimit, err := c.EstimateGas(ctx, ethereum.CallMsg{
		From:  s.account,
		To:    &to,
		Value: value,
	})
	if err != nil {
		return nil, err
	}

	baseFee, err := c.BaseFee(ctx)
	if err != nil {
		return nil, err
	}

	if baseFee == nil {
		gasPrice, err := c.SuggestGasPrice(ctx)
		if err != nil {
			return nil, err
		}

		return &unsignedTransaction{
			chainID: chainID,
			nonce:   nonce,
			data: &types.LegacyTx{
				Nonce:    nonce,
				GasPrice: gasPrice,
				Gas:      gasLimit,
				To:       &to,
				Value:    value,
			},
		}, nil
	}

	tipCap, err := c.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, err
	}

	maxFee := new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(eip1559FeeMultiplier)), tipCap)

	return &unsignedTransaction{
		chainID: chainID,
		nonce:   nonce,
		data: &types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tipCap,
			GasFeeCap: maxFee,
			Gas:       gasLimit,
			To:        &to,
			Value:     value,
		},
	}, nil
}

// signTransaction signs locally and returns the RLP-encoded transaction and its hash.
func (s *service) signTransaction(unsigned *unsignedTransaction) ([]byte, common.Hash, error) {
	if unsigned.chainID == nil || unsigned.chainID.Sign() <= 0 {
		return nil, common.Hash{}, errors.Wrap(gateway.ErrSigning, "node reported an invalid chain ID")
	}

	signer := types.LatestSignerForChainID(unsigned.chainID)

	signedTx, err := types.SignNewTx(s.privateKey, signer, unsigned.data)
	if err != nil {
		return nil, common.Hash{}, gateway.Kind(gateway.ErrSigning, err)
	}

	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, common.Hash{}, gateway.Kind(gateway.ErrSigning, errors.Wrap(err, "failed to marshal transaction"))
	}

	return rawTx, signedTx.Hash(), nil
}
