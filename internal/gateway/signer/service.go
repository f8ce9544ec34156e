package signer

import (
	"context"
	"crypto/ecdsa"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
)

var hexAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type service struct {
	privateKey *ecdsa.PrivateKey
	account    common.Address
}

// NewService resolves the signing key once. It fails with gateway.ErrKeyMaterial
// if the secret is missing, malformed or does not belong to material.Account.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(material KeyMaterial) (Service, error) {
	privateKey, err := resolvePrivateKey(material)
	if err != nil {
		return nil, err
	}

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.Wrap(gateway.ErrKeyMaterial, "failed to cast public key to ECDSA")
	}
	derived := crypto.PubkeyToAddress(*publicKey)

	if material.Account != "" {
		expected, err := ParseAddress(material.Account)
		if err != nil {
			return nil, gateway.Kind(gateway.ErrKeyMaterial, errors.Wrap(err, "configured account"))
		}
		if expected != derived {
			return nil, errors.Wrapf(gateway.ErrKeyMaterial, "account %s does not match private key", expected.Hex())
		}
	}

	log.Info().Str("account", derived.Hex()).Msg("Signing key loaded")

	return &service{
		privateKey: privateKey,
		account:    derived,
	}, nil
}

func (s *service) Account() common.Address {
	return s.account
}

// BuildAndSend signs and broadcasts a native transfer
func (s *service) BuildAndSend(ctx context.Context, req gateway.TransferRequest, c client.Client) (common.Hash, error) {
	to, err := ParseAddress(req.To)
	if err != nil {
		return common.Hash{}, err
	}

	if req.Amount != nil && req.Amount.Sign() < 0 {
		return common.Hash{}, errors.Wrapf(gateway.ErrSigning, "negative amount %s", req.Amount)
	}

	unsigned, err := s.buildTransaction(ctx, c, to, req.Amount)
	if err != nil {
		return common.Hash{}, err
	}

	rawTx, txHash, err := s.signTransaction(unsigned)
	if err != nil {
		return common.Hash{}, err
	}

	log.Info().
		Str("currency", req.Currency.String()).
		Str("to", to.Hex()).
		Str("tx_hash", txHash.Hex()).
		Uint64("nonce", unsigned.nonce).
		Msg("Submitting signed transaction")

	nodeHash, err := c.Broadcast(ctx, rawTx)
	if err != nil {
		return common.Hash{}, gateway.Kind(gateway.ErrBroadcast, err)
	}

	if nodeHash != txHash {
		log.Warn().
			Str("tx_hash", txHash.Hex()).
			Str("node_tx_hash", nodeHash.Hex()).
			Msg("Node returned a different transaction hash")
	}

	return nodeHash, nil
}

// ParseAddress accepts a 0x-prefixed 20-byte hex address. Mixed-case input
// must carry a valid EIP-55 checksum.
func ParseAddress(raw string) (common.Address, error) {
	trimmed := strings.TrimSpace(raw)
	if !hexAddressPattern.MatchString(trimmed) {
		return common.Address{}, errors.Wrapf(gateway.ErrInvalidAddress, "%q is not a hex address", raw)
	}

	address := common.HexToAddress(trimmed)

	body := trimmed[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && address.Hex() != trimmed {
		return common.Address{}, errors.Wrapf(gateway.ErrInvalidAddress, "%q has an invalid checksum", raw)
	}

	return address, nil
}
