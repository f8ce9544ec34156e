package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
)

// Service signs and submits native-currency transfers from one fixed account.
type Service interface {
	// Account returns the address transfers are sent from.
	Account() common.Address

	// BuildAndSend validates req, fills the remaining transaction fields from the
	// node, signs the transaction once and broadcasts it once through c.
	BuildAndSend(ctx context.Context, req gateway.TransferRequest, c client.Client) (common.Hash, error)
}

// KeyMaterial is the secret configuration the signing key is resolved from.
// Either SecretKey or KeystoreFile must be set; KeystoreFile takes precedence.
type KeyMaterial struct {
	SecretKey        string // Hex encoded secp256k1 private key, with or without 0x prefix
	Account          string // Expected account address; derived from the key when empty
	KeystoreFile     string // Path to an Ethereum keystore v3 JSON file
	KeystorePassword string // Password of KeystoreFile
}
