package signer

import (
	"crypto/ecdsa"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/gateway"
)

// resolvePrivateKey loads the signing key from the keystore file if one is
// configured, otherwise from the hex secret.
func resolvePrivateKey(material KeyMaterial) (*ecdsa.PrivateKey, error) {
	if material.KeystoreFile != "" {
		return decryptKeystore(material.KeystoreFile, material.KeystorePassword)
	}

	secret := strings.TrimPrefix(strings.TrimSpace(material.SecretKey), "0x")
	if secret == "" {
		return nil, errors.Wrap(gateway.ErrKeyMaterial, "signing secret is not configured")
	}

	privateKey, err := crypto.HexToECDSA(secret)
	if err != nil {
		return nil, gateway.Kind(gateway.ErrKeyMaterial, errors.Wrap(err, "failed to parse signing secret"))
	}

	return privateKey, nil
}

// decryptKeystore decrypts an Ethereum keystore v3 file (scrypt or pbkdf2, aes-128-ctr).
func decryptKeystore(path string, password string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gateway.Kind(gateway.ErrKeyMaterial, errors.Wrapf(err, "failed to read keystore %s", path))
	}

	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, gateway.Kind(gateway.ErrKeyMaterial, errors.Wrapf(err, "failed to decrypt keystore %s", path))
	}

	return key.PrivateKey, nil
}
