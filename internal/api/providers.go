package api

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/config"
	"github/chapool/evm-gateway/internal/gateway/balance"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"github/chapool/evm-gateway/internal/gateway/signer"
	"github/chapool/evm-gateway/internal/gateway/transfer"
	"github/chapool/evm-gateway/internal/metrics"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewRegistry replays the chains file configured in cfg.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewRegistry(cfg config.Server) (registry.Registry, error) {
	reg, err := registry.New(context.Background(), registry.NewFileStore(cfg.Gateway.ChainsFile))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load chains from %s", cfg.Gateway.ChainsFile)
	}

	return reg, nil
}

func NewDialer(cfg config.Server) client.Dialer {
	return client.NewDialer(client.Options{Timeout: cfg.Gateway.RPCTimeout})
}

func NewKeyMaterial(cfg config.Server) signer.KeyMaterial {
	return signer.KeyMaterial{
		SecretKey:        cfg.Gateway.SecretKey,
		Account:          cfg.Gateway.Account,
		KeystoreFile:     cfg.Gateway.KeystoreFile,
		KeystorePassword: cfg.Gateway.KeystorePassword,
	}
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewSigner(material signer.KeyMaterial) (signer.Service, error) {
	return signer.NewService(material)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewTransferService(reg registry.Registry, dial client.Dialer, sig signer.Service, m *metrics.Service) transfer.Service {
	return transfer.NewService(reg, dial, sig, m)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewBalanceService(cfg config.Server, reg registry.Registry, dial client.Dialer, sig signer.Service, m *metrics.Service) balance.Service {
	return balance.NewService(reg, dial, sig.Account(), balance.Options{
		Concurrency: cfg.Gateway.BalanceConcurrency,
		Observer:    m,
	})
}
