//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/evm-gateway/internal/config"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"github/chapool/evm-gateway/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewKeyMaterial,
	NewSigner,
	NewTransferService,
	NewBalanceService,
	metrics.New,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewRegistry, NewDialer)
	return new(Server), nil
}

// InitNewServerWithComponents returns a new Server instance using the given registry and dialer.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithComponents(
	_ config.Server,
	_ registry.Registry,
	_ client.Dialer,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
