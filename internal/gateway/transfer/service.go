package transfer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"github/chapool/evm-gateway/internal/gateway/signer"
)

type service struct {
	registry registry.Registry
	dial     client.Dialer
	signer   signer.Service
	observer Observer
}

// NewService wires the transfer pipeline. observer may be nil.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(reg registry.Registry, dial client.Dialer, sig signer.Service, observer Observer) Service {
	return &service{
		registry: reg,
		dial:     dial,
		signer:   sig,
		observer: observer,
	}
}

func (s *service) Execute(ctx context.Context, currency gateway.Currency, req gateway.TransferRequest) (common.Hash, error) {
	hash, err := s.execute(ctx, currency, req)
	if s.observer != nil {
		s.observer.ObserveTransfer(currency, err)
	}

	return hash, err
}

func (s *service) execute(ctx context.Context, currency gateway.Currency, req gateway.TransferRequest) (common.Hash, error) {
	if req.Currency != currency {
		return common.Hash{}, errors.Wrapf(gateway.ErrUnknownCurrency,
			"request currency %s does not match %s", req.Currency, currency)
	}

	config, ok := s.registry.Get(currency)
	if !ok {
		return common.Hash{}, errors.Wrapf(gateway.ErrUnknownCurrency, "no chain registered for %s", currency)
	}

	// Reject bad destinations before touching the node.
	if _, err := signer.ParseAddress(req.To); err != nil {
		return common.Hash{}, err
	}

	c, err := s.dial(config)
	if err != nil {
		return common.Hash{}, err
	}
	defer c.Close()

	hash, err := s.signer.BuildAndSend(ctx, req, c)
	if err != nil {
		log.Error().
			Err(err).
			Str("currency", currency.String()).
			Str("node_url", config.NodeURL).
			Msg("Transfer failed")

		return common.Hash{}, err
	}

	log.Info().
		Str("currency", currency.String()).
		Str("to", req.To).
		Str("tx_hash", hash.Hex()).
		Msg("Transfer broadcast")

	return hash, nil
}
