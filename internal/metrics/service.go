package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/registry"
)

const namespace = "gateway"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Service owns the process' prometheus registry and the gateway collectors.
type Service struct {
	Registry *prometheus.Registry

	registrations *prometheus.CounterVec
	transfers     *prometheus.CounterVec
	balances      *prometheus.CounterVec
}

// New creates the collectors and registers them with a fresh prometheus registry.
// reg backs the registered chains gauge.
func New(reg registry.Registry) (*Service, error) {
	s := &Service{
		Registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Chain registration attempts by currency and outcome.",
		}, []string{"currency", "outcome"}),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Transfer attempts by currency and outcome.",
		}, []string{"currency", "outcome"}),
		balances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_queries_total",
			Help:      "Balance queries by currency and outcome.",
		}, []string{"currency", "outcome"}),
	}

	registeredChains := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "registered_chains",
		Help:      "Number of chains currently registered.",
	}, func() float64 {
		return float64(reg.Len())
	})

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.registrations,
		s.transfers,
		s.balances,
		registeredChains,
	} {
		if err := s.Registry.Register(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Service) ObserveRegistration(currency gateway.Currency, err error) {
	s.registrations.WithLabelValues(currency.String(), Outcome(err)).Inc()
}

func (s *Service) ObserveTransfer(currency gateway.Currency, err error) {
	s.transfers.WithLabelValues(currency.String(), Outcome(err)).Inc()
}

func (s *Service) ObserveBalance(currency gateway.Currency, err error) {
	s.balances.WithLabelValues(currency.String(), Outcome(err)).Inc()
}

var outcomes = []struct {
	sentinel error
	label    string
}{
	{gateway.ErrAlreadyRegistered, "already_registered"},
	{gateway.ErrUnknownCurrency, "unknown_currency"},
	{gateway.ErrUnknownTicker, "unknown_ticker"},
	{gateway.ErrEndpoint, "endpoint"},
	{gateway.ErrInvalidAddress, "invalid_address"},
	{gateway.ErrBroadcast, "broadcast"},
	{gateway.ErrRPC, "rpc"},
	{gateway.ErrKeyMaterial, "key_material"},
	{gateway.ErrSigning, "signing"},
	{gateway.ErrPersistence, "persistence"},
}

// Outcome is the label value recorded for err.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	for _, o := range outcomes {
		if errors.Is(err, o.sentinel) {
			return o.label
		}
	}

	return OutcomeError
}
