package gateway

import "github.com/pkg/errors"

// Error kinds surfaced by the registry and the transaction pipeline.
// Callers match them with errors.Is; the originating cause is kept by wrapping.
var (
	ErrAlreadyRegistered = errors.New("chain already registered")
	ErrUnknownCurrency   = errors.New("currency not registered")
	ErrUnknownTicker     = errors.New("ticker not supported")
	ErrEndpoint          = errors.New("invalid node endpoint")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrKeyMaterial       = errors.New("invalid key material")
	ErrSigning           = errors.New("failed to sign transaction")
	ErrRPC               = errors.New("rpc request failed")
	ErrBroadcast         = errors.New("failed to broadcast transaction")
	ErrPersistence       = errors.New("failed to persist chain configuration")
)

// kindError attaches a sentinel kind to an underlying cause so that both
// errors.Is(err, kind) and errors.Is(err, cause) hold.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// Kind wraps cause with the given error kind. A nil cause returns the kind itself.
func Kind(kind error, cause error) error {
	if cause == nil {
		return kind
	}

	return &kindError{kind: kind, cause: cause}
}
