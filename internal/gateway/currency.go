package gateway

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Currency identifies one supported EVM chain by its native currency.
// It is a closed set: values outside the declared constants never pass ParseCurrency.
type Currency uint8

const (
	// CurrencyEth is Ethereum's native currency.
	CurrencyEth Currency = iota + 1
	// CurrencyMatic is Polygon's native currency.
	CurrencyMatic
)

const evmDecimals = 18

var currencyNames = map[Currency]string{
	CurrencyEth:   "Eth",
	CurrencyMatic: "Matic",
}

// Currencies returns every supported currency in declaration order.
func Currencies() []Currency {
	return []Currency{CurrencyEth, CurrencyMatic}
}

// ParseCurrency maps a ticker to its Currency. Matching ignores case, so
// "Eth", "ETH" and "eth" resolve to CurrencyEth.
func ParseCurrency(ticker string) (Currency, error) {
	trimmed := strings.TrimSpace(ticker)
	for currency, name := range currencyNames {
		if strings.EqualFold(trimmed, name) {
			return currency, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownTicker, "ticker %q", ticker)
}

// String returns the canonical ticker ("Eth", "Matic").
func (c Currency) String() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}

	return "Unknown"
}

// Valid reports whether c is one of the declared currencies.
func (c Currency) Valid() bool {
	_, ok := currencyNames[c]
	return ok
}

// Decimals is the number of base-unit digits of the native currency (wei for EVM chains).
func (c Currency) Decimals() int32 {
	return evmDecimals
}

func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrUnknownTicker, "currency %d", uint8(c))
	}

	return []byte(c.String()), nil
}

func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c Currency) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}

	return json.Marshal(string(text))
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var ticker string
	if err := json.Unmarshal(data, &ticker); err != nil {
		return errors.Wrap(ErrUnknownTicker, "currency must be a JSON string")
	}

	return c.UnmarshalText([]byte(ticker))
}
