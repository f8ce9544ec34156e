package gateway

import "math/big"

// ChainConfig describes how to reach one chain. It is a value type and is
// never modified after it has been registered.
type ChainConfig struct {
	NodeURL string `json:"node_url" toml:"node_url"`
	Denom   string `json:"denom" toml:"denom"`
	Ticker  string `json:"ticker" toml:"ticker"`
}

// Currency resolves the registry key of the config from its ticker.
func (c ChainConfig) Currency() (Currency, error) {
	return ParseCurrency(c.Ticker)
}

// TransferRequest asks for a native-currency transfer. Amount is expressed in
// base units (wei) and must not be negative.
type TransferRequest struct {
	To       string
	Amount   *big.Int
	Currency Currency
}
