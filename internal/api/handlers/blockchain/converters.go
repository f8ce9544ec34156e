package blockchain

import (
	"encoding/json"

	"github.com/go-openapi/swag"
	"github/chapool/evm-gateway/internal/gateway/balance"
	"github/chapool/evm-gateway/internal/types"
)

func reportToBalanceReport(report balance.Report) *types.BalanceReport {
	amount := json.Number(report.Amount.String())

	return &types.BalanceReport{
		Currency: swag.String(report.Currency.String()),
		Account:  swag.String(report.Account),
		Amount:   &amount,
		Denom:    swag.String(report.Denom),
	}
}
