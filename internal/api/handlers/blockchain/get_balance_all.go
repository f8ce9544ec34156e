package blockchain

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/types"
	"github/chapool/evm-gateway/internal/util"
)

func GetBalanceAllRoute(s *api.Server) *echo.Route {
	return s.Router.Blockchain.GET("/balance_all", getBalanceAllHandler(s))
}

func getBalanceAllHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		reports, err := s.Balance.BalanceForAll(c.Request().Context())
		if err != nil {
			return err
		}

		response := make(types.GetBalanceAllResponse, 0, len(reports))
		for _, report := range reports {
			response = append(response, reportToBalanceReport(report))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
