package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
	"github/chapool/evm-gateway/internal/api/handlers/blockchain"
	"github/chapool/evm-gateway/internal/api/handlers/common"
	"github/chapool/evm-gateway/internal/api/handlers/config"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		blockchain.GetBalanceAllRoute(s),
		blockchain.PostBalanceRoute(s),
		blockchain.PostSendRoute(s),
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		config.GetListRoute(s),
		config.PostAddRoute(s),
	}
}
