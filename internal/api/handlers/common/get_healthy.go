package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/evm-gateway/internal/api"
)

const mgmtSecretQueryParam = "mgmt-secret"

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns an human readable string about the current service status.
// In addition to readiness probes, it performs actual write probes.
// Note that /-/healthy is private (shielded by the mgmt-secret) as it may expose sensitive information about your service.
// Structured upon https://prometheus.io/docs/prometheus/latest/management_api/
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.QueryParam(mgmtSecretQueryParam) != s.Config.Management.Secret {
			return echo.ErrUnauthorized
		}

		var str strings.Builder
		fmt.Fprintln(&str, "Ready:", s.Ready())
		fmt.Fprintln(&str, "Registered chains:", s.Registry.Len())

		readinessCtx, readinessCancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer readinessCancel()
		errs := ProbeReadiness(readinessCtx, s.Config.Gateway.ChainsFile)

		livenessCtx, livenessCancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer livenessCancel()
		errs = append(errs, ProbeLiveness(livenessCtx, s.Config.Management.ProbeWriteablePathsAbs, s.Config.Management.ProbeWriteableTouchfile)...)

		for _, err := range errs {
			fmt.Fprintln(&str, err.Error())
		}

		if len(errs) > 0 || !s.Ready() {
			return c.String(StatusNotReady, str.String())
		}

		fmt.Fprint(&str, "Probes succeeded.")

		return c.String(http.StatusOK, str.String())
	}
}
