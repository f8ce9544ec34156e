package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/evm-gateway/internal/api/handlers/common"
	"github/chapool/evm-gateway/internal/config"
	"github/chapool/evm-gateway/internal/util/command"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Checks that the chains file can be loaded.

Exits with code 1 if the probe fails.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			os.Exit(runReadiness(verbose))
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(verbose bool) int {
	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Management.ReadinessTimeout)
	defer cancel()

	errs := common.ProbeReadiness(ctx, cfg.Gateway.ChainsFile)
	if len(errs) > 0 {
		if verbose {
			for _, err := range errs {
				fmt.Println(err.Error())
			}
		}

		return 1
	}

	if verbose {
		fmt.Println("Ready.")
	}

	return 0
}
