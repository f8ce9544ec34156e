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

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Runs the liveness probes against the configured writeable paths.

Exits with code 1 if any probe fails.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			os.Exit(runLiveness(verbose))
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runLiveness(verbose bool) int {
	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Management.LivenessTimeout)
	defer cancel()

	errs := common.ProbeLiveness(ctx, cfg.Management.ProbeWriteablePathsAbs, cfg.Management.ProbeWriteableTouchfile)
	if len(errs) > 0 {
		if verbose {
			for _, err := range errs {
				fmt.Println(err.Error())
			}
		}

		return 1
	}

	if verbose {
		fmt.Println("Liveness probes succeeded.")
	}

	return 0
}
