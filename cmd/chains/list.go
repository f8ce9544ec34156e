package chains

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/evm-gateway/internal/config"
	"github/chapool/evm-gateway/internal/gateway/registry"
)

func newList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists registered chains",
		Long:  `Prints every chain config persisted in the chains file, ordered by ticker.`,
		Run: func(cmd *cobra.Command, _ []string) {
			path, err := chainsFile(cmd)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			if err := runList(cmd.Context(), path, os.Stdout); err != nil {
				log.Fatal().Err(err).Str("chains_file", path).Msg("Failed to list chains")
			}
		},
	}
}

func runList(ctx context.Context, path string, out io.Writer) error {
	reg, err := registry.New(ctx, registry.NewFileStore(path))
	if err != nil {
		return err
	}

	//nolint:mnd
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKER\tDENOM\tNODE URL")
	for _, entry := range reg.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Currency, entry.Config.Denom, entry.Config.NodeURL)
	}

	return errors.Wrap(w.Flush(), "failed to write chains")
}

func chainsFile(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString(chainsFileFlag)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = config.DefaultServiceConfigFromEnv().Gateway.ChainsFile
	}

	return path, nil
}
