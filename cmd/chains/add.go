package chains

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/evm-gateway/internal/gateway"
	"github/chapool/evm-gateway/internal/gateway/client"
	"github/chapool/evm-gateway/internal/gateway/registry"
)

func newAdd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registers a chain",
		Long: `Appends a chain config to the chains file.

Use this while the server is stopped; a running server only picks up
chains registered through its own API.`,
		Run: func(cmd *cobra.Command, _ []string) {
			path, err := chainsFile(cmd)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			flags := cmd.Flags()
			nodeURL, _ := flags.GetString(nodeURLFlag)
			denom, _ := flags.GetString(denomFlag)
			ticker, _ := flags.GetString(tickerFlag)

			chainConfig := gateway.ChainConfig{NodeURL: nodeURL, Denom: denom, Ticker: ticker}
			if err := runAdd(cmd.Context(), path, chainConfig, os.Stdout); err != nil {
				log.Fatal().Err(err).Str("chains_file", path).Msg("Failed to add chain")
			}
		},
	}

	cmd.Flags().String(nodeURLFlag, "", "HTTP(S) JSON-RPC endpoint of the node.")
	cmd.Flags().String(denomFlag, "", "Denomination of the native currency, e.g. ether.")
	cmd.Flags().String(tickerFlag, "", "Ticker of the native currency, e.g. Eth.")
	_ = cmd.MarkFlagRequired(nodeURLFlag)
	_ = cmd.MarkFlagRequired(denomFlag)
	_ = cmd.MarkFlagRequired(tickerFlag)

	return cmd
}

func runAdd(ctx context.Context, path string, chainConfig gateway.ChainConfig, out io.Writer) error {
	if _, err := client.ValidateEndpoint(chainConfig.NodeURL); err != nil {
		return err
	}

	currency, err := chainConfig.Currency()
	if err != nil {
		return err
	}

	reg, err := registry.New(ctx, registry.NewFileStore(path))
	if err != nil {
		return err
	}

	if err := reg.Register(ctx, currency, chainConfig); err != nil {
		return err
	}

	fmt.Fprintf(out, "Currency %s added\n", currency)

	return nil
}
