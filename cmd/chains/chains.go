package chains

import (
	"github.com/spf13/cobra"
	"github/chapool/evm-gateway/internal/util/command"
)

const (
	chainsFileFlag string = "file"
	nodeURLFlag    string = "node-url"
	denomFlag      string = "denom"
	tickerFlag     string = "ticker"
)

func New() *cobra.Command {
	cmd := command.NewSubcommandGroup("chains",
		newList(),
		newAdd(),
	)

	cmd.PersistentFlags().String(chainsFileFlag, "", "Chains file to operate on. Defaults to GATEWAY_CHAINS_FILE.")

	return cmd
}
