package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artroulette",
		Short: "Random artwork discovery with banable attributes",
		Long: `Artroulette fetches random artwork records from a museum catalog API and
picks one for you, skipping any artist, culture, or century you have banned.

Run the web interface with "artroulette serve", roll once from the terminal
with "artroulette discover", or study selection statistics offline with the
"artroulette dataset" commands.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newDiscoverCmd())
	cmd.AddCommand(newDatasetCmd())

	return cmd
}
