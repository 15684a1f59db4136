package cmd

import (
	"github.com/openglam/artroulette/internal/datasetcmd"
	"github.com/spf13/cobra"
)

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Offline snapshot tools",
		Long: `Tools for working with local snapshots of catalog batches.

Fetch a batch once into a parquet or JSONL file, inspect it after
normalization, and run repeated selections against it to study how bans
shape the eligible pool and how evenly the selector draws from it.`,
	}

	// Add dataset subcommands
	cmd.AddCommand(datasetcmd.NewFetchCmd())
	cmd.AddCommand(datasetcmd.NewSampleCmd())
	cmd.AddCommand(datasetcmd.NewInspectCmd())

	return cmd
}
