package datasetcmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/openglam/artroulette/internal/dataset"
	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command
func NewFetchCmd() *cobra.Command {
	var output string
	var size int
	var baseURL string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one batch of catalog records into a local snapshot",
		Long: `Fetch one random batch of records with images from the catalog API and
save it to a local snapshot file (.parquet or .jsonl by extension).

Snapshots let you study selection behavior offline without hitting the API
on every draw.`,
		Example: `  # Save 50 records to a parquet snapshot
  artroulette dataset fetch --output ./snapshots/objects.parquet

  # Save a smaller JSONL snapshot
  artroulette dataset fetch --output ./snapshots/objects.jsonl --size 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeFetch(cmd, output, size, baseURL)
		},
	}

	cmd.Flags().StringVar(&output, "output", "./snapshots/objects.parquet", "Snapshot file to write (.parquet or .jsonl)")
	cmd.Flags().IntVar(&size, "size", harvardart.DefaultBatchSize, "Number of records to request")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Catalog API base URL (defaults to the public endpoint)")

	return cmd
}

func executeFetch(cmd *cobra.Command, output string, size int, baseURL string) error {
	client := harvardart.NewClient(baseURL, os.Getenv("HARVARD_ART_API_KEY"))

	slog.Info("Fetching batch from catalog", "size", size)
	records, err := client.SearchObjects(cmd.Context(), size)
	if err != nil {
		return fmt.Errorf("failed to fetch batch: %w", err)
	}

	if err := dataset.Save(output, records); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	slog.Info("Snapshot saved", "path", output, "records", len(records))
	return nil
}
