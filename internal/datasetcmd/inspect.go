package datasetcmd

import (
	"fmt"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/dataset"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var snapshotPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print normalized records from a snapshot",
		Long: `Inspect records from a snapshot file after normalization, the way the
selector sees them. Useful for checking which values would be banable and
how many fields collapse to N/A.`,
		Example: `  # Show the first 10 records
  artroulette dataset inspect --snapshot ./snapshots/objects.parquet

  # Show all records
  artroulette dataset inspect --snapshot ./snapshots/objects.parquet --limit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshotPath == "" {
				return fmt.Errorf("--snapshot is required")
			}
			return executeInspect(snapshotPath, limit)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to snapshot file (required)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to show (0 for all)")

	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func executeInspect(snapshotPath string, limit int) error {
	records, err := dataset.NewLoader(snapshotPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	shown := 0
	unknownFields := 0
	for _, rec := range records {
		a := artwork.Normalize(rec)
		for _, attr := range artwork.Attributes {
			if a.AttributeValue(attr) == artwork.Unknown {
				unknownFields++
			}
		}
		if limit > 0 && shown >= limit {
			continue
		}
		shown++
		fmt.Printf("--- record %d ---\n", shown)
		fmt.Printf("title:   %s\n", a.Title)
		fmt.Printf("artist:  %s\n", a.Artist)
		fmt.Printf("culture: %s\n", a.Culture)
		fmt.Printf("century: %s\n", a.Century)
		fmt.Printf("date:    %s\n", a.Date)
		fmt.Printf("medium:  %s\n", a.Medium)
		fmt.Printf("image:   %s\n", a.ImageURL)
	}

	fmt.Printf("\n%d records, %d banable fields collapsed to %s\n", len(records), unknownFields, artwork.Unknown)
	return nil
}
