package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/curator"
	"github.com/openglam/artroulette/internal/datasetcmd"
	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/openglam/artroulette/internal/selector"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDiscoverCmd() *cobra.Command {
	var banArtists []string
	var banCultures []string
	var banCenturies []string
	var format string
	var seed int64
	var size int
	var baseURL string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Fetch a batch and pick one random artwork",
		Long: `Fetch one random batch of records from the catalog, drop every record
matching a banned artist, culture, or century, and print one of the rest
chosen uniformly at random.`,
		Example: `  # Roll once
  artroulette discover

  # Roll avoiding a culture and an artist
  artroulette discover --ban-culture Greek --ban-artist "Unidentified Artist"

  # Machine-readable output
  artroulette discover --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := datasetcmd.BuildBanSet(banArtists, banCultures, banCenturies)
			if err != nil {
				return err
			}

			client := harvardart.NewClient(baseURL, os.Getenv("HARVARD_ART_API_KEY"))
			records, err := client.SearchObjects(cmd.Context(), size)
			if err != nil {
				return fmt.Errorf("failed to fetch batch: %w", err)
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			picked, err := selector.Select(records, set, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			if noter := curator.FromEnv(); noter != nil {
				note, err := noter.Note(cmd.Context(), picked)
				if err != nil {
					slog.Warn("Curatorial note generation failed", "err", err)
				} else {
					picked.Note = note
				}
			}

			return printArtwork(picked, format)
		},
	}

	cmd.Flags().StringArrayVar(&banArtists, "ban-artist", nil, "Artist to ban (repeatable)")
	cmd.Flags().StringArrayVar(&banCultures, "ban-culture", nil, "Culture to ban (repeatable)")
	cmd.Flags().StringArrayVar(&banCenturies, "ban-century", nil, "Century to ban (repeatable)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or yaml")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().IntVar(&size, "size", harvardart.DefaultBatchSize, "Number of candidate records to request")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Catalog API base URL (defaults to the public endpoint)")

	return cmd
}

func printArtwork(a artwork.Artwork, format string) error {
	switch format {
	case "text":
		fmt.Printf("%s\n", a.Title)
		fmt.Printf("  artist:  %s\n", a.Artist)
		fmt.Printf("  culture: %s\n", a.Culture)
		fmt.Printf("  century: %s\n", a.Century)
		fmt.Printf("  date:    %s\n", a.Date)
		fmt.Printf("  medium:  %s\n", a.Medium)
		if a.ImageURL != "" {
			fmt.Printf("  image:   %s\n", a.ImageURL)
		}
		if a.Note != "" {
			fmt.Printf("\n%s\n", a.Note)
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (expected text, json, or yaml)", format)
	}
}
