package datasetcmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/bans"
	"github.com/openglam/artroulette/internal/dataset"
	"github.com/openglam/artroulette/internal/report"
	"github.com/openglam/artroulette/internal/selector"
	"github.com/spf13/cobra"
)

// NewSampleCmd creates the sample command
func NewSampleCmd() *cobra.Command {
	var snapshotPath string
	var draws int
	var seed int64
	var banArtists []string
	var banCultures []string
	var banCenturies []string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run repeated selections against a snapshot and report frequencies",
		Long: `Run many independent ban-aware selections against a local snapshot and
write a YAML report of per-record selection frequency.

With a uniform selector, each eligible record's frequency converges to
1/eligible as the number of draws grows.`,
		Example: `  # 10000 draws, no bans
  artroulette dataset sample --snapshot ./snapshots/objects.parquet

  # Draws with a culture banned, fixed seed
  artroulette dataset sample --snapshot ./snapshots/objects.parquet --ban-culture Greek --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshotPath == "" {
				return fmt.Errorf("--snapshot is required")
			}
			return executeSample(snapshotPath, draws, seed, banArtists, banCultures, banCenturies)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to snapshot file (required)")
	cmd.Flags().IntVar(&draws, "draws", 10000, "Number of independent selections")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().StringArrayVar(&banArtists, "ban-artist", nil, "Artist to ban (repeatable)")
	cmd.Flags().StringArrayVar(&banCultures, "ban-culture", nil, "Culture to ban (repeatable)")
	cmd.Flags().StringArrayVar(&banCenturies, "ban-century", nil, "Century to ban (repeatable)")

	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func executeSample(snapshotPath string, draws int, seed int64, banArtists, banCultures, banCenturies []string) error {
	records, err := dataset.NewLoader(snapshotPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	set, err := BuildBanSet(banArtists, banCultures, banCenturies)
	if err != nil {
		return err
	}

	eligible := selector.Eligible(records, set)
	if len(eligible) == 0 {
		return selector.ErrNoEligibleArtworks
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	counts := make(map[artwork.Artwork]int, len(eligible))
	for i := 0; i < draws; i++ {
		picked, err := selector.Select(records, set, rng)
		if err != nil {
			return fmt.Errorf("draw %d failed: %w", i, err)
		}
		counts[picked]++
	}

	rep := &report.SampleReport{
		Config: report.SampleConfig{
			SnapshotPath: snapshotPath,
			Draws:        draws,
			Seed:         seed,
			Bans:         banMap(set),
		},
		BatchSize:         len(records),
		EligibleRecords:   len(eligible),
		ExpectedFrequency: 1.0 / float64(len(eligible)),
		Results:           make([]report.RecordFrequency, 0, len(eligible)),
	}
	for _, a := range eligible {
		rep.Results = append(rep.Results, report.RecordFrequency{
			Title:     a.Title,
			Artist:    a.Artist,
			Culture:   a.Culture,
			Century:   a.Century,
			Count:     counts[a],
			Frequency: float64(counts[a]) / float64(draws),
		})
	}

	path, err := report.SaveToYAML(rep)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	fmt.Printf("Sampled %d draws over %d eligible records (of %d in batch)\n", draws, len(eligible), len(records))
	fmt.Printf("Report saved to: %s\n", path)
	return nil
}

// BuildBanSet assembles a BanSet from per-attribute value lists.
func BuildBanSet(artists, cultures, centuries []string) (bans.BanSet, error) {
	set := bans.New()
	var err error
	for attr, values := range map[artwork.Attribute][]string{
		artwork.AttrArtist:  artists,
		artwork.AttrCulture: cultures,
		artwork.AttrCentury: centuries,
	} {
		for _, v := range values {
			if set, err = set.Add(attr, v); err != nil {
				return bans.BanSet{}, err
			}
		}
	}
	return set, nil
}

func banMap(set bans.BanSet) map[string][]string {
	if set.Len() == 0 {
		return nil
	}
	out := make(map[string][]string, len(artwork.Attributes))
	for _, attr := range artwork.Attributes {
		if values := set.Values(attr); values != nil {
			out[string(attr)] = values
		}
	}
	return out
}
