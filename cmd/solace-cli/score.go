package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

// newScoreCmd creates the score subcommand.
func newScoreCmd() *cobra.Command {
	var (
		entryID string
		urls    []string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score knowledge entries or probe source URLs",
		Long: `Score computes trust scores for knowledge entries, probing each source
URL for reachability. With --url, probes the given URLs directly instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			ui := NewUI(outputJSON, noColor)

			eng, cacheClient, err := newEngine()
			if err != nil {
				return err
			}
			defer cacheClient.Close()

			if len(urls) > 0 {
				return scoreURLs(ctx, ui, eng, urls)
			}

			reg, err := registry.New()
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			entries := reg.QueryKnowledge("", "", registry.LocationNationwide)
			if entryID != "" {
				var filtered []registry.KnowledgeEntry
				for _, k := range entries {
					if k.ID == entryID {
						filtered = append(filtered, k)
					}
				}
				if len(filtered) == 0 {
					return fmt.Errorf("unknown knowledge entry: %s", entryID)
				}
				entries = filtered
			}

			sp := ui.Spinner("Probing source URLs...")
			startSpinner(sp)

			type scoredEntry struct {
				ID              string  `json:"id"`
				Content         string  `json:"content"`
				Score           float64 `json:"score"`
				Level           string  `json:"level"`
				SourcesVerified int     `json:"sourcesVerified"`
				SourcesTotal    int     `json:"sourcesTotal"`
			}
			results := make([]scoredEntry, 0, len(entries))
			for _, k := range entries {
				ks := eng.ScoreKnowledge(ctx, k)
				results = append(results, scoredEntry{
					ID:              k.ID,
					Content:         k.Content,
					Score:           ks.Score,
					Level:           trust.Interpret(ks.Score).Level,
					SourcesVerified: ks.SourcesVerified,
					SourcesTotal:    ks.SourcesTotal,
				})
			}
			stopSpinner(sp)

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(results)
			}

			ui.Section("Knowledge Trust Scores")
			for _, r := range results {
				ui.Info("[%.2f %s] %s (%d/%d sources verified)", r.Score, r.Level, r.ID, r.SourcesVerified, r.SourcesTotal)
			}
			ui.Success("%d entries scored", len(results))

			return nil
		},
	}

	cmd.Flags().StringVar(&entryID, "entry", "", "score a single knowledge entry by ID")
	cmd.Flags().StringSliceVar(&urls, "url", nil, "probe the given URLs directly")

	return cmd
}

func scoreURLs(ctx context.Context, ui *UI, eng *trust.Engine, urls []string) error {
	sp := ui.Spinner("Probing URLs...")
	startSpinner(sp)
	verdicts := eng.ValidateMultipleURLs(ctx, urls)
	stopSpinner(sp)

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(verdicts)
	}

	ui.Section("URL Reachability")
	for _, u := range urls {
		if verdicts[u] {
			ui.Success("%s", u)
		} else {
			ui.Error("%s", u)
		}
	}

	return nil
}
