package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solacehq/solace/internal/ranking"
	"github.com/solacehq/solace/internal/registry"
)

// newResourcesCmd creates the resources subcommand.
func newResourcesCmd() *cobra.Command {
	var (
		location  string
		stage     string
		emergency bool
		cultural  bool
	)

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List support resources for a UK location",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := NewUI(outputJSON, noColor)

			reg, err := registry.New()
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			eng, cacheClient, err := newEngine()
			if err != nil {
				return err
			}
			defer cacheClient.Close()

			loc := registry.UKLocation(location)
			if loc == "" {
				loc = registry.LocationNationwide
			}

			js := registry.JourneyStage(stage)
			if stage != "" && !js.Valid() {
				return fmt.Errorf("unknown journey stage: %s", stage)
			}

			var results []registry.Resource
			switch {
			case emergency:
				results = reg.EmergencyResources(loc)
			case cultural:
				results = reg.CulturallySpecificResources(js, loc)
			default:
				results = reg.QueryResources(js, loc, registry.QueryOptions{})
			}
			ranking.RankResources(results)

			if outputJSON {
				type scored struct {
					registry.Resource
					TrustScore float64 `json:"trustScore"`
				}
				out := make([]scored, 0, len(results))
				for _, r := range results {
					out = append(out, scored{Resource: r, TrustScore: eng.CalculateResourceTrustScore(r)})
				}
				return json.NewEncoder(os.Stdout).Encode(out)
			}

			ui.Section(fmt.Sprintf("Resources for %s (%s)", loc, registry.RegionForLocation(loc)))
			if len(results) == 0 {
				ui.Warning("No resources matched")
				return nil
			}
			for _, r := range results {
				printResource(ui, r, eng.CalculateResourceTrustScore(r))
			}
			ui.Success("%d resources", len(results))

			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "UK location (city or region, defaults to nationwide)")
	cmd.Flags().StringVarP(&stage, "stage", "s", "", "journey stage filter (crisis, stabilization, growth, community_healing, advocacy)")
	cmd.Flags().BoolVar(&emergency, "emergency", false, "emergency resources only")
	cmd.Flags().BoolVar(&cultural, "cultural", false, "culturally specific resources only")

	return cmd
}
