package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solacehq/solace/internal/conversation"
	"github.com/solacehq/solace/internal/registry"
)

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	var (
		location string
		category string
		session  string
		stages   []string
	)

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Run a single conversation turn",
		Long: `Ask runs one turn of the support conversation: the message is classified
into a journey stage, matching resources and knowledge are gathered for the
given location, source URLs are probed, and the ranked bundle is printed.

Without a configured reply-generation endpoint the message line shows the
static fallback text; the resource and knowledge lists are unaffected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			ui := NewUI(outputJSON, noColor)

			orch, _, cacheClient, err := newOrchestrator()
			if err != nil {
				return err
			}
			defer cacheClient.Close()

			req := conversation.TurnRequest{
				Text:      strings.Join(args, " "),
				SessionID: session,
				Location:  registry.UKLocation(location),
				Category:  category,
			}
			for _, s := range stages {
				req.PreviousStages = append(req.PreviousStages, registry.JourneyStage(s))
			}

			sp := ui.Spinner("Checking sources...")
			startSpinner(sp)
			resp, err := orch.Respond(ctx, req)
			stopSpinner(sp)

			if err != nil && !errors.Is(err, conversation.ErrReplyDegraded) {
				return err
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(resp)
			}

			if resp.Degraded {
				ui.Warning("Reply generator unavailable, showing fallback message")
			}

			ui.Section("Response")
			fmt.Println(resp.Message)

			ui.Section("Journey")
			ui.Info("Stage: %s", resp.JourneyStage)
			ui.Info("Urgency: %s", resp.Urgency)
			ui.Info("Emotional state: %s", resp.EmotionalState)
			if resp.NextStagePathway != "" {
				ui.Step("Next: %s", resp.NextStagePathway)
			}
			if resp.FollowUpRequired {
				ui.Warning("Follow-up required")
			}

			if len(resp.Resources) > 0 {
				ui.Section("Resources")
				for _, r := range resp.Resources {
					printResource(ui, r.Resource, r.TrustScore)
				}
			}

			if len(resp.Knowledge) > 0 {
				ui.Section("Knowledge")
				for _, k := range resp.Knowledge {
					ui.Info("[%.2f] %s (%d/%d sources verified)", k.TrustScore, k.Content, k.SourcesVerified, k.SourcesTotal)
				}
			}

			ui.Section("Trust")
			ui.Info("Overall: %.2f (%s)", resp.TrustScore, resp.TrustLevel)
			ui.Info("%s", resp.TrustDescription)

			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "UK location (city or region, defaults to nationwide)")
	cmd.Flags().StringVar(&category, "category", "", "resource category filter")
	cmd.Flags().StringVar(&session, "session", "", "session identifier for log correlation")
	cmd.Flags().StringSliceVar(&stages, "previous-stages", nil, "journey stages from earlier sessions")

	return cmd
}

func printResource(ui *UI, r registry.Resource, score float64) {
	marker := ""
	if r.Emergency {
		marker = " [EMERGENCY]"
	}
	ui.Info("[%.2f] %s%s - %s", score, r.Title, marker, r.Description)
	if r.Phone != "" {
		ui.Step("  Phone: %s", r.Phone)
	}
	if r.Website != "" {
		ui.Step("  Web: %s", r.Website)
	}
	if r.Availability != "" {
		ui.Step("  Hours: %s", r.Availability)
	}
}
