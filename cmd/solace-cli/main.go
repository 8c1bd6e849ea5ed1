// Package main provides the Solace CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solacehq/solace/internal/cache"
	"github.com/solacehq/solace/internal/config"
	"github.com/solacehq/solace/internal/conversation"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	noColor    bool
	verbose    bool

	// Configuration and logger
	cfg    *config.Config
	logger *observability.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "solace-cli",
	Short: "Solace CLI for support journeys, resource lookup, and trust scoring",
	Long: `Solace CLI provides commands for working with the support journey engine.

Use this tool to:
- Run a single conversation turn and inspect the response bundle
- List support resources for a UK location
- Score knowledge entries, probing their source URLs

All commands support --json for automation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logFormat := "console"
		logLevel := "warn"
		if outputJSON {
			logFormat = "json"
		}
		if verbose {
			logLevel = "debug"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       logLevel,
			Format:      logFormat,
			ServiceName: "solace-cli",
		})

		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newResourcesCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine builds an in-process trust engine backed by the configured cache.
func newEngine() (*trust.Engine, cache.Client, error) {
	var cacheClient cache.Client
	if cfg.Cache.Driver == "redis" {
		rc, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		cacheClient = rc
	} else {
		cacheClient = cache.NewMemoryClient(cfg.Cache.MaxEntries)
	}

	eng := trust.NewEngine(logger, cacheClient, trust.Config{
		CacheTTL:         cfg.Cache.TTL,
		ProbeTimeout:     cfg.Trust.ProbeTimeout,
		ProbeConcurrency: cfg.Trust.ProbeConcurrency,
		FreshnessWindow:  cfg.Trust.FreshnessWindow,
		StalenessHorizon: cfg.Trust.StalenessHorizon,
	})

	return eng, cacheClient, nil
}

// newOrchestrator builds the full in-process pipeline.
func newOrchestrator() (*conversation.Orchestrator, *registry.Registry, cache.Client, error) {
	reg, err := registry.New()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load registry: %w", err)
	}

	eng, cacheClient, err := newEngine()
	if err != nil {
		return nil, nil, nil, err
	}

	var replyGen conversation.ReplyGenerator
	if cfg.ReplyGen.Endpoint != "" {
		replyGen = conversation.NewHTTPReplyGenerator(logger, cfg.ReplyGen.Endpoint, cfg.ReplyGen.Timeout)
	}

	orch := conversation.NewOrchestrator(logger, reg, eng, replyGen, conversation.Config{
		MaxResources: cfg.Journey.MaxResources,
		MaxKnowledge: cfg.Journey.MaxKnowledge,
		TurnDeadline: cfg.Trust.TurnDeadline,
	})

	return orch, reg, cacheClient, nil
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("solace-cli v0.3.0")
		},
	}
}
