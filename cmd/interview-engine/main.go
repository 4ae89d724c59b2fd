// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the interview-engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/interview-engine/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is loaded before every command runs.
var cfg *config.Config

// rootCmd is the base command for the interview-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "interview-engine",
	Short: "Turn document analyses into oral-history interview plans",
	Long: `interview-engine reads the structured analysis of a personal document
(themes, people, events, emotional beats, sensitive topics) and produces an
interview plan: a question bank, a sensitivity report for every question,
and an ordered conversation flow with transitions and an emotional arc.

Single analyses are handled by generate, check, and assemble; run processes a
directory of analyses. Projects are kept in a local SQLite store and can be
exported as JSON, YAML, or a Markdown interviewer script.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfgFile, _ := cmd.Flags().GetString("config")
		c, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./interview-engine.yaml or ~/.config/interview-engine/interview-engine.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
