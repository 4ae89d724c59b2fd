// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/interview-engine/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every analysis in a directory",
	Long: `Run generates, checks, and assembles every analysis file in
pipeline.analyses_dir and writes questions/, checks/, and flows/ artifacts
under pipeline.output_dir. Analyses whose flow is newer than the analysis
file are skipped unless --force is given. The command fails when any
analysis failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := zap.L().With(zap.String("command", "run"))

		pcfg := cfg.PipelineSettings()
		if dir, _ := cmd.Flags().GetString("analyses-dir"); dir != "" {
			pcfg.AnalysesDir = dir
		}
		if cmd.Flags().Changed("workers") {
			pcfg.Workers, _ = cmd.Flags().GetInt("workers")
		}
		pcfg.Force, _ = cmd.Flags().GetBool("force")

		summary, err := pipeline.RunAll(ctx, pcfg, log)
		if err != nil {
			return fmt.Errorf("run pipeline: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d analyses: %d processed, %d skipped, %d failed\n",
			summary.Total(), summary.Processed, summary.Skipped, summary.Failed)

		if summary.HasFailures() {
			return fmt.Errorf("%d analysis file(s) failed", summary.Failed)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("analyses-dir", "", "directory of analysis files (default: pipeline.analyses_dir)")
	runCmd.Flags().Int("workers", 4, "analyses processed concurrently")
	runCmd.Flags().Bool("force", false, "reprocess analyses whose artifacts are up to date")

	rootCmd.AddCommand(runCmd)
}
