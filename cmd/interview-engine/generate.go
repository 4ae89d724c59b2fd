// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/interview-engine/internal/analysis"
	"github.com/pdiddy/interview-engine/internal/flow"
	"github.com/pdiddy/interview-engine/internal/pipeline"
	"github.com/pdiddy/interview-engine/internal/questions"
	"github.com/pdiddy/interview-engine/internal/sensitivity"
	"github.com/pdiddy/interview-engine/pkg/types"
)

// --- generate ---

var generateCmd = &cobra.Command{
	Use:   "generate <analysis-file>",
	Short: "Generate a question bank from a document analysis",
	Long: `Generate reads a document analysis (YAML or JSON) and writes a question
bank bracketed by opening and closing questions. The bank is capped at
generation.max_questions (at most 25).`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := zap.L().With(zap.String("command", "generate"))

	a, err := analysis.Load(args[0])
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
	}

	genCfg := cfg.Generation
	if cmd.Flags().Changed("max-questions") {
		genCfg.MaxQuestions, _ = cmd.Flags().GetInt("max-questions")
	}
	bank := types.QuestionBank{
		AnalysisID: a.ID,
		Questions:  questions.New(genCfg).Generate(*a),
	}

	out := outputPath(cmd, pipeline.QuestionsPath(cfg.Pipeline.OutputDir, a.ID))
	if err := pipeline.WriteQuestionBank(out, bank); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	log.Info("question bank written", zap.String("analysis", a.ID), zap.Int("questions", len(bank.Questions)))
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d questions for %s: %s\n", len(bank.Questions), a.ID, out)
	return nil
}

// --- check ---

var checkCmd = &cobra.Command{
	Use:   "check <questions-file>",
	Short: "Screen a question bank for emotional and cultural sensitivity",
	Long: `Check scores every question in a question bank, prints a summary table,
and writes the full sensitivity report next to the other artifacts.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	bank, err := pipeline.ReadQuestionBank(args[0])
	if err != nil {
		return fmt.Errorf("read question bank: %w", err)
	}

	report := types.SensitivityReport{
		AnalysisID: bank.AnalysisID,
		Checks:     sensitivity.CheckAll(bank.Questions),
	}

	out := outputPath(cmd, pipeline.ChecksPath(cfg.Pipeline.OutputDir, bank.AnalysisID))
	if err := pipeline.WriteReport(out, report); err != nil {
		return fmt.Errorf("write sensitivity report: %w", err)
	}

	printChecks(cmd.OutOrStdout(), report.Checks)
	fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", out)
	return nil
}

func printChecks(w io.Writer, checks []types.SensitivityCheck) {
	fmt.Fprintf(w, "%-28s  %-5s  %-6s  %s\n", "Question", "Score", "Issues", "Cultural flags")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, c := range checks {
		terms := make([]string, len(c.CulturalFlags))
		for i, f := range c.CulturalFlags {
			terms[i] = f.Term
		}
		fmt.Fprintf(w, "%-28s  %5.2f  %6d  %s\n",
			truncate(c.QuestionID, 28), c.OverallScore, len(c.Issues), strings.Join(terms, ", "))
	}
}

// --- assemble ---

var assembleCmd = &cobra.Command{
	Use:   "assemble <questions-file>",
	Short: "Order a question bank into a conversation flow",
	Long: `Assemble sorts a question bank into early, middle, and late phases, links
consecutive questions with transitions, and attaches the emotional arc,
estimated duration, and difficulty.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssemble,
}

func runAssemble(cmd *cobra.Command, args []string) error {
	bank, err := pipeline.ReadQuestionBank(args[0])
	if err != nil {
		return fmt.Errorf("read question bank: %w", err)
	}

	f := flow.New(cfg.Flow).Assemble(bank.Questions)

	out := outputPath(cmd, pipeline.FlowPath(cfg.Pipeline.OutputDir, bank.AnalysisID))
	if err := pipeline.WriteFlow(out, f); err != nil {
		return fmt.Errorf("write flow: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Assembled %d questions, %d transitions, %d min, difficulty %.1f: %s\n",
		len(f.Questions), len(f.Transitions), f.EstimatedDuration, f.DifficultyLevel, out)
	return nil
}

// --- shared helpers ---

func outputPath(cmd *cobra.Command, fallback string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return fallback
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file (default: <output_dir>/questions/<id>-questions.yaml)")
	generateCmd.Flags().Int("max-questions", types.MaxQuestions, "maximum questions in the bank (capped at 25)")

	checkCmd.Flags().StringP("output", "o", "", "output file (default: <output_dir>/checks/<id>-checks.yaml)")

	assembleCmd.Flags().StringP("output", "o", "", "output file (default: <output_dir>/flows/<id>-flow.yaml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(assembleCmd)
}
