// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/interview-engine/internal/analysis"
	"github.com/pdiddy/interview-engine/internal/flow"
	"github.com/pdiddy/interview-engine/internal/pipeline"
	"github.com/pdiddy/interview-engine/internal/project"
	"github.com/pdiddy/interview-engine/pkg/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage saved interview projects (save, list, show, search, delete)",
	Long: `Project manages a local SQLite store of interview projects under
<output_dir>/index/projects.db. A project keeps the analysis, its question
bank, and the assembled conversation flow.`,
}

// --- save ---

var projectSaveCmd = &cobra.Command{
	Use:   "save <analysis-file>",
	Short: "Generate and store a project from an analysis",
	Long: `Save generates the question bank and flow for an analysis and stores
them as a project keyed by the analysis id. With --questions, an existing
(possibly edited) question bank is stored instead of a fresh one. Saving an
existing id replaces its questions and flow.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectSave,
}

func runProjectSave(cmd *cobra.Command, args []string) error {
	log := zap.L().With(zap.String("command", "project.save"))

	a, err := analysis.Load(args[0])
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
	}

	result := pipeline.Run(*a, cfg.PipelineSettings())
	if path, _ := cmd.Flags().GetString("questions"); path != "" {
		bank, err := pipeline.ReadQuestionBank(path)
		if err != nil {
			return fmt.Errorf("read question bank: %w", err)
		}
		result.Questions = bank.Questions
		title := result.Flow.Title
		result.Flow = flow.New(cfg.Flow).Assemble(bank.Questions)
		result.Flow.Title = title
	}

	p := types.Project{
		ID:        a.ID,
		Title:     result.Flow.Title,
		Analysis:  *a,
		Questions: result.Questions,
		Flow:      &result.Flow,
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		p.Title = title
		p.Flow.Title = title
	}

	store, err := project.NewStore(cfg.StoreSettings())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), p); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	log.Info("project saved", zap.String("project", p.ID), zap.Int("questions", len(p.Questions)))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved project %s (%d questions)\n", p.ID, len(p.Questions))
	return nil
}

// --- list ---

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects, most recently updated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.NewStore(cfg.StoreSettings())
		if err != nil {
			return err
		}
		defer store.Close()

		projects, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(w, projects)
		}
		if len(projects) == 0 {
			fmt.Fprintln(w, "No projects.")
			return nil
		}
		fmt.Fprintf(w, "%-24s  %-36s  %9s  %8s  %10s  %s\n",
			"ID", "Title", "Questions", "Minutes", "Difficulty", "Updated")
		fmt.Fprintln(w, strings.Repeat("-", 115))
		for _, p := range projects {
			fmt.Fprintf(w, "%-24s  %-36s  %9d  %8d  %10.1f  %s\n",
				truncate(p.ID, 24), truncate(p.Title, 36), p.QuestionCount,
				p.EstimatedDuration, p.DifficultyLevel, p.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

// --- show ---

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved project's conversation flow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.NewStore(cfg.StoreSettings())
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(w, p)
		}
		fmt.Fprintf(w, "%s (%s)\n", p.Title, p.ID)
		fmt.Fprintf(w, "Created %s, updated %s\n\n",
			p.CreatedAt.Format("2006-01-02 15:04"), p.UpdatedAt.Format("2006-01-02 15:04"))
		qs := p.Questions
		if p.Flow != nil {
			qs = p.Flow.Questions
			fmt.Fprintf(w, "%d min, difficulty %.1f\n\n", p.Flow.EstimatedDuration, p.Flow.DifficultyLevel)
		}
		for i, q := range qs {
			fmt.Fprintf(w, "%2d. [%s/%s] %s\n", i+1, q.Timing, q.Sensitivity, q.Question)
		}
		return nil
	},
}

// --- search ---

var projectSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored questions by text and filters",
	Long: `Search finds stored questions whose text contains the query
(case-insensitive), optionally filtered by category, sensitivity, timing, or
project. At least a query or one filter is required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProjectSearch,
}

func runProjectSearch(cmd *cobra.Command, args []string) error {
	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --category, --sensitivity, --timing, or --project")
	}

	store, err := project.NewStore(cfg.StoreSettings())
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []project.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, results)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-3s  %-13s  %-6s  %-6s  %s\n",
		"Project", "Pos", "Category", "Timing", "Level", "Question")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, r := range results {
		fmt.Fprintf(w, "%-20s  %3d  %-13s  %-6s  %-6s  %s\n",
			truncate(r.ProjectID, 20), r.Position+1, r.Category, r.Timing, r.Sensitivity, truncate(r.Question, 50))
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) project.QueryOptions {
	category, _ := cmd.Flags().GetString("category")
	level, _ := cmd.Flags().GetString("sensitivity")
	timing, _ := cmd.Flags().GetString("timing")
	projectID, _ := cmd.Flags().GetString("project")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	opts := project.QueryOptions{
		Category:    types.QuestionCategory(category),
		Sensitivity: types.Level(level),
		Timing:      types.Timing(timing),
		ProjectID:   projectID,
		MaxResults:  maxResults,
	}
	if len(args) > 0 {
		opts.Query = args[0]
	}
	return opts
}

// --- delete ---

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved project and its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.NewStore(cfg.StoreSettings())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		zap.L().Info("project deleted", zap.String("command", "project.delete"), zap.String("project", args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	projectSaveCmd.Flags().String("questions", "", "store this question bank instead of generating one")
	projectSaveCmd.Flags().String("title", "", "project title (default: analysis title)")

	projectListCmd.Flags().Bool("json", false, "output as JSON")
	projectShowCmd.Flags().Bool("json", false, "output as JSON")

	projectSearchCmd.Flags().String("category", "", "filter by category: personal, factual, emotional, contextual, reflective, relationship, historical, cultural")
	projectSearchCmd.Flags().String("sensitivity", "", "filter by sensitivity: low, medium, high")
	projectSearchCmd.Flags().String("timing", "", "filter by timing: early, middle, late")
	projectSearchCmd.Flags().String("project", "", "filter by project id")
	projectSearchCmd.Flags().Int("max-results", 0, "maximum number of results (default: store.max_results)")
	projectSearchCmd.Flags().Bool("json", false, "output results as JSON")

	projectCmd.AddCommand(projectSaveCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectSearchCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	rootCmd.AddCommand(projectCmd)
}
