// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/interview-engine/internal/export"
	"github.com/pdiddy/interview-engine/internal/pipeline"
	"github.com/pdiddy/interview-engine/internal/project"
	"github.com/pdiddy/interview-engine/pkg/types"
)

const exportDir = "export"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a conversation flow (json, yaml, script, schema)",
	Long: `Export converts a conversation flow into a document for downstream tools.
The flow comes from a flow file argument or, with --project, from the
project store. Output goes to <output_dir>/export/ unless --output is set.`,
}

var exportJSONCmd = &cobra.Command{
	Use:   "json [flow-file]",
	Short: "Export a flow as JSON, validated against the export schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, name, err := loadExportFlow(cmd, args)
		if err != nil {
			return err
		}
		data, err := export.MarshalJSON(export.Build(*f, time.Now()))
		if err != nil {
			return err
		}
		if err := export.Validate(data); err != nil {
			return fmt.Errorf("export failed validation: %w", err)
		}
		out := outputPath(cmd, filepath.Join(cfg.Pipeline.OutputDir, exportDir, name+".json"))
		if err := writeExportFile(out, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
		return nil
	},
}

var exportYAMLCmd = &cobra.Command{
	Use:   "yaml [flow-file]",
	Short: "Export a flow as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, name, err := loadExportFlow(cmd, args)
		if err != nil {
			return err
		}
		out := outputPath(cmd, filepath.Join(cfg.Pipeline.OutputDir, exportDir, name+".yaml"))
		if err := export.WriteYAML(out, export.Build(*f, time.Now())); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
		return nil
	},
}

var exportScriptCmd = &cobra.Command{
	Use:   "script [flow-file]",
	Short: "Export a flow as a Markdown interviewer script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, name, err := loadExportFlow(cmd, args)
		if err != nil {
			return err
		}
		out := outputPath(cmd, filepath.Join(cfg.Pipeline.OutputDir, exportDir, name+".md"))
		if err := export.WriteScript(out, *f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
		return nil
	},
}

var exportSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the export document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := export.SchemaJSON()
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			return writeExportFile(out, data)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

// loadExportFlow returns the flow to export and the base name for its output
// file.
func loadExportFlow(cmd *cobra.Command, args []string) (*types.ConversationFlow, string, error) {
	projectID, _ := cmd.Flags().GetString("project")
	switch {
	case projectID != "" && len(args) > 0:
		return nil, "", fmt.Errorf("provide either a flow file or --project, not both")
	case projectID != "":
		store, err := project.NewStore(cfg.StoreSettings())
		if err != nil {
			return nil, "", err
		}
		defer store.Close()
		p, err := store.Load(cmd.Context(), projectID)
		if err != nil {
			return nil, "", err
		}
		if p.Flow == nil {
			return nil, "", fmt.Errorf("project %s has no assembled flow", projectID)
		}
		return p.Flow, p.ID, nil
	case len(args) == 1:
		f, err := pipeline.ReadFlow(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("read flow: %w", err)
		}
		return f, strings.TrimSuffix(pipeline.Slug(args[0]), "-flow"), nil
	default:
		return nil, "", fmt.Errorf("flow file or --project required")
	}
}

func writeExportFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{exportJSONCmd, exportYAMLCmd, exportScriptCmd} {
		c.Flags().String("project", "", "export the flow of a saved project")
		c.Flags().StringP("output", "o", "", "output file (default: <output_dir>/export/<name>.<ext>)")
		exportCmd.AddCommand(c)
	}
	exportSchemaCmd.Flags().StringP("output", "o", "", "write the schema to a file instead of stdout")
	exportCmd.AddCommand(exportSchemaCmd)

	rootCmd.AddCommand(exportCmd)
}
