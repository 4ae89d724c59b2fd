// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/interview-engine/internal/pipeline"
	"github.com/pdiddy/interview-engine/internal/questions"
	"github.com/pdiddy/interview-engine/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a question bank (set, duplicate, remove, move)",
	Long: `Edit changes a question bank file in place, or writes the edited bank to
--output. Run assemble afterwards to rebuild the flow.`,
}

var editSetCmd = &cobra.Command{
	Use:   "set <questions-file> <id>",
	Short: "Change the text, timing, or sensitivity of a question",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("question")
		timing, _ := cmd.Flags().GetString("timing")
		level, _ := cmd.Flags().GetString("sensitivity")
		notes, _ := cmd.Flags().GetString("notes")

		switch types.Timing(timing) {
		case "", types.TimingEarly, types.TimingMiddle, types.TimingLate:
		default:
			return fmt.Errorf("invalid timing %q: use early, middle, or late", timing)
		}
		switch types.Level(level) {
		case "", types.LevelLow, types.LevelMedium, types.LevelHigh:
		default:
			return fmt.Errorf("invalid sensitivity %q: use low, medium, or high", level)
		}

		return editBank(cmd, args[0], func(list []types.InterviewQuestion) ([]types.InterviewQuestion, error) {
			return questions.Update(list, args[1], func(q *types.InterviewQuestion) {
				if text != "" {
					q.Question = text
					q.Alternatives = questions.Alternatives(text)
				}
				if timing != "" {
					q.Timing = types.Timing(timing)
				}
				if level != "" {
					q.Sensitivity = types.Level(level)
				}
				if cmd.Flags().Changed("notes") {
					q.CulturalNotes = notes
				}
			})
		})
	},
}

var editDuplicateCmd = &cobra.Command{
	Use:   "duplicate <questions-file> <id>",
	Short: "Copy a question and insert it after the original",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newID, _ := cmd.Flags().GetString("new-id")
		if newID == "" {
			newID = args[1] + "-" + uuid.NewString()[:8]
		}
		return editBank(cmd, args[0], func(list []types.InterviewQuestion) ([]types.InterviewQuestion, error) {
			return questions.Duplicate(list, args[1], newID)
		})
	},
}

var editRemoveCmd = &cobra.Command{
	Use:   "remove <questions-file> <id>",
	Short: "Remove a question",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editBank(cmd, args[0], func(list []types.InterviewQuestion) ([]types.InterviewQuestion, error) {
			return questions.Remove(list, args[1])
		})
	},
}

var editMoveCmd = &cobra.Command{
	Use:   "move <questions-file> <id> <position>",
	Short: "Move a question to a 1-based position",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[2])
		if err != nil || pos < 1 {
			return fmt.Errorf("invalid position %q: must be a positive integer", args[2])
		}
		return editBank(cmd, args[0], func(list []types.InterviewQuestion) ([]types.InterviewQuestion, error) {
			return questions.Move(list, args[1], pos-1)
		})
	},
}

// editBank reads the bank at path, applies fn, and writes the result to
// --output or back to path.
func editBank(cmd *cobra.Command, path string, fn func([]types.InterviewQuestion) ([]types.InterviewQuestion, error)) error {
	bank, err := pipeline.ReadQuestionBank(path)
	if err != nil {
		return fmt.Errorf("read question bank: %w", err)
	}
	edited, err := fn(bank.Questions)
	if err != nil {
		return err
	}
	bank.Questions = edited

	out := outputPath(cmd, path)
	if err := pipeline.WriteQuestionBank(out, *bank); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d questions written to %s\n", len(edited), out)
	return nil
}

func init() {
	editSetCmd.Flags().String("question", "", "new question text")
	editSetCmd.Flags().String("timing", "", "new timing: early, middle, late")
	editSetCmd.Flags().String("sensitivity", "", "new sensitivity: low, medium, high")
	editSetCmd.Flags().String("notes", "", "new cultural notes")

	editDuplicateCmd.Flags().String("new-id", "", "id for the copy (default: <id>-<random suffix>)")

	for _, c := range []*cobra.Command{editSetCmd, editDuplicateCmd, editRemoveCmd, editMoveCmd} {
		c.Flags().StringP("output", "o", "", "write the edited bank here instead of in place")
		editCmd.AddCommand(c)
	}

	rootCmd.AddCommand(editCmd)
}
