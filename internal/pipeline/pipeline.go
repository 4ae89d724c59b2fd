// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs generation, sensitivity screening, and flow assembly
// over analyses and manages the YAML artifacts they produce.
//
// Layout under the output directory:
//
//	questions/<id>-questions.yaml   question bank
//	checks/<id>-checks.yaml         sensitivity report
//	flows/<id>-flow.yaml            conversation flow
package pipeline

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/interview-engine/internal/flow"
	"github.com/pdiddy/interview-engine/internal/questions"
	"github.com/pdiddy/interview-engine/internal/sensitivity"
	"github.com/pdiddy/interview-engine/pkg/types"
)

const (
	QuestionsDir = "questions"
	ChecksDir    = "checks"
	FlowsDir     = "flows"
)

// Result holds everything produced for one analysis.
type Result struct {
	AnalysisID string
	Questions  []types.InterviewQuestion
	Checks     []types.SensitivityCheck
	Flow       types.ConversationFlow
}

// Run generates the question bank for a, screens every question, and
// assembles the flow. It never fails.
func Run(a types.DocumentAnalysis, cfg types.PipelineConfig) Result {
	qs := questions.New(cfg.Generation).Generate(a)
	f := flow.New(cfg.Flow).Assemble(qs)
	if a.Title != "" && cfg.Flow.Title == "" {
		f.Title = a.Title
	}
	return Result{
		AnalysisID: a.ID,
		Questions:  qs,
		Checks:     sensitivity.CheckAll(qs),
		Flow:       f,
	}
}

// QuestionsPath returns the question bank path for id under outDir.
func QuestionsPath(outDir, id string) string {
	return filepath.Join(outDir, QuestionsDir, id+"-questions.yaml")
}

// ChecksPath returns the sensitivity report path for id under outDir.
func ChecksPath(outDir, id string) string {
	return filepath.Join(outDir, ChecksDir, id+"-checks.yaml")
}

// FlowPath returns the flow path for id under outDir.
func FlowPath(outDir, id string) string {
	return filepath.Join(outDir, FlowsDir, id+"-flow.yaml")
}

// WriteResult writes the three artifacts of r under outDir, naming them by
// id. The flow is written last so its modification time marks a complete run.
func WriteResult(outDir, id string, r Result) error {
	bank := types.QuestionBank{AnalysisID: r.AnalysisID, Questions: r.Questions}
	if err := writeYAML(QuestionsPath(outDir, id), bank); err != nil {
		return err
	}
	report := types.SensitivityReport{AnalysisID: r.AnalysisID, Checks: r.Checks}
	if err := writeYAML(ChecksPath(outDir, id), report); err != nil {
		return err
	}
	return writeYAML(FlowPath(outDir, id), r.Flow)
}

// WriteQuestionBank writes a question bank to path.
func WriteQuestionBank(path string, bank types.QuestionBank) error {
	return writeYAML(path, bank)
}

// WriteFlow writes a flow to path.
func WriteFlow(path string, f types.ConversationFlow) error {
	return writeYAML(path, f)
}

// WriteReport writes a sensitivity report to path.
func WriteReport(path string, r types.SensitivityReport) error {
	return writeYAML(path, r)
}

// ReadQuestionBank reads a question bank written by WriteResult.
func ReadQuestionBank(path string) (*types.QuestionBank, error) {
	var bank types.QuestionBank
	if err := readYAML(path, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// ReadFlow reads a flow written by WriteResult.
func ReadFlow(path string) (*types.ConversationFlow, error) {
	var f types.ConversationFlow
	if err := readYAML(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func writeYAML(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "pipeline: create directory for %s", filepath.Base(path))
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return eris.Wrapf(err, "pipeline: marshal %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "pipeline: write %s", filepath.Base(path))
	}
	return nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "pipeline: read artifact")
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return eris.Wrapf(err, "pipeline: parse %s", filepath.Base(path))
	}
	return nil
}
