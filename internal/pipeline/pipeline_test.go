// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/interview-engine/pkg/types"
)

const analysisYAML = `title: Rose's story
themes:
  - {id: family, name: Family, relevance: high, confidence: 0.9}
characters:
  - {id: rose, name: Rose, totalMentions: 3, importance: 0.8, emotionalState: sad}
timeline:
  - {id: move, title: the move north, type: turning-point, importance: 0.7}
emotionalBeats:
  - {id: b1, emotion: fear, position: 0.2, intensity: 0.6}
sensitiveTopics:
  - {id: war, topic: the war, severity: high}
`

func writeAnalysis(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func batchSetup(t *testing.T) types.PipelineConfig {
	t.Helper()
	tmp := t.TempDir()
	cfg := types.PipelineConfig{
		AnalysesDir: filepath.Join(tmp, "analyses"),
		OutputDir:   filepath.Join(tmp, "interviews"),
		Workers:     2,
	}
	require.NoError(t, os.MkdirAll(cfg.AnalysesDir, 0o755))
	return cfg
}

func TestRun(t *testing.T) {
	a := types.DocumentAnalysis{
		ID:    "rose",
		Title: "Rose's story",
		Themes: []types.Theme{
			{ID: "family", Name: "Family", Relevance: types.LevelHigh},
		},
	}
	r := Run(a, types.PipelineConfig{})

	assert.Equal(t, "rose", r.AnalysisID)
	require.Len(t, r.Questions, 7)
	require.Len(t, r.Checks, 7)
	for i := range r.Questions {
		assert.Equal(t, r.Questions[i].ID, r.Checks[i].QuestionID)
	}
	assert.Equal(t, "Rose's story", r.Flow.Title)
	assert.Len(t, r.Flow.Questions, 7)

	// "traditions" in the family theme is flagged as a cultural term.
	assert.NotEmpty(t, r.Checks[3].CulturalFlags)
}

func TestRunConfigTitleWins(t *testing.T) {
	cfg := types.PipelineConfig{Flow: types.FlowConfig{Title: "Configured"}}
	r := Run(types.DocumentAnalysis{Title: "From analysis"}, cfg)
	assert.Equal(t, "Configured", r.Flow.Title)
}

func TestWriteAndReadArtifacts(t *testing.T) {
	out := t.TempDir()
	r := Run(types.DocumentAnalysis{ID: "x"}, types.PipelineConfig{})
	require.NoError(t, WriteResult(out, "x", r))

	bank, err := ReadQuestionBank(QuestionsPath(out, "x"))
	require.NoError(t, err)
	assert.Equal(t, "x", bank.AnalysisID)
	require.Len(t, bank.Questions, len(r.Questions))
	for i := range r.Questions {
		assert.Equal(t, r.Questions[i].ID, bank.Questions[i].ID)
		assert.Equal(t, r.Questions[i].Question, bank.Questions[i].Question)
		assert.Equal(t, r.Questions[i].FollowUps, bank.Questions[i].FollowUps)
	}

	f, err := ReadFlow(FlowPath(out, "x"))
	require.NoError(t, err)
	assert.Equal(t, r.Flow.ID, f.ID)
	assert.Equal(t, r.Flow.EstimatedDuration, f.EstimatedDuration)
	assert.Len(t, f.Transitions, len(r.Flow.Transitions))

	assert.FileExists(t, ChecksPath(out, "x"))
}

func TestReadArtifactErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFlow(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeAnalysis(t, dir, "bad.yaml", ":::bad\n")
	_, err = ReadQuestionBank(bad)
	assert.Error(t, err)
}

func TestRunAll(t *testing.T) {
	cfg := batchSetup(t)
	writeAnalysis(t, cfg.AnalysesDir, "rose.yaml", analysisYAML)
	writeAnalysis(t, cfg.AnalysesDir, "empty.json", `{"themes": []}`)
	writeAnalysis(t, cfg.AnalysesDir, "broken.yaml", "themes:\n  - {id: t, relevance: extreme}\n")
	writeAnalysis(t, cfg.AnalysesDir, "notes.txt", "ignored")

	summary, err := RunAll(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Processed: 2, Failed: 1}, summary)
	assert.True(t, summary.HasFailures())
	assert.Equal(t, 3, summary.Total())

	bank, err := ReadQuestionBank(QuestionsPath(cfg.OutputDir, "rose"))
	require.NoError(t, err)
	assert.Len(t, bank.Questions, 12)

	f, err := ReadFlow(FlowPath(cfg.OutputDir, "empty"))
	require.NoError(t, err)
	assert.Len(t, f.Questions, 4)
}

func TestRunAllSkipsUnchanged(t *testing.T) {
	cfg := batchSetup(t)
	path := writeAnalysis(t, cfg.AnalysesDir, "rose.yaml", analysisYAML)
	log := zaptest.NewLogger(t)

	summary, err := RunAll(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)

	summary, err = RunAll(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Skipped: 1}, summary)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))
	summary, err = RunAll(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Processed: 1}, summary)

	cfg.Force = true
	summary, err = RunAll(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Processed: 1}, summary)
}

func TestRunAllCancelled(t *testing.T) {
	cfg := batchSetup(t)
	writeAnalysis(t, cfg.AnalysesDir, "rose.yaml", analysisYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunAll(ctx, cfg, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAllMissingDir(t *testing.T) {
	cfg := types.PipelineConfig{AnalysesDir: filepath.Join(t.TempDir(), "nope")}
	_, err := RunAll(context.Background(), cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "rose", Slug("/a/b/rose.yaml"))
	assert.Equal(t, "rose.v2", Slug("rose.v2.json"))
}
