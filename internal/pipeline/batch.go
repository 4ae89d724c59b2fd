// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/interview-engine/internal/analysis"
	"github.com/pdiddy/interview-engine/pkg/types"
)

const defaultWorkers = 4

// BatchSummary holds counts from a batch run.
type BatchSummary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the number of analyses considered.
func (s BatchSummary) Total() int {
	return s.Processed + s.Skipped + s.Failed
}

// HasFailures reports whether any analysis failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// Slug returns the artifact name for an analysis file: its base name without
// extension.
func Slug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AnalysisFiles lists the analysis files in dir, sorted by name.
func AnalysisFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: read analyses directory %s", dir)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := analysis.FormatFor(e.Name()); ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// RunAll processes every analysis file in cfg.AnalysesDir and writes its
// artifacts under cfg.OutputDir. Analyses whose flow artifact is newer than
// the analysis file are skipped unless cfg.Force is set. A failing analysis
// is logged and counted; it does not stop the batch. Cancelling ctx stops
// scheduling new analyses and returns ctx.Err().
func RunAll(ctx context.Context, cfg types.PipelineConfig, log *zap.Logger) (BatchSummary, error) {
	files, err := AnalysisFiles(cfg.AnalysesDir)
	if err != nil {
		return BatchSummary{}, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var (
		mu      sync.Mutex
		summary BatchSummary
	)
	count := func(f func(*BatchSummary)) {
		mu.Lock()
		f(&summary)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range files {
		if gctx.Err() != nil {
			break
		}
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slug := Slug(path)
			flog := log.With(zap.String("analysis", slug))

			if !cfg.Force {
				changed, err := hasChanged(path, FlowPath(cfg.OutputDir, slug))
				if err != nil {
					flog.Error("checking artifacts", zap.Error(err))
					count(func(s *BatchSummary) { s.Failed++ })
					return nil
				}
				if !changed {
					flog.Debug("skipped, artifacts up to date")
					count(func(s *BatchSummary) { s.Skipped++ })
					return nil
				}
			}

			a, err := analysis.Load(path)
			if err != nil {
				flog.Error("loading analysis", zap.Error(err))
				count(func(s *BatchSummary) { s.Failed++ })
				return nil
			}

			res := Run(*a, cfg)
			if err := WriteResult(cfg.OutputDir, slug, res); err != nil {
				flog.Error("writing artifacts", zap.Error(err))
				count(func(s *BatchSummary) { s.Failed++ })
				return nil
			}

			flog.Info("processed",
				zap.Int("questions", len(res.Questions)),
				zap.Int("duration_min", res.Flow.EstimatedDuration),
				zap.Float64("difficulty", res.Flow.DifficultyLevel),
			)
			count(func(s *BatchSummary) { s.Processed++ })
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	log.Info("batch complete",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// hasChanged reports whether the analysis file is newer than its flow
// artifact. It returns true when the artifact does not exist.
func hasChanged(analysisPath, flowPath string) (bool, error) {
	in, err := os.Stat(analysisPath)
	if err != nil {
		return false, eris.Wrapf(err, "stat analysis %s", analysisPath)
	}
	out, err := os.Stat(flowPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, eris.Wrapf(err, "stat flow %s", flowPath)
	}
	return in.ModTime().After(out.ModTime()), nil
}
