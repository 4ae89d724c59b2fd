// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MaxQuestions is the hard cap on the size of a generated question bank.
const MaxQuestions = 25

// GenerationConfig holds settings for question generation.
type GenerationConfig struct {
	// MaxQuestions lowers the bank cap. Zero or values above 25 use 25.
	MaxQuestions int `json:"max_questions" yaml:"max_questions" mapstructure:"max_questions"`
}

// FlowConfig holds settings for flow assembly.
type FlowConfig struct {
	// Title overrides the default flow title when non-empty.
	Title string `json:"title" yaml:"title" mapstructure:"title"`

	// Description overrides the default flow description when non-empty.
	Description string `json:"description" yaml:"description" mapstructure:"description"`
}

// PipelineConfig holds settings for batch runs over a directory of analyses.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
	Flow       FlowConfig       `json:"flow" yaml:"flow" mapstructure:"flow"`

	// AnalysesDir contains the analysis files (*.yaml, *.yml, *.json).
	AnalysesDir string `json:"analyses_dir" yaml:"analyses_dir" mapstructure:"analyses_dir"`

	// OutputDir is the base directory for artifacts (contains questions/, checks/, flows/, index/).
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Workers bounds the number of analyses processed concurrently (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// Force reprocesses analyses whose artifacts are up to date.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// StoreConfig holds settings for the project store.
type StoreConfig struct {
	// OutputDir is the base directory; the database lives at OutputDir/index/projects.db.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}
