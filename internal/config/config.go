// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads interview-engine settings from a YAML file, the
// environment, and built-in defaults, and configures the global logger.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// EnvPrefix is prepended to every environment override, e.g.
// INTERVIEW_ENGINE_PIPELINE_WORKERS.
const EnvPrefix = "INTERVIEW_ENGINE"

type Config struct {
	Log        LogConfig              `yaml:"log" mapstructure:"log"`
	Generation types.GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Flow       types.FlowConfig       `yaml:"flow" mapstructure:"flow"`
	Pipeline   PipelineConfig         `yaml:"pipeline" mapstructure:"pipeline"`
	Store      StoreConfig            `yaml:"store" mapstructure:"store"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type PipelineConfig struct {
	AnalysesDir string `yaml:"analyses_dir" mapstructure:"analyses_dir"`
	OutputDir   string `yaml:"output_dir" mapstructure:"output_dir"`
	Workers     int    `yaml:"workers" mapstructure:"workers"`
}

type StoreConfig struct {
	MaxResults int `yaml:"max_results" mapstructure:"max_results"`
}

// Load reads configuration. When cfgFile is empty it looks for
// interview-engine.yaml in the working directory and then in
// ~/.config/interview-engine/; a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("interview-engine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "interview-engine"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("generation.max_questions", types.MaxQuestions)
	v.SetDefault("flow.title", "")
	v.SetDefault("flow.description", "")
	v.SetDefault("pipeline.analyses_dir", "analyses")
	v.SetDefault("pipeline.output_dir", "interviews")
	v.SetDefault("pipeline.workers", 4)
	v.SetDefault("store.max_results", 20)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var errs []string
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, "log.format must be json or console")
	}
	if c.Generation.MaxQuestions < 0 {
		errs = append(errs, "generation.max_questions must not be negative")
	}
	if c.Pipeline.Workers < 1 {
		errs = append(errs, "pipeline.workers must be at least 1")
	}
	if c.Pipeline.OutputDir == "" {
		errs = append(errs, "pipeline.output_dir is required")
	}
	if c.Store.MaxResults < 1 {
		errs = append(errs, "store.max_results must be at least 1")
	}
	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// PipelineSettings assembles the batch pipeline settings.
func (c *Config) PipelineSettings() types.PipelineConfig {
	return types.PipelineConfig{
		Generation:  c.Generation,
		Flow:        c.Flow,
		AnalysesDir: c.Pipeline.AnalysesDir,
		OutputDir:   c.Pipeline.OutputDir,
		Workers:     c.Pipeline.Workers,
	}
}

// StoreSettings assembles the project store settings. The database lives
// under the pipeline output directory.
func (c *Config) StoreSettings() types.StoreConfig {
	return types.StoreConfig{
		OutputDir:  c.Pipeline.OutputDir,
		MaxResults: c.Store.MaxResults,
	}
}

// InitLogger initializes the global zap logger. Format "json" selects the
// production encoder; anything else logs to the console.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
