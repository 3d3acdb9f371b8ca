// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of a bequest calibration run.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"github.com/ogusa/bequestkde/bequest"
	"github.com/ogusa/bequestkde/internal/survey"
)

// Environment variables that override the file.
const (
	EnvSeed      = "BEQUESTKDE_SEED"
	EnvOutputDir = "BEQUESTKDE_OUTPUT_DIR"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of a calibration run.
type Config struct {
	// Grid size: age categories and lifetime-income groups.
	S int `yaml:"s"`
	J int `yaml:"j"`

	// Smoothing
	Bandwidth  float64 `yaml:"bandwidth"`
	SampleSize int     `yaml:"sample_size"`
	GridSpan   string  `yaml:"grid_span"` // observed, categories
	Strict     bool    `yaml:"strict"`

	// Seed seeds resampling. 0 means a time-based seed.
	Seed uint64 `yaml:"seed"`

	// Category labels and survey filter
	FirstAge    int `yaml:"first_age"`
	FirstIncome int `yaml:"first_income"`
	MinYear     int `yaml:"min_year"`

	// Output
	OutputDir string `yaml:"output_dir"`
	ImageDir  string `yaml:"image_dir"`
	Plot      bool   `yaml:"plot"`

	// Workers bounds concurrent runs of a bandwidth sweep. 0 means
	// one per CPU.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings of the calibration run.
func DefaultConfig() *Config {
	return &Config{
		S:           survey.DefaultS,
		J:           survey.DefaultJ,
		Bandwidth:   bequest.CalibrationBandwidth,
		SampleSize:  bequest.DefaultSampleSize,
		GridSpan:    bequest.SpanObserved.String(),
		FirstAge:    bequest.DefaultFirstAge,
		FirstIncome: bequest.DefaultFirstIncome,
		MinYear:     survey.DefaultMinYear,
		OutputDir:   "csv_output_files",
		ImageDir:    "images",
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults. Environment overrides are
// applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	return nil
}

// Validate checks that the configuration describes a runnable
// estimation.
func (c *Config) Validate() error {
	switch {
	case c.S <= 0 || c.J <= 0:
		return fmt.Errorf("%w: grid %d×%d", ErrInvalid, c.S, c.J)
	case !(c.Bandwidth > 0) || math.IsInf(c.Bandwidth, 0):
		return fmt.Errorf("%w: bandwidth %g", ErrInvalid, c.Bandwidth)
	case c.SampleSize <= 0:
		return fmt.Errorf("%w: sample_size %d", ErrInvalid, c.SampleSize)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if _, err := bequest.ParseGridSpan(c.GridSpan); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging level: %w", ErrInvalid, err)
	}
	return nil
}

// Level returns the configured log level, or info if it is not valid.
func (c *Config) Level() zapcore.Level {
	l, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// SeedOrNow returns Seed, or a time-based seed if Seed is 0.
func (c *Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Estimator returns an estimator configured by c that draws from a
// source seeded with seed.
func (c *Config) Estimator(seed uint64, log *zap.Logger) (bequest.Estimator, error) {
	span, err := bequest.ParseGridSpan(c.GridSpan)
	if err != nil {
		return bequest.Estimator{}, err
	}
	return bequest.Estimator{
		SampleSize:  c.SampleSize,
		Bandwidth:   c.Bandwidth,
		FirstAge:    c.FirstAge,
		FirstIncome: c.FirstIncome,
		Span:        span,
		Strict:      c.Strict,
		Src:         rand.NewSource(seed),
		Logger:      log,
	}, nil
}

// SurveyOptions returns the tabulation options for the configured
// grid.
func (c *Config) SurveyOptions() survey.Options {
	return survey.Options{
		S:           c.S,
		J:           c.J,
		FirstAge:    c.FirstAge,
		FirstIncome: c.FirstIncome,
		MinYear:     c.MinYear,
	}
}
