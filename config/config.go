// SPDX-License-Identifier: MIT

// Package config loads process-wide tuning for lvlinalg from the environment.
//
// Variables (all optional):
//
//	LINALG_BLOCK_SIZE          tile/panel width (default 128)
//	LINALG_PARALLEL_THRESHOLD  minimum work before forking (default 10000)
//	LINALG_WORKERS             worker limit, 0 = GOMAXPROCS (default 0)
//	LINALG_EPSILON             checker tolerance (default 1e-6)
//	LINALG_PIVOT_EPSILON       PLU near-zero pivot threshold (default 1e-9)
//	LINALG_ACCELERATE          enable the accelerated backend (default true)
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the environment-derived tuning.
type Config struct {
	BlockSize         int     `env:"LINALG_BLOCK_SIZE" envDefault:"128"`
	ParallelThreshold int     `env:"LINALG_PARALLEL_THRESHOLD" envDefault:"10000"`
	Workers           int     `env:"LINALG_WORKERS" envDefault:"0"`
	Epsilon           float64 `env:"LINALG_EPSILON" envDefault:"1e-6"`
	PivotEpsilon      float64 `env:"LINALG_PIVOT_EPSILON" envDefault:"1e-9"`
	Accelerate        bool    `env:"LINALG_ACCELERATE" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the kernels cannot work with.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: LINALG_BLOCK_SIZE=%d must be > 0", ErrInvalidConfig, c.BlockSize)
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("%w: LINALG_PARALLEL_THRESHOLD=%d must be >= 0", ErrInvalidConfig, c.ParallelThreshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: LINALG_WORKERS=%d must be >= 0", ErrInvalidConfig, c.Workers)
	}
	if !validTol(c.Epsilon) {
		return fmt.Errorf("%w: LINALG_EPSILON=%g must be finite and > 0", ErrInvalidConfig, c.Epsilon)
	}
	if !validTol(c.PivotEpsilon) {
		return fmt.Errorf("%w: LINALG_PIVOT_EPSILON=%g must be finite and > 0", ErrInvalidConfig, c.PivotEpsilon)
	}
	return nil
}

func validTol(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
