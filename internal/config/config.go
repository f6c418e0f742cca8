// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// Package config provides layered configuration for Vocallytics.
//
// Configuration is loaded with koanf in three layers, later layers
// overriding earlier ones:
//
//  1. struct defaults (Default())
//  2. an optional YAML file
//  3. environment variables prefixed VOCALLYTICS_, with "__" mapping to
//     nesting, e.g. VOCALLYTICS_SERVER__PORT -> server.port
//
// The loaded config is validated with go-playground/validator before use.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vocallytics/vocallytics/internal/analytics"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Host is the listen address
	Host string `koanf:"host"`

	// Port is the listen port
	Port int `koanf:"port" validate:"gte=1,lte=65535"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitPerMinute caps requests per client IP per minute
	RateLimitPerMinute int `koanf:"rate_limit_per_minute" validate:"gte=1"`

	// CORSAllowedOrigins lists origins allowed by CORS; "*" allows all
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig configures the embedded DuckDB store.
type DatabaseConfig struct {
	// Path is the database file path; ":memory:" runs fully in memory
	Path string `koanf:"path" validate:"required"`

	// Threads caps DuckDB worker threads; 0 means one per CPU
	Threads int `koanf:"threads" validate:"gte=0"`

	// MaxMemory is the DuckDB memory limit, e.g. "512MB"
	MaxMemory string `koanf:"max_memory"`

	// MaxOpenConns caps the database/sql pool size
	MaxOpenConns int `koanf:"max_open_conns" validate:"gte=1"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// Format is json or console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller locations in log lines
	Caller bool `koanf:"caller"`
}

// AnalyticsConfig parameterizes the derivation engine. Nothing the
// engine needs is hardcoded; it all flows from here.
type AnalyticsConfig struct {
	// RatePerMinute is the monetary cost of one audio minute
	RatePerMinute float64 `koanf:"rate_per_minute" validate:"gte=0"`

	// RetentionHorizon is the cohort horizon H (columns W+0..W+H)
	RetentionHorizon int `koanf:"retention_horizon" validate:"gte=1,lte=52"`

	// TruncationCutoff is the RFC 3339 instant the long-file truncation
	// fix shipped; empty disables the signal
	TruncationCutoff string `koanf:"truncation_cutoff"`

	// Segments holds the segmentation decision-table thresholds
	Segments SegmentsConfig `koanf:"segments"`
}

// SegmentsConfig holds segmentation thresholds per axis.
type SegmentsConfig struct {
	ActivityPowerUser int `koanf:"activity_power_user" validate:"gt=0"`
	ActivityRegular   int `koanf:"activity_regular" validate:"gt=0"`
	ActivityModerate  int `koanf:"activity_moderate" validate:"gt=0"`
	ActivityLight     int `koanf:"activity_light" validate:"gt=0"`
	ActivityCasual    int `koanf:"activity_casual" validate:"gt=0"`

	RecencyNewDays     int `koanf:"recency_new_days" validate:"gt=0"`
	RecencyActiveDays  int `koanf:"recency_active_days" validate:"gt=0"`
	RecencyCoolingDays int `koanf:"recency_cooling_days" validate:"gt=0"`

	CostHigh   float64 `koanf:"cost_high" validate:"gt=0"`
	CostMedium float64 `koanf:"cost_medium" validate:"gt=0"`
	CostLow    float64 `koanf:"cost_low" validate:"gt=0"`
}

// Default returns the built-in defaults, the first koanf layer.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8094,
			ShutdownTimeout:    10 * time.Second,
			RateLimitPerMinute: 300,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Path:         "vocallytics.db",
			Threads:      0,
			MaxMemory:    "512MB",
			MaxOpenConns: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Analytics: AnalyticsConfig{
			RatePerMinute:    0.006,
			RetentionHorizon: analytics.DefaultRetentionHorizon,
			TruncationCutoff: "2026-03-01T00:00:00Z",
			Segments: SegmentsConfig{
				ActivityPowerUser:  30,
				ActivityRegular:    15,
				ActivityModerate:   8,
				ActivityLight:      4,
				ActivityCasual:     2,
				RecencyNewDays:     7,
				RecencyActiveDays:  7,
				RecencyCoolingDays: 14,
				CostHigh:           100,
				CostMedium:         20,
				CostLow:            5,
			},
		},
	}
}

// Validate checks the configuration against its struct tags plus the
// cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Analytics.TruncationCutoff != "" {
		if _, err := time.Parse(time.RFC3339, c.Analytics.TruncationCutoff); err != nil {
			return fmt.Errorf("analytics.truncation_cutoff is not RFC 3339: %w", err)
		}
	}

	s := c.Analytics.Segments
	if !(s.ActivityPowerUser > s.ActivityRegular &&
		s.ActivityRegular > s.ActivityModerate &&
		s.ActivityModerate > s.ActivityLight &&
		s.ActivityLight > s.ActivityCasual) {
		return fmt.Errorf("activity thresholds must be strictly descending")
	}
	if !(s.CostHigh > s.CostMedium && s.CostMedium > s.CostLow) {
		return fmt.Errorf("cost thresholds must be strictly descending")
	}
	if s.RecencyCoolingDays < s.RecencyActiveDays {
		return fmt.Errorf("recency_cooling_days must be >= recency_active_days")
	}

	return nil
}

// EngineConfig converts the analytics section into the engine's explicit
// configuration, anchored at the given report-as-of instant.
func (c *Config) EngineConfig(asOf time.Time) analytics.Config {
	var cutoff time.Time
	if c.Analytics.TruncationCutoff != "" {
		// Validated in Validate; a parse failure here leaves the signal
		// disabled rather than panicking.
		cutoff, _ = time.Parse(time.RFC3339, c.Analytics.TruncationCutoff)
	}

	s := c.Analytics.Segments
	return analytics.Config{
		RatePerMinute: c.Analytics.RatePerMinute,
		Thresholds: analytics.SegmentThresholds{
			ActivityPowerUser:  s.ActivityPowerUser,
			ActivityRegular:    s.ActivityRegular,
			ActivityModerate:   s.ActivityModerate,
			ActivityLight:      s.ActivityLight,
			ActivityCasual:     s.ActivityCasual,
			RecencyNewDays:     s.RecencyNewDays,
			RecencyActiveDays:  s.RecencyActiveDays,
			RecencyCoolingDays: s.RecencyCoolingDays,
			CostHigh:           s.CostHigh,
			CostMedium:         s.CostMedium,
			CostLow:            s.CostLow,
		},
		TruncationCutoff: cutoff,
		RetentionHorizon: c.Analytics.RetentionHorizon,
		AsOf:             asOf,
	}
}

// Addr returns the server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
