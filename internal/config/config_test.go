// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8094 {
		t.Errorf("Server.Port = %d, want 8094", cfg.Server.Port)
	}
	if cfg.Analytics.RetentionHorizon != 10 {
		t.Errorf("RetentionHorizon = %d, want 10", cfg.Analytics.RetentionHorizon)
	}
	if cfg.Analytics.Segments.CostHigh != 100 {
		t.Errorf("CostHigh = %v, want 100", cfg.Analytics.Segments.CostHigh)
	}
}

func TestLoadEnvOverride(t *testing.T) {

	t.Setenv("VOCALLYTICS_SERVER__PORT", "9001")
	t.Setenv("VOCALLYTICS_ANALYTICS__RATE_PER_MINUTE", "0.5")
	t.Setenv("VOCALLYTICS_LOGGING__LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9001 {
		t.Errorf("Server.Port = %d, want 9001", cfg.Server.Port)
	}
	if cfg.Analytics.RatePerMinute != 0.5 {
		t.Errorf("RatePerMinute = %v, want 0.5", cfg.Analytics.RatePerMinute)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("server:\n  port: 8200\nanalytics:\n  retention_horizon: 6\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8200 {
		t.Errorf("Server.Port = %d, want 8200", cfg.Server.Port)
	}
	if cfg.Analytics.RetentionHorizon != 6 {
		t.Errorf("RetentionHorizon = %d, want 6", cfg.Analytics.RetentionHorizon)
	}
	// Untouched keys keep their defaults.
	if cfg.Database.MaxOpenConns != 4 {
		t.Errorf("MaxOpenConns = %d, want default 4", cfg.Database.MaxOpenConns)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {

	if _, err := Load("/nonexistent/vocallytics.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"activity not descending", func(c *Config) { c.Analytics.Segments.ActivityRegular = 40 }},
		{"cost not descending", func(c *Config) { c.Analytics.Segments.CostMedium = 200 }},
		{"cooling below active", func(c *Config) { c.Analytics.Segments.RecencyCoolingDays = 3 }},
		{"bad cutoff", func(c *Config) { c.Analytics.TruncationCutoff = "March 1st" }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"zero horizon", func(c *Config) { c.Analytics.RetentionHorizon = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {

	cfg := Default()
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	ec := cfg.EngineConfig(asOf)
	if !ec.AsOf.Equal(asOf) {
		t.Errorf("AsOf = %v, want %v", ec.AsOf, asOf)
	}
	if ec.Thresholds.ActivityPowerUser != 30 {
		t.Errorf("ActivityPowerUser = %d, want 30", ec.Thresholds.ActivityPowerUser)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !ec.TruncationCutoff.Equal(want) {
		t.Errorf("TruncationCutoff = %v, want %v", ec.TruncationCutoff, want)
	}
}

func TestEnvTransform(t *testing.T) {

	tests := []struct {
		in       string
		expected string
	}{
		{"VOCALLYTICS_SERVER__PORT", "server.port"},
		{"VOCALLYTICS_ANALYTICS__RATE_PER_MINUTE", "analytics.rate_per_minute"},
		{"VOCALLYTICS_ANALYTICS__SEGMENTS__COST_HIGH", "analytics.segments.cost_high"},
	}

	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.expected {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
