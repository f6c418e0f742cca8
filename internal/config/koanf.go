// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "VOCALLYTICS_"

// ConfigPathEnvVar names the env var pointing at an explicit config file.
const ConfigPathEnvVar = "VOCALLYTICS_CONFIG"

// defaultConfigPaths are searched in order when no explicit path is given.
var defaultConfigPaths = []string{
	"vocallytics.yaml",
	"config/vocallytics.yaml",
	"/etc/vocallytics/config.yaml",
}

// Load builds the configuration in three layers: struct defaults, an
// optional YAML file, then VOCALLYTICS_* environment variables. The
// result is validated before being returned.
//
// An empty path triggers the default file search; a missing default file
// is fine, a missing explicit path is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: struct defaults
	defaults := Default()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional YAML file
	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	// Layer 3: environment variables (highest priority)
	// VOCALLYTICS_SERVER__PORT -> server.port
	envProvider := env.Provider(EnvPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envTransform maps an environment variable name to its koanf path.
// Double underscores separate nesting levels, single underscores stay
// part of the key: VOCALLYTICS_ANALYTICS__RATE_PER_MINUTE ->
// analytics.rate_per_minute.
func envTransform(name string) string {
	trimmed := strings.TrimPrefix(name, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(trimmed), "__", ".")
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
