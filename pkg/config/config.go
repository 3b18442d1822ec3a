// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the optional YAML configuration of a flultest
// test binary:
//
//	filter: "Registry::"
//	tags: [fast]
//	exclude_tags: [slow]
//	log_level: info
//	report:
//	  json: out/report.json
//	  table: true
//	  metrics: out/flultest.prom
//
// A configuration is validated against an embedded JSON schema before
// it is decoded.  Command line flags override the values they set.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable which may point to a
// configuration file.
const EnvVar = "FLULTEST_CONFIG"

// Config holds the defaults for the filters, the logging and the
// reports of a test run.
type Config struct {
	Filter      string   `yaml:"filter"`
	Tags        []string `yaml:"tags"`
	ExcludeTags []string `yaml:"exclude_tags"`
	LogLevel    string   `yaml:"log_level"`
	Report      Report   `yaml:"report"`
}

// Report selects the reports written after a test run.
type Report struct {
	JSON    string `yaml:"json"`
	Table   bool   `yaml:"table"`
	Metrics string `yaml:"metrics"`
}

// ValidationError is returned for a configuration which violates the
// configuration schema.
type ValidationError struct {
	Path  string
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %v", e.Cause)
	}
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Cause)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// Load reads, validates and decodes the configuration file at given
// path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse validates and decodes given YAML configuration.  An empty
// document yields the zero configuration.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg := &Config{}
	if doc == nil {
		return cfg, nil
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Level maps the configured log level to a slog level; it defaults to
// slog.LevelWarn.
func (c *Config) Level() slog.Level {
	return ParseLevel(c.LogLevel)
}

// Levels are the accepted log level names.
var Levels = []string{"debug", "info", "warn", "error"}

// CheckLevel fails for a non-empty level which is not one of Levels.
func CheckLevel(level string) error {
	if level == "" || slices.Contains(Levels, level) {
		return nil
	}
	return fmt.Errorf("unknown log level %q: want one of %s",
		level, strings.Join(Levels, ", "))
}

// ParseLevel maps "debug", "info", "warn" and "error" to their slog
// levels and anything else to slog.LevelWarn.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
