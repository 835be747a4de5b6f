// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command behaviorlint validates brush behavior documents.
//
// It reads one or more JSON or YAML files, decodes the behaviors in
// each, and reports every document that fails field or structural
// validation. The exit code is non-zero when any file is invalid.
//
// Usage:
//
//	behaviorlint [flags] file.json [file.yaml ...]
//
// A TOML config file may set limits that apply in addition to the
// built-in validation, such as the maximum node count per behavior.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/google/ink-sub000/behavior"
	"github.com/google/ink-sub000/behavior/behaviorio"
)

// Config holds lint limits loaded from a TOML file.
type Config struct {
	// MaxNodes is the maximum number of nodes allowed per behavior.
	// Zero means no limit.
	MaxNodes int `toml:"max_nodes"`

	// MaxBehaviors is the maximum number of behaviors allowed per
	// document. Zero means no limit.
	MaxBehaviors int `toml:"max_behaviors"`

	// RequireComments makes behaviors without a comment an error.
	RequireComments bool `toml:"require_comments"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeFile(path string) ([]behavior.Behavior, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return behaviorio.DecodeYAML(data)
	case ".json":
		return behaviorio.DecodeJSON(data)
	}
	return nil, fmt.Errorf("%s: unsupported file extension, want .json, .yaml, or .yml", path)
}

func lintFile(path string, cfg *Config) error {
	behaviors, err := decodeFile(path)
	if err != nil {
		return err
	}
	if cfg.MaxBehaviors > 0 && len(behaviors) > cfg.MaxBehaviors {
		return fmt.Errorf("%s: %d behaviors exceeds limit of %d", path, len(behaviors), cfg.MaxBehaviors)
	}
	for i, b := range behaviors {
		if cfg.MaxNodes > 0 && len(b.Nodes) > cfg.MaxNodes {
			return fmt.Errorf("%s: behavior %d: %d nodes exceeds limit of %d", path, i, len(b.Nodes), cfg.MaxNodes)
		}
		if cfg.RequireComments && b.Comment == "" {
			return fmt.Errorf("%s: behavior %d: missing comment", path, i)
		}
	}
	slog.Debug("validated", "file", path, "behaviors", len(behaviors))
	return nil
}

func main() {
	configPath := flag.String("config", "", "TOML config file with lint limits")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: behaviorlint [flags] file.json [file.yaml ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "behaviorlint: %v\n", err)
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := lintFile(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "behaviorlint: %v\n", err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
