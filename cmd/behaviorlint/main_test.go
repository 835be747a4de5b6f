// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validJSON = `{"behaviors": [{"nodes": [
  {"source": {"source": "normalized-pressure", "out_of_range": "clamp", "value_range": [0, 1]}},
  {"target": {"target": "size-multiplier", "modifier_range": [0.5, 1.5]}}
]}]}`

const validYAML = `
behaviors:
  - comment: fade
    nodes:
      - source:
          source: time-since-input-in-seconds
          out_of_range: clamp
          value_range: [0, 1]
      - target:
          target: opacity-multiplier
          modifier_range: [1, 0]
`

func TestLintValidFiles(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, lintFile(writeFile(t, "b.json", validJSON), cfg))
	assert.NoError(t, lintFile(writeFile(t, "b.yaml", validYAML), cfg))
}

func TestLintInvalidBehavior(t *testing.T) {
	bad := `{"behaviors": [{"nodes": [{"binary_op": {"operation": "sum"}}]}]}`
	err := lintFile(writeFile(t, "bad.json", bad), &Config{})
	assert.ErrorContains(t, err, "insufficient inputs")
}

func TestLintUnsupportedExtension(t *testing.T) {
	err := lintFile(writeFile(t, "b.txt", validJSON), &Config{})
	assert.ErrorContains(t, err, "unsupported file extension")
}

func TestLintMissingFile(t *testing.T) {
	err := lintFile(filepath.Join(t.TempDir(), "absent.json"), &Config{})
	assert.Error(t, err)
}

func TestLintConfigLimits(t *testing.T) {
	path := writeFile(t, "b.json", validJSON)
	assert.ErrorContains(t, lintFile(path, &Config{MaxNodes: 1}), "exceeds limit")
	assert.ErrorContains(t, lintFile(path, &Config{RequireComments: true}), "missing comment")
	assert.NoError(t, lintFile(path, &Config{MaxNodes: 5, MaxBehaviors: 3}))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxNodes)

	path := writeFile(t, "lint.toml", "max_nodes = 16\nrequire_comments = true\n")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxNodes)
	assert.True(t, cfg.RequireComments)
}
