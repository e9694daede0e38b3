// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.False(t, b.hasDefaults)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://first", RetryCount: 1},
			Log:     Log{Level: "info"},
		},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://second"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://second", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 1, cfg.Adapter.RetryCount)
	assert.Equal(t, "info", cfg.Log.Level)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.True(t, b.hasDefaults)
	assert.Equal(t, defaults(), b.configs[0])
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env:9000")
	t.Setenv("WORKERS_SYNC_INTERVAL", "1m")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env:9000", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, b.configs[0].Workers.SyncInterval)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("ADAPTER_RETRY_COUNT", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_SkipsNil(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithFlags_Appends(t *testing.T) {
	flagsCfg := &StructuredConfig{Log: Log{Level: "warn"}}
	b := newConfigBuilder().withFlags(flagsCfg)
	require.Len(t, b.configs, 1)
	assert.Same(t, flagsCfg, b.configs[0])
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_SetsErrorOnMissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithFile_PrecedenceBelowFlags verifies that the file is inserted after
// defaults, so flags still override it.
func TestWithFile_PrecedenceBelowFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://file:1", "retry_count": 5},
		"log":     map[string]any{"level": "error"},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags(&StructuredConfig{Log: Log{Level: "warn"}, FilePath: path}).
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://file:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5, cfg.Adapter.RetryCount)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
}

func TestWithFile_WithoutDefaultsGoesFirst(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "error"}})

	b := newConfigBuilder().
		withFlags(&StructuredConfig{Log: Log{Level: "warn"}, FilePath: path}).
		withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "error", b.configs[0].Log.Level)
}
