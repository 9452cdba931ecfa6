// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.SchemasDir != "schemas" || cfg.OutputDir != "public" || cfg.Title != "ViewHelper Reference" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fluiddoc.yaml")
	content := "schemas_dir: xsd\noutput_dir: docs\ntitle: Reference\nlog_level: debug\nskip_schema_validation: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.SchemasDir != "xsd" || cfg.OutputDir != "docs" || cfg.Title != "Reference" || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	if !cfg.SkipSchemaValidation {
		t.Fatal("skip_schema_validation not applied")
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("FLUIDDOC_OUTPUT_DIR", "from-env")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.OutputDir != "from-env" {
		t.Fatalf("output dir = %q, want from-env", cfg.OutputDir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrLoadConfig) {
		t.Fatalf("expected ErrLoadConfig, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for empty output dir, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown log level, got %v", err)
	}
}

func TestConfigValidateSearchIndexPlacement(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	base := DefaultConfig()
	base.SchemasDir = filepath.Join(root, "schemas")
	base.OutputDir = filepath.Join(root, "public")
	base.ResourcesDir = filepath.Join(root, "resources")

	tests := []struct {
		name        string
		searchIndex string
		wantErr     bool
	}{
		{name: "unset", searchIndex: ""},
		{name: "sibling", searchIndex: filepath.Join(root, "index")},
		{name: "inside output", searchIndex: filepath.Join(root, "public", ".index")},
		{name: "sibling with shared prefix", searchIndex: filepath.Join(root, "schemas-index")},
		{name: "equals schemas", searchIndex: filepath.Join(root, "schemas"), wantErr: true},
		{name: "equals output", searchIndex: filepath.Join(root, "public") + string(filepath.Separator), wantErr: true},
		{name: "equals resources", searchIndex: filepath.Join(root, "resources"), wantErr: true},
		{name: "ancestor of all", searchIndex: root, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base
			cfg.SearchIndex = tt.searchIndex
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestConfigValidateRelativeSearchIndex(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SearchIndex = "./schemas"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for search index equal to schemas dir, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	if _, err := NewLogger(os.Stderr, "warn"); err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	if _, err := NewLogger(os.Stderr, "loud"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
