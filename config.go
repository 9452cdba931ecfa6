// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FLUIDDOC_OUTPUT_DIR.
const EnvPrefix = "FLUIDDOC"

const (
	defaultSchemasDir = "schemas"
	defaultOutputDir  = "public"
	defaultTitle      = "ViewHelper Reference"
	defaultLogLevel   = "info"
)

// Config holds the directories and switches of one generation run.
// It is built once and passed by value to the resolver and generator.
type Config struct {
	// SchemasDir contains <vendor>/<package>/<version>.xsd files.
	SchemasDir string `mapstructure:"schemas_dir" yaml:"schemas_dir"`
	// ResourcesDir supplies shared fragments such as Includes.rst.txt.
	ResourcesDir string `mapstructure:"resources_dir" yaml:"resources_dir,omitempty"`
	// OutputDir receives the generated page tree.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// SearchIndex enables the search index exporter when set.
	SearchIndex string `mapstructure:"search_index" yaml:"search_index,omitempty"`
	// Title is the headline of the top-level index page.
	Title    string `mapstructure:"title" yaml:"title"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// SkipSchemaValidation disables XSD compilation of version schemas.
	SkipSchemaValidation bool `mapstructure:"skip_schema_validation" yaml:"skip_schema_validation"`
}

// DefaultConfig returns configuration defaults.
func DefaultConfig() Config {
	return Config{
		SchemasDir: defaultSchemasDir,
		OutputDir:  defaultOutputDir,
		Title:      defaultTitle,
		LogLevel:   defaultLogLevel,
	}
}

// LoadConfig merges defaults, an optional config file and FLUIDDOC_* environment values.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("schemas_dir", defaults.SchemasDir)
	v.SetDefault("resources_dir", defaults.ResourcesDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("search_index", defaults.SearchIndex)
	v.SetDefault("title", defaults.Title)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("skip_schema_validation", defaults.SkipSchemaValidation)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w %q: %w", ErrLoadConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	return cfg, nil
}

// Validate checks required directories and known log levels.
// The search index directory is removed on every run, so it must not contain
// any other configured directory.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.SchemasDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.SearchIndex, validation.By(disjointFrom(c.SchemasDir, c.OutputDir, c.ResourcesDir))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// disjointFrom rejects a directory that equals or contains any of dirs.
func disjointFrom(dirs ...string) validation.RuleFunc {
	return func(value any) error {
		dir, _ := value.(string)
		if strings.TrimSpace(dir) == "" {
			return nil
		}

		for _, other := range dirs {
			if strings.TrimSpace(other) == "" {
				continue
			}

			contains, err := containsPath(dir, other)
			if err != nil {
				return err
			}
			if contains {
				return fmt.Errorf("must not contain %q", other)
			}
		}

		return nil
	}
}

// containsPath reports whether target is parent itself or lies below it.
func containsPath(parent, target string) (bool, error) {
	parentAbs, err := filepath.Abs(parent)
	if err != nil {
		return false, err
	}

	targetAbs, err := filepath.Abs(target)
	if err != nil {
		return false, err
	}

	// Rel fails for paths on different volumes, which cannot nest.
	rel, err := filepath.Rel(parentAbs, targetAbs)
	if err != nil {
		return false, nil
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
