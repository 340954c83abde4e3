// Package project implements batch conversion runs driven by a project
// configuration file: a YAML document naming the seed directory to read
// Markdown from and the output directory where converted documents land.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config describes a conversion project. Paths are resolved relative to the
// config file's directory when loaded from disk.
type Config struct {
	Name       string `yaml:"name"`
	SeedDir    string `yaml:"seed_dir"`
	OutputDir  string `yaml:"output_dir"`
	Pattern    string `yaml:"pattern"`
	Recursive  bool   `yaml:"recursive"`
	SkipDrafts bool   `yaml:"skip_drafts"`
}

// Validate checks required fields and rejects patterns that escape the seed
// directory.
func (cfg Config) Validate() error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.SeedDir, validation.Required, validation.By(noBlank("seed_dir"))),
		validation.Field(&cfg.OutputDir, validation.Required, validation.By(noBlank("output_dir"))),
		validation.Field(&cfg.Pattern, validation.By(noParentTraversal)),
	)
}

func noBlank(field string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError("docx.project."+field+"_required", field+" is required")
		}
		return nil
	}
}

func noParentTraversal(value any) error {
	if strings.Contains(value.(string), "..") {
		return validation.NewError("docx.project.pattern_invalid", "pattern must not traverse parent directories")
	}
	return nil
}

// LoadConfig reads and validates a project config file. Relative seed and
// output paths are anchored at the config file's directory.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("project config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("project config: parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if cfg.SeedDir != "" && !filepath.IsAbs(cfg.SeedDir) {
		cfg.SeedDir = filepath.Join(base, cfg.SeedDir)
	}
	if cfg.OutputDir != "" && !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(base, cfg.OutputDir)
	}
	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "*.md"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("project config: validate %s: %w", path, err)
	}
	return cfg, nil
}
