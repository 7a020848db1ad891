package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
)

// Config represents a settings file: the project tree to generate plus how to
// generate it.
type Config struct {
	Version  string         `yaml:"version,omitempty"`
	Project  ProjectConfig  `yaml:"project"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Metrics  MetricsConfig  `yaml:"metrics,omitempty"`
}

// ProjectConfig declares a project and, recursively, its sub projects.
type ProjectConfig struct {
	ID           string            `yaml:"id,omitempty"`
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description,omitempty"`
	SettingsRoot *VCSRootConfig    `yaml:"settings_root,omitempty"` // root project only; detected from the repository when omitted
	VCSRoots     []VCSRootConfig   `yaml:"vcs_roots,omitempty"`
	BuildTypes   []BuildTypeConfig `yaml:"build_types,omitempty"`
	SubProjects  []ProjectConfig   `yaml:"sub_projects,omitempty"`
}

// VCSRootConfig declares a repository location.
type VCSRootConfig struct {
	ID         string `yaml:"id,omitempty"`
	Name       string `yaml:"name,omitempty"`
	URL        string `yaml:"url"`
	Branch     string `yaml:"branch,omitempty"`
	BranchSpec string `yaml:"branch_spec,omitempty"`
}

// BuildTypeConfig declares one build type. Unset fields keep the defaults.
type BuildTypeConfig struct {
	Name          string              `yaml:"name"`
	Description   string              `yaml:"description,omitempty"`
	OS            string              `yaml:"os,omitempty"`
	ArtifactRules string              `yaml:"artifact_rules,omitempty"`
	CheckoutMode  string              `yaml:"checkout_mode,omitempty"`
	VCSRoots      []string            `yaml:"vcs_roots,omitempty"`
	Params        []ParamConfig       `yaml:"params,omitempty"`
	Requirements  []RequirementConfig `yaml:"requirements,omitempty"`
	Steps         []StepConfig        `yaml:"steps,omitempty"`
}

type ParamConfig struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type RequirementConfig struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

type StepConfig struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"`
}

// DefaultsConfig overrides the organization defaults applied to every build type.
type DefaultsConfig struct {
	ArtifactRules string `yaml:"artifact_rules,omitempty"`
	OS            string `yaml:"os,omitempty"`
	CheckoutMode  string `yaml:"checkout_mode,omitempty"`
}

// MetricsConfig controls the optional node-exporter textfile.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path,omitempty"`
}

// Load reads, expands, normalizes, defaults and validates a settings file.
// Variables from .env files next to the settings file are loaded first without
// overriding the process environment.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		slog.Debug("No .env file loaded", logfields.Path(filepath.Dir(configPath)), logfields.Error(err))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serrors.ConfigNotFound(configPath)
		}
		return nil, serrors.Wrap(err, serrors.CategoryFileSystem, serrors.SeverityFatal, "failed to read settings file").
			WithContext("path", configPath)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, serrors.ConfigParse(configPath, err)
	}
	if err := Prepare(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes settings YAML after expanding ${VAR} references. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &cfg, nil
}

// Prepare runs normalization, default application and validation in that order.
func Prepare(cfg *Config) error {
	res, err := NormalizeConfig(cfg)
	if err != nil {
		return serrors.InternalError("normalization failed", err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Settings normalized", slog.String("detail", w))
	}
	if err := applyDefaults(cfg); err != nil {
		return err
	}
	return ValidateConfig(cfg)
}
