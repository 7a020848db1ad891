package config

import (
	"git.home.luguber.info/inful/buildsettings/internal/defaults"
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// BuildTypeDefaultApplier fills the organization defaults section.
type BuildTypeDefaultApplier struct{}

func (b *BuildTypeDefaultApplier) Domain() string { return "defaults" }

func (b *BuildTypeDefaultApplier) ApplyDefaults(cfg *Config) error {
	org := defaults.DefaultOrganization()
	if cfg.Defaults.ArtifactRules == "" {
		cfg.Defaults.ArtifactRules = org.ArtifactRules
	}
	if cfg.Defaults.OS == "" {
		cfg.Defaults.OS = org.OS.Name()
	}
	if cfg.Defaults.CheckoutMode == "" {
		cfg.Defaults.CheckoutMode = string(org.CheckoutMode)
	}
	return nil
}

// ProjectDefaultApplier derives missing project names and ids.
type ProjectDefaultApplier struct{}

func (p *ProjectDefaultApplier) Domain() string { return "project" }

func (p *ProjectDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Project.ID == "" && cfg.Project.Name != "" {
		cfg.Project.ID = string(dsl.ToID(cfg.Project.Name, ""))
	}
	if cfg.Project.Name == "" {
		cfg.Project.Name = cfg.Project.ID
	}
	defaultSubProjects(&cfg.Project)
	return nil
}

// defaultSubProjects gives sub projects ids namespaced under their parent.
func defaultSubProjects(parent *ProjectConfig) {
	for i := range parent.SubProjects {
		sp := &parent.SubProjects[i]
		if sp.ID == "" {
			sp.ID = string(dsl.ToID(sp.Name, parent.ID))
		}
		if sp.Name == "" {
			sp.Name = sp.ID
		}
		defaultSubProjects(sp)
	}
}

// OutputDefaultApplier handles Output configuration defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputFormatYAML
	}
	return nil
}

// LoggingDefaultApplier handles Logging configuration defaults.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{
		&ProjectDefaultApplier{},
		&BuildTypeDefaultApplier{},
		&OutputDefaultApplier{},
		&LoggingDefaultApplier{},
	}
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers() {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
