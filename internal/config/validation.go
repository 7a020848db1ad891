package config

import (
	"fmt"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
)

var requirementTypes = map[string]bool{
	string(dsl.RequirementContains):       true,
	string(dsl.RequirementDoesNotContain): true,
	string(dsl.RequirementEquals):         true,
	string(dsl.RequirementExists):         true,
}

// ValidateConfig validates the settings file structure. Identifier format and
// duplicate ids are checked later on the evaluated project tree.
func ValidateConfig(cfg *Config) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateDefaults(); err != nil {
		return err
	}
	if cv.config.Project.ID == "" {
		return serrors.ConfigRequired("project.id")
	}
	if root := cv.config.Project.SettingsRoot; root != nil && root.URL == "" {
		return serrors.ValidationFailed("project.settings_root.url", "url is required")
	}
	return cv.validateProject(&cv.config.Project, "project")
}

func (cv *configurationValidator) validateDefaults() error {
	if _, err := platform.Parse(cv.config.Defaults.OS); err != nil {
		return serrors.ValidationFailed("defaults.os", err.Error())
	}
	if _, err := dsl.ParseCheckoutMode(cv.config.Defaults.CheckoutMode); err != nil {
		return serrors.ValidationFailed("defaults.checkout_mode", err.Error())
	}
	return nil
}

func (cv *configurationValidator) validateProject(p *ProjectConfig, path string) error {
	for i, r := range p.VCSRoots {
		if r.URL == "" {
			return serrors.ValidationFailed(fmt.Sprintf("%s.vcs_roots[%d].url", path, i), "url is required")
		}
		if r.ID == "" && r.Name == "" {
			return serrors.ValidationFailed(fmt.Sprintf("%s.vcs_roots[%d]", path, i), "id or name is required")
		}
	}
	for i := range p.BuildTypes {
		if err := cv.validateBuildType(&p.BuildTypes[i], fmt.Sprintf("%s.build_types[%d]", path, i)); err != nil {
			return err
		}
	}
	for i := range p.SubProjects {
		sp := &p.SubProjects[i]
		field := fmt.Sprintf("%s.sub_projects[%d]", path, i)
		if sp.ID == "" && sp.Name == "" {
			return serrors.ValidationFailed(field, "id or name is required")
		}
		if sp.SettingsRoot != nil {
			return serrors.ValidationFailed(field+".settings_root", "only the root project may declare the settings root")
		}
		if err := cv.validateProject(sp, field); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateBuildType(bt *BuildTypeConfig, path string) error {
	if bt.Name == "" {
		return serrors.ValidationFailed(path+".name", "build type name cannot be empty")
	}
	if bt.OS != "" {
		if _, err := platform.Parse(bt.OS); err != nil {
			return serrors.ValidationFailed(path+".os", err.Error())
		}
	}
	if bt.CheckoutMode != "" {
		if _, err := dsl.ParseCheckoutMode(bt.CheckoutMode); err != nil {
			return serrors.ValidationFailed(path+".checkout_mode", err.Error())
		}
	}
	seen := make(map[string]bool, len(bt.Params))
	for i, p := range bt.Params {
		if p.Name == "" {
			return serrors.ValidationFailed(fmt.Sprintf("%s.params[%d].name", path, i), "parameter name cannot be empty")
		}
		if seen[p.Name] {
			return serrors.ValidationFailed(fmt.Sprintf("%s.params[%d].name", path, i), "duplicate parameter "+p.Name)
		}
		seen[p.Name] = true
	}
	for i, r := range bt.Requirements {
		if !requirementTypes[r.Type] {
			return serrors.ValidationFailed(fmt.Sprintf("%s.requirements[%d].type", path, i), fmt.Sprintf("unknown requirement type %q", r.Type))
		}
	}
	for i, s := range bt.Steps {
		if s.Script == "" {
			return serrors.ValidationFailed(fmt.Sprintf("%s.steps[%d].script", path, i), "script cannot be empty")
		}
	}
	return nil
}
