package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{Project: ProjectConfig{ID: "Root", BuildTypes: []BuildTypeConfig{{Name: "Compile"}}}}
	require.NoError(t, applyDefaults(cfg))
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing project id", func(c *Config) { c.Project.ID = "" }, true},
		{"bad default os", func(c *Config) { c.Defaults.OS = "amiga" }, true},
		{"bad default checkout", func(c *Config) { c.Defaults.CheckoutMode = "sideways" }, true},
		{"settings root without url", func(c *Config) { c.Project.SettingsRoot = &VCSRootConfig{Name: "s"} }, true},
		{"vcs root without url", func(c *Config) { c.Project.VCSRoots = []VCSRootConfig{{ID: "R"}} }, true},
		{"vcs root without id or name", func(c *Config) { c.Project.VCSRoots = []VCSRootConfig{{URL: "https://x"}} }, true},
		{"empty build type name", func(c *Config) { c.Project.BuildTypes[0].Name = "" }, true},
		{"bad build type os", func(c *Config) { c.Project.BuildTypes[0].OS = "beos" }, true},
		{"duplicate param", func(c *Config) {
			c.Project.BuildTypes[0].Params = []ParamConfig{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}}
		}, true},
		{"unknown requirement type", func(c *Config) {
			c.Project.BuildTypes[0].Requirements = []RequirementConfig{{Type: "matches", Name: "x"}}
		}, true},
		{"empty step script", func(c *Config) { c.Project.BuildTypes[0].Steps = []StepConfig{{Name: "noop"}} }, true},
		{"sub project settings root", func(c *Config) {
			c.Project.SubProjects = []ProjectConfig{{ID: "Root_Sub", SettingsRoot: &VCSRootConfig{URL: "https://x"}}}
		}, true},
		{"sub project named but without id", func(c *Config) {
			c.Project.SubProjects = []ProjectConfig{{Name: "Release"}}
		}, false},
		{"sub project without id or name", func(c *Config) {
			c.Project.SubProjects = []ProjectConfig{{}}
		}, true},
		{"invalid nested build type", func(c *Config) {
			c.Project.SubProjects = []ProjectConfig{{ID: "Root_Sub", BuildTypes: []BuildTypeConfig{{Name: ""}}}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
