package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
)

// Example returns the settings written by Init.
func Example() *Config {
	return &Config{
		Version: "1",
		Project: ProjectConfig{
			ID:   "MyProject",
			Name: "My Project",
			SettingsRoot: &VCSRootConfig{
				Name:   "settings",
				URL:    "https://git.example.com/ci/settings.git",
				Branch: "main",
			},
			BuildTypes: []BuildTypeConfig{
				{
					Name: "Compile",
					Steps: []StepConfig{
						{Name: "compile", Script: "./gradlew compileJava"},
					},
				},
				{
					Name: "Unit Tests",
					Params: []ParamConfig{
						{Name: "gradle.args", Value: "-I gradle/init-scripts/build-scan.init.gradle.kts"},
					},
					Steps: []StepConfig{
						{Name: "test", Script: "./gradlew test %gradle.args%"},
					},
				},
				{
					Name: "Windows Tests",
					OS:   "windows",
					Steps: []StepConfig{
						{Name: "test", Script: "gradlew.bat test"},
					},
				},
			},
			SubProjects: []ProjectConfig{
				{
					Name: "Release",
					BuildTypes: []BuildTypeConfig{
						{
							Name:          "Publish",
							ArtifactRules: "build/libs/** => libs",
							Requirements: []RequirementConfig{
								{Type: "exists", Name: "env.SIGNING_KEY"},
							},
							Steps: []StepConfig{
								{Name: "publish", Script: "./gradlew publish"},
							},
						},
					},
				},
			},
		},
		Output: OutputConfig{Format: OutputFormatYAML},
	}
}

// Init creates a new settings file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return serrors.New(serrors.CategoryConfig, serrors.SeverityFatal,
			fmt.Sprintf("settings file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath)
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return serrors.InternalError("failed to marshal example settings", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return serrors.FileSystemError("write settings", err)
	}
	return nil
}
