package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	base := func() *Config {
		return &Config{
			Project:  ProjectConfig{ID: "Root", BuildTypes: []BuildTypeConfig{{Name: "Compile"}}},
			Defaults: DefaultsConfig{OS: "linux"},
			Output:   OutputConfig{Format: OutputFormatYAML},
		}
	}

	a, b := base(), base()
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Len(t, a.Snapshot(), 64)

	b.Logging.Level = LogLevelDebug
	assert.Equal(t, a.Snapshot(), b.Snapshot(), "logging does not affect output")

	b.Project.BuildTypes[0].OS = "windows"
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	var nilCfg *Config
	assert.Empty(t, nilCfg.Snapshot())
}
