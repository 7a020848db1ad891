package dsl

// Step is a build step executed by the agent.
type Step struct {
	Name   string `yaml:"name" json:"name"`
	Script string `yaml:"script" json:"script"`
}

// BuildType is a named, configurable definition of a single CI job.
type BuildType struct {
	ID            ID           `yaml:"id" json:"id"`
	UUID          string       `yaml:"uuid" json:"uuid"`
	Name          string       `yaml:"name" json:"name"`
	Description   string       `yaml:"description,omitempty" json:"description,omitempty"`
	ArtifactRules string       `yaml:"artifact_rules,omitempty" json:"artifact_rules,omitempty"`
	Requirements  Requirements `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	Params        Params       `yaml:"params,omitempty" json:"params,omitempty"`
	VCS           VCSSettings  `yaml:"vcs" json:"vcs"`
	Steps         []Step       `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// SetRequirements applies fn to the requirement list.
func (bt *BuildType) SetRequirements(fn func(*Requirements)) { fn(&bt.Requirements) }

// SetParams applies fn to the parameter list.
func (bt *BuildType) SetParams(fn func(*Params)) { fn(&bt.Params) }

// SetVCS applies fn to the VCS settings.
func (bt *BuildType) SetVCS(fn func(*VCSSettings)) { fn(&bt.VCS) }

// AddStep appends a build step.
func (bt *BuildType) AddStep(name, script string) {
	bt.Steps = append(bt.Steps, Step{Name: name, Script: script})
}

// CompatibleWith reports whether an agent reporting props satisfies every
// requirement. Requirement values are expanded through the build type's params
// and then the agent's own properties.
func (bt *BuildType) CompatibleWith(props map[string]string) bool {
	lookup := func(name string) (string, bool) {
		v, ok := props[name]
		return v, ok
	}
	for _, r := range bt.Requirements {
		r.Value = bt.Params.Expand(r.Value, lookup)
		if !r.Matches(props) {
			return false
		}
	}
	return true
}
