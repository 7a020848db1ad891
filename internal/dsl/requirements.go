package dsl

import "strings"

// RequirementType is the matching strategy of an agent requirement.
type RequirementType string

const (
	RequirementContains       RequirementType = "contains"
	RequirementDoesNotContain RequirementType = "does-not-contain"
	RequirementEquals         RequirementType = "equals"
	RequirementExists         RequirementType = "exists"
)

// Requirement constrains which agents may run a build type.
type Requirement struct {
	Type  RequirementType `yaml:"type" json:"type"`
	Name  string          `yaml:"name" json:"name"`
	Value string          `yaml:"value,omitempty" json:"value,omitempty"`
}

// Matches evaluates the requirement against the properties an agent reports.
func (r Requirement) Matches(props map[string]string) bool {
	actual, ok := props[r.Name]
	switch r.Type {
	case RequirementExists:
		return ok
	case RequirementEquals:
		return ok && actual == r.Value
	case RequirementContains:
		return ok && strings.Contains(actual, r.Value)
	case RequirementDoesNotContain:
		return !ok || !strings.Contains(actual, r.Value)
	}
	return false
}

// Requirements is the ordered requirement list of a build type.
type Requirements []Requirement

func (rs *Requirements) add(t RequirementType, name, value string) {
	*rs = append(*rs, Requirement{Type: t, Name: name, Value: value})
}

func (rs *Requirements) Contains(name, value string)       { rs.add(RequirementContains, name, value) }
func (rs *Requirements) DoesNotContain(name, value string) { rs.add(RequirementDoesNotContain, name, value) }
func (rs *Requirements) Equals(name, value string)         { rs.add(RequirementEquals, name, value) }
func (rs *Requirements) Exists(name string)                { rs.add(RequirementExists, name, "") }
