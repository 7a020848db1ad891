package dsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
		want   ID
	}{
		{"simple", "Compile", "MyProject", "MyProject_Compile"},
		{"no prefix", "Compile", "", "Compile"},
		{"spaces become word breaks", "unit tests", "Root", "Root_UnitTests"},
		{"punctuation dropped", "Build (fast) - linux", "", "BuildFastLinux"},
		{"underscores kept", "MyProject_Build1", "", "MyProject_Build1"},
		{"diacritics stripped", "Café build", "", "CafeBuild"},
		{"leading digits trimmed without prefix", "2nd pass", "", "NdPass"},
		{"leading digits trimmed with prefix", "2nd pass", "Root", "Root_NdPass"},
		{"leading digit word dropped", "9 Lives", "Root", "Root_Lives"},
		{"inner digits kept", "Java 11 tests", "Root", "Root_Java11Tests"},
		{"empty body falls back to prefix", "!!!", "Root", "Root"},
		{"non latin dropped", "сборка", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToID(tt.input, tt.prefix))
		})
	}
}

func TestToID_Truncates(t *testing.T) {
	id := ToID(strings.Repeat("a", 300), "Root")
	assert.Len(t, string(id), MaxIDLength)
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   ID
		want bool
	}{
		{"Root_Compile", true},
		{"A", true},
		{"", false},
		{"1Build", false},
		{"_Build", false},
		{"Build-1", false},
		{ID(strings.Repeat("a", MaxIDLength+1)), false},
	}

	for _, tt := range tests {
		ok, reason := ValidID(tt.id)
		assert.Equal(t, tt.want, ok, "id %q", tt.id)
		if !ok {
			assert.NotEmpty(t, reason)
		}
	}
}

func TestStableUUID(t *testing.T) {
	a := StableUUID("Root_Compile")
	assert.Equal(t, a, StableUUID("Root_Compile"))
	assert.NotEqual(t, a, StableUUID("Root_Test"))
	assert.Len(t, a, 36)
}
