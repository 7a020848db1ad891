// Package platform defines the operating system families build agents report
// and the per-family strings used in agent requirements and parameter templates.
package platform

import (
	"fmt"
	"strings"
)

// OS identifies a target operating system family.
type OS int

const (
	Linux OS = iota
	Windows
	MacOS
)

type osInfo struct {
	name            string
	requirementName string
}

// osTable holds, per family, the lower-case name used inside parameter templates
// and the fragment matched against the agent's reported OS name.
var osTable = map[OS]osInfo{
	Linux:   {name: "linux", requirementName: "Linux"},
	Windows: {name: "windows", requirementName: "Windows"},
	MacOS:   {name: "macos", requirementName: "Mac OS"},
}

var osAliases = map[string]OS{
	"linux":   Linux,
	"windows": Windows,
	"win":     Windows,
	"macos":   MacOS,
	"mac":     MacOS,
	"osx":     MacOS,
	"darwin":  MacOS,
}

// All returns every known family in declaration order.
func All() []OS { return []OS{Linux, Windows, MacOS} }

// Name is the family name used in parameter templates, e.g. "linux".
func (o OS) Name() string {
	if info, ok := osTable[o]; ok {
		return info.name
	}
	return fmt.Sprintf("os(%d)", int(o))
}

// RequirementName is the substring an agent's OS name must contain.
func (o OS) RequirementName() string {
	return osTable[o].requirementName
}

func (o OS) String() string { return o.Name() }

// Valid reports whether o is a known family.
func (o OS) Valid() bool {
	_, ok := osTable[o]
	return ok
}

// Parse resolves a family from its name or a common alias, case-insensitively.
func Parse(s string) (OS, error) {
	if o, ok := osAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o, nil
	}
	return Linux, fmt.Errorf("unknown operating system %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o OS) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid operating system %d", int(o))
	}
	return []byte(o.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OS) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
