package dsl

import (
	"fmt"
	"strings"
)

// VCSRoot is a reusable reference to a repository location.
type VCSRoot struct {
	ID         ID     `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	URL        string `yaml:"url" json:"url"`
	Branch     string `yaml:"branch,omitempty" json:"branch,omitempty"`
	BranchSpec string `yaml:"branch_spec,omitempty" json:"branch_spec,omitempty"`
}

// CheckoutMode controls where sources are checked out.
type CheckoutMode string

const (
	CheckoutOnAgent  CheckoutMode = "ON_AGENT"
	CheckoutOnServer CheckoutMode = "ON_SERVER"
	CheckoutManual   CheckoutMode = "MANUAL"
	CheckoutAuto     CheckoutMode = "AUTO"
)

// ParseCheckoutMode accepts the mode names case-insensitively, with '-' or '_'.
func ParseCheckoutMode(s string) (CheckoutMode, error) {
	m := CheckoutMode(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	switch m {
	case CheckoutOnAgent, CheckoutOnServer, CheckoutManual, CheckoutAuto:
		return m, nil
	}
	return "", fmt.Errorf("unknown checkout mode %q", s)
}

// VCSSettings binds a build type to VCS roots.
type VCSSettings struct {
	Roots        []ID         `yaml:"roots,omitempty" json:"roots,omitempty"`
	CheckoutMode CheckoutMode `yaml:"checkout_mode,omitempty" json:"checkout_mode,omitempty"`
}

// Root attaches r, ignoring nil and already attached roots.
func (v *VCSSettings) Root(r *VCSRoot) {
	if r == nil {
		return
	}
	for _, id := range v.Roots {
		if id == r.ID {
			return
		}
	}
	v.Roots = append(v.Roots, r.ID)
}
