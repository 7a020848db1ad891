package dsl

import (
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
)

// Validate checks the whole project tree: identifier format, ids repeated across
// projects, build types and VCS roots, empty requirement names and VCS bindings
// to unknown roots.
// All problems are collected; the result is nil when the tree is valid.
func (p *Project) Validate() error {
	v := &treeValidator{
		seen:  make(map[ID]string),
		roots: make(map[ID]bool),
	}
	_ = p.Walk(func(q *Project) error {
		for _, r := range q.VCSRoots {
			v.roots[r.ID] = true
		}
		return nil
	})
	_ = p.Walk(func(q *Project) error {
		v.project(q)
		return nil
	})
	return v.problems.OrNil()
}

// treeValidator keeps one id namespace for every kind; the build server does.
type treeValidator struct {
	seen     map[ID]string
	roots    map[ID]bool
	problems serrors.ValidationErrors
}

// id checks the format of id and that no other entity already uses it.
func (v *treeValidator) id(id ID, kind string) {
	if ok, reason := ValidID(id); !ok {
		v.problems = append(v.problems, serrors.InvalidID(string(id), reason).WithContext("kind", kind))
		return
	}
	if prev, dup := v.seen[id]; dup {
		v.problems = append(v.problems, serrors.DuplicateID(string(id)).
			WithContext("kind", kind).
			WithContext("conflicts_with", prev))
		return
	}
	v.seen[id] = kind
}

func (v *treeValidator) project(p *Project) {
	v.id(p.ID, "project")
	for _, r := range p.VCSRoots {
		v.id(r.ID, "vcs_root")
	}
	for _, bt := range p.BuildTypes {
		v.buildType(bt)
	}
}

func (v *treeValidator) buildType(bt *BuildType) {
	v.id(bt.ID, "build_type")
	if bt.Name == "" {
		v.problems = append(v.problems, serrors.ValidationFailed("build_type.name", "empty name").WithContext("id", string(bt.ID)))
	}
	for _, r := range bt.Requirements {
		if r.Name == "" {
			v.problems = append(v.problems, serrors.ValidationFailed("requirement.name", "empty requirement name").WithContext("id", string(bt.ID)))
		}
	}
	for _, root := range bt.VCS.Roots {
		if !v.roots[root] {
			v.problems = append(v.problems, serrors.ValidationFailed("vcs.root", "unknown vcs root").
				WithContext("id", string(bt.ID)).
				WithContext("root", string(root)))
		}
	}
}
