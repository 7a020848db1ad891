package dsl

// Project groups build types, VCS roots and sub projects.
type Project struct {
	ID              ID           `yaml:"id" json:"id"`
	Name            string       `yaml:"name" json:"name"`
	Description     string       `yaml:"description,omitempty" json:"description,omitempty"`
	VCSRoots        []*VCSRoot   `yaml:"vcs_roots,omitempty" json:"vcs_roots,omitempty"`
	BuildTypes      []*BuildType `yaml:"build_types,omitempty" json:"build_types,omitempty"`
	BuildTypesOrder []ID         `yaml:"build_types_order,omitempty" json:"build_types_order,omitempty"`
	SubProjects     []*Project   `yaml:"sub_projects,omitempty" json:"sub_projects,omitempty"`

	parent *Project
}

// NewProject creates an empty project.
func NewProject(id ID, name string) *Project {
	return &Project{ID: id, Name: name}
}

// Parent returns the enclosing project, or nil for the root.
func (p *Project) Parent() *Project { return p.parent }

// Register adds bt to the project and appends its id to the registration order.
func (p *Project) Register(bt *BuildType) {
	p.BuildTypes = append(p.BuildTypes, bt)
	p.BuildTypesOrder = append(p.BuildTypesOrder, bt.ID)
}

// AddSubProject nests sp under p.
func (p *Project) AddSubProject(sp *Project) {
	sp.parent = p
	p.SubProjects = append(p.SubProjects, sp)
}

// AddVCSRoot attaches r unless a root with the same id is already present.
func (p *Project) AddVCSRoot(r *VCSRoot) {
	if r == nil {
		return
	}
	for _, existing := range p.VCSRoots {
		if existing.ID == r.ID {
			return
		}
	}
	p.VCSRoots = append(p.VCSRoots, r)
}

// BuildType looks up a build type of this project by id.
func (p *Project) BuildType(id ID) *BuildType {
	for _, bt := range p.BuildTypes {
		if bt.ID == id {
			return bt
		}
	}
	return nil
}

// OrderedBuildTypes returns the build types in registration order.
// Entities whose id is missing from the order list follow in slice order.
func (p *Project) OrderedBuildTypes() []*BuildType {
	out := make([]*BuildType, 0, len(p.BuildTypes))
	seen := make(map[*BuildType]bool, len(p.BuildTypes))
	for _, id := range p.BuildTypesOrder {
		for _, bt := range p.BuildTypes {
			if bt.ID == id && !seen[bt] {
				out = append(out, bt)
				seen[bt] = true
				break
			}
		}
	}
	for _, bt := range p.BuildTypes {
		if !seen[bt] {
			out = append(out, bt)
		}
	}
	return out
}

// Walk visits p and its sub projects depth-first, stopping at the first error.
func (p *Project) Walk(fn func(*Project) error) error {
	if err := fn(p); err != nil {
		return err
	}
	for _, sp := range p.SubProjects {
		if err := sp.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// CountBuildTypes returns the number of build types in the whole tree.
func (p *Project) CountBuildTypes() int {
	n := 0
	_ = p.Walk(func(q *Project) error {
		n += len(q.BuildTypes)
		return nil
	})
	return n
}
