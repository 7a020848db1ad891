package export

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
)

// projectDocument is the serialized form of a project: build types in
// registration order and the order list itself omitted as redundant.
type projectDocument struct {
	ID          dsl.ID            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	VCSRoots    []*dsl.VCSRoot    `yaml:"vcs_roots,omitempty" json:"vcs_roots,omitempty"`
	BuildTypes  []*dsl.BuildType  `yaml:"build_types,omitempty" json:"build_types,omitempty"`
	SubProjects []projectDocument `yaml:"sub_projects,omitempty" json:"sub_projects,omitempty"`
}

func newProjectDocument(p *dsl.Project) projectDocument {
	doc := projectDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		VCSRoots:    p.VCSRoots,
		BuildTypes:  p.OrderedBuildTypes(),
	}
	for _, sp := range p.SubProjects {
		doc.SubProjects = append(doc.SubProjects, newProjectDocument(sp))
	}
	return doc
}

func writeYAML(w io.Writer, p *dsl.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newProjectDocument(p)); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, p *dsl.Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newProjectDocument(p))
}
