package export

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
)

// DSLVersion is the settings format version declared in Kotlin output.
const DSLVersion = "2018.2"

//go:embed templates/settings.kts.tmpl
var kotlinTemplateText string

var kotlinTemplate = template.Must(template.New("settings.kts").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{
		"kt":          kotlinString,
		"requirement": kotlinRequirement,
	}).
	Parse(kotlinTemplateText))

type kotlinDocument struct {
	Version     string
	Root        *dsl.Project
	SubProjects []*dsl.Project
	VCSRoots    []*dsl.VCSRoot
	BuildTypes  []*dsl.BuildType
}

func newKotlinDocument(root *dsl.Project) kotlinDocument {
	doc := kotlinDocument{Version: DSLVersion, Root: root}
	_ = root.Walk(func(p *dsl.Project) error {
		if p != root {
			doc.SubProjects = append(doc.SubProjects, p)
		}
		doc.VCSRoots = append(doc.VCSRoots, p.VCSRoots...)
		doc.BuildTypes = append(doc.BuildTypes, p.OrderedBuildTypes()...)
		return nil
	})
	return doc
}

func writeKotlin(w io.Writer, p *dsl.Project) error {
	return kotlinTemplate.Execute(w, newKotlinDocument(p))
}

// kotlinString quotes s as a Kotlin string literal. '$' is escaped so build
// server %references% and shell variables survive untouched.
func kotlinString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`, "$", "${'$'}")
	return `"` + r.Replace(s) + `"`
}

func kotlinRequirement(r dsl.Requirement) string {
	switch r.Type {
	case dsl.RequirementContains:
		return fmt.Sprintf("contains(%s, %s)", kotlinString(r.Name), kotlinString(r.Value))
	case dsl.RequirementDoesNotContain:
		return fmt.Sprintf("doesNotContain(%s, %s)", kotlinString(r.Name), kotlinString(r.Value))
	case dsl.RequirementEquals:
		return fmt.Sprintf("equals(%s, %s)", kotlinString(r.Name), kotlinString(r.Value))
	case dsl.RequirementExists:
		return fmt.Sprintf("exists(%s)", kotlinString(r.Name))
	}
	return fmt.Sprintf("// unsupported requirement %s on %s", r.Type, r.Name)
}
