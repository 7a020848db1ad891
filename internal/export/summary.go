package export

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"git.home.luguber.info/inful/buildsettings/internal/defaults"
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
)

var markdownCell = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown(w io.Writer, p *dsl.Project) error {
	var buf bytes.Buffer
	writeProjectSummary(&buf, p, 1)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeProjectSummary(buf *bytes.Buffer, p *dsl.Project, level int) {
	heading := strings.Repeat("#", min(level, 6))
	fmt.Fprintf(buf, "%s %s (`%s`)\n\n", heading, markdownCell.Replace(p.Name), p.ID)
	if p.Description != "" {
		fmt.Fprintf(buf, "%s\n\n", p.Description)
	}

	if bts := p.OrderedBuildTypes(); len(bts) > 0 {
		buf.WriteString("| # | Build type | ID | Agent OS | Checkout | Artifacts |\n")
		buf.WriteString("|---|---|---|---|---|---|\n")
		for i, bt := range bts {
			fmt.Fprintf(buf, "| %d | %s | `%s` | %s | %s | %s |\n",
				i+1,
				markdownCell.Replace(bt.Name),
				bt.ID,
				markdownCell.Replace(agentOS(bt)),
				bt.VCS.CheckoutMode,
				codeOrDash(bt.ArtifactRules))
		}
		buf.WriteString("\n")
	}

	for _, sp := range p.SubProjects {
		writeProjectSummary(buf, sp, level+1)
	}
}

// agentOS lists the OS fragments required by the build type's OS requirements.
func agentOS(bt *dsl.BuildType) string {
	var parts []string
	for _, r := range bt.Requirements {
		if r.Name == defaults.AgentOSProperty && r.Type == dsl.RequirementContains {
			parts = append(parts, r.Value)
		}
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, ", ")
}

func codeOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + markdownCell.Replace(s) + "`"
}

func writeHTML(w io.Writer, p *dsl.Project) error {
	var md bytes.Buffer
	writeProjectSummary(&md, p, 1)

	renderer := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := renderer.Convert(md.Bytes(), &body); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(p.Name), body.String())
	return err
}
