package commands

import (
	"fmt"

	"git.home.luguber.info/inful/buildsettings/internal/defaults"
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/metrics"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
)

// MatchCmd implements the 'match' command.
type MatchCmd struct {
	AgentOS string            `name:"agent-os" help:"Operating system family of the agent (linux, windows, macos)"`
	Prop    map[string]string `short:"p" help:"Agent property as key=value; repeatable"`
}

func (m *MatchCmd) Run(global *Global, root *CLI) error {
	ev, err := evaluate(global, root, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	props, err := m.properties()
	if err != nil {
		return err
	}

	out := global.stdout()
	return ev.result.Project.Walk(func(p *dsl.Project) error {
		for _, bt := range p.OrderedBuildTypes() {
			if bt.CompatibleWith(props) {
				_, _ = fmt.Fprintln(out, bt.ID)
			}
		}
		return nil
	})
}

// properties merges --prop values with the OS name the agent reports for --agent-os.
func (m *MatchCmd) properties() (map[string]string, error) {
	props := make(map[string]string, len(m.Prop)+1)
	for k, v := range m.Prop {
		props[k] = v
	}
	if m.AgentOS != "" {
		family, err := platform.Parse(m.AgentOS)
		if err != nil {
			return nil, serrors.ValidationFailed("--agent-os", err.Error())
		}
		if _, set := props[defaults.AgentOSProperty]; !set {
			props[defaults.AgentOSProperty] = family.RequirementName()
		}
	}
	return props, nil
}
