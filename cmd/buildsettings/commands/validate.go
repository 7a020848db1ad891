package commands

import (
	"fmt"

	"git.home.luguber.info/inful/buildsettings/internal/metrics"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(global *Global, root *CLI) error {
	ev, err := evaluate(global, root, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	p := ev.result.Project
	_, _ = fmt.Fprintf(global.stdout(), "settings valid: project %s, %d build type(s)\n", p.ID, p.CountBuildTypes())
	return nil
}
