package commands

import (
	"fmt"

	"git.home.luguber.info/inful/buildsettings/internal/naming"
)

// StripIDCmd implements the 'strip-id' command.
type StripIDCmd struct {
	ID   string `arg:"" help:"Identifier to normalize"`
	Root string `required:"" help:"Root project identifier"`
}

func (s *StripIDCmd) Run(global *Global, _ *CLI) error {
	_, _ = fmt.Fprintln(global.stdout(), naming.StripRootProject(s.ID, s.Root))
	return nil
}
