package commands

import (
	"fmt"

	"git.home.luguber.info/inful/buildsettings/internal/config"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing settings file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	global.Logger.Info("Settings file created", logfields.Path(root.Config))
	_, _ = fmt.Fprintf(global.stdout(), "Created %s\n", root.Config)
	return nil
}
