// Command buildsettings generates CI build server settings from a declarative
// settings file, applying organization defaults to every build type.
package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/buildsettings/cmd/buildsettings/commands"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}
	ctx := kong.Parse(&cli,
		kong.Name("buildsettings"),
		kong.Description("Generate CI build server settings with organization defaults applied."),
		kong.UsageOnError(),
		kong.Bind(global),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(global, &cli); err != nil {
		serrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
