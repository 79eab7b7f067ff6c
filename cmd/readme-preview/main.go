package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/readme-preview/cmd/readme-preview/commands"
	"git.home.luguber.info/inful/readme-preview/internal/config"
	derrors "git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("readme-preview"),
		kong.Description("Preview, lint, and bootstrap README quality before publishing."),
		kong.UsageOnError(),
		kong.Vars{
			"version":     version.Version,
			"config_file": config.DefaultFileName,
		},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := parser.Run(global, cli); err != nil {
		derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
