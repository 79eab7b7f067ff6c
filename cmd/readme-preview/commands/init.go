package commands

import (
	"io"
	"os"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	"git.home.luguber.info/inful/readme-preview/internal/scaffold"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force        bool   `help:"Overwrite existing files"`
	WorkflowOnly bool   `name:"workflow-only" help:"Only create GitHub Action"`
	ReadmeOnly   bool   `name:"readme-only" help:"Only patch README"`
	Assets       bool   `help:"Add placeholder assets/screenshot.png"`
	ConfigFile   bool   `name:"config-file" help:"Also write ${config_file} with the defaults"`
	WorkflowName string `name:"workflow-name" help:"Custom workflow name (default: README Preview Check)"`
	Dir          string `short:"d" name:"dir" default:"." help:"Project directory to scaffold"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	return i.run(cfg, os.Stdout)
}

func (i *InitCmd) run(cfg *config.Config, out io.Writer) error {
	name := i.WorkflowName
	if name == "" {
		name = cfg.WorkflowName
	}

	report, err := scaffold.Run(scaffold.Options{
		Dir:          i.Dir,
		Force:        i.Force,
		WorkflowOnly: i.WorkflowOnly,
		ReadmeOnly:   i.ReadmeOnly,
		Assets:       i.Assets,
		Config:       i.ConfigFile,
		WorkflowName: name,
	})
	if report != nil {
		if perr := report.Print(out); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}
