package commands

import (
	"io"
	"os"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	derrors "git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/lint"
	"git.home.luguber.info/inful/readme-preview/internal/logfields"
	"git.home.luguber.info/inful/readme-preview/internal/preview"
)

// CheckCmd runs the README content checks.
type CheckCmd struct {
	File   string `short:"f" help:"Markdown file (default: README.md)"`
	Strict bool   `help:"Enable strict validation rules"`
	Format string `default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	overlay(&cfg.File, c.File)
	if c.Strict {
		cfg.Strict = true
	}

	passed, err := c.check(g, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if !passed {
		os.Exit(1)
	}
	return nil
}

// check prints the report for cfg.File and reports whether it passed.
func (c *CheckCmd) check(g *Global, cfg *config.Config, out io.Writer) (bool, error) {
	md, err := preview.ReadMarkdown(cfg.File)
	if err != nil {
		return false, err
	}

	result := lint.Check(md)
	if g != nil && g.Logger != nil {
		g.Logger.Debug("README checked",
			logfields.File(cfg.File),
			logfields.Issues(len(result.Issues)),
			logfields.StrictIssues(len(result.StrictIssues)))
	}

	if err := lint.NewFormatter(c.Format).Format(out, result, cfg.File, cfg.Strict); err != nil {
		return false, derrors.WrapError(err, derrors.CategoryInternal, "failed to write check report").Build()
	}
	return result.Passed(cfg.Strict), nil
}
