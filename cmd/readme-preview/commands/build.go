package commands

import (
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	"git.home.luguber.info/inful/readme-preview/internal/logfields"
	"git.home.luguber.info/inful/readme-preview/internal/preview"
	"git.home.luguber.info/inful/readme-preview/internal/render"
)

// BuildCmd writes the rendered README to .readme-preview/index.html.
type BuildCmd struct {
	RenderFlags `embed:""`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, cwd, err := resolveRender(root, &b.RenderFlags)
	if err != nil {
		return err
	}
	return runBuild(g, cfg, cwd, os.Stdout)
}

func runBuild(g *Global, cfg *config.Config, cwd string, out io.Writer) error {
	source := &preview.Source{File: cfg.File, Options: RenderOptions(cfg, cwd), Renderer: render.NewRenderer()}
	page, err := source.Build()
	if err != nil {
		return err
	}

	path, err := preview.WriteBuild(cwd, page.HTML)
	if err != nil {
		return err
	}
	if g != nil && g.Logger != nil {
		g.Logger.Debug("Build written", logfields.Path(path))
	}
	_, err = fmt.Fprintf(out, "✅ Wrote preview to: %s\n", path)
	return err
}
