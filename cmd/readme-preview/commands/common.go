package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	"git.home.luguber.info/inful/readme-preview/internal/render"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: ${config_file} when present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Preview PreviewCmd `cmd:"" default:"withargs" help:"Preview README in browser (default)"`
	Build   BuildCmd   `cmd:"" help:"Generate static HTML preview"`
	Check   CheckCmd   `cmd:"" help:"Run README validation"`
	Init    InitCmd    `cmd:"" help:"Scaffold README + CI setup"`
}

// AfterApply runs after flag parsing; setup logging once and pick up .env files
// before any command reads the environment.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config.LoadEnvFiles(".")
	return nil
}

// LoadConfig loads the project config. An explicit --config must exist; the
// default file is optional.
func (c *CLI) LoadConfig() (*config.Config, error) {
	if c.Config != "" {
		return config.LoadFile(c.Config)
	}
	return config.Load(config.DefaultFileName)
}

// RenderFlags are shared by the commands that render HTML.
type RenderFlags struct {
	File         string `short:"f" help:"Markdown file (default: README.md)"`
	Title        string `help:"Page title (default: README Preview)"`
	Theme        string `help:"Stylesheet theme (npm or github)"`
	Branch       string `help:"Git branch for raw URLs (default: HEAD)"`
	BaseURL      string `name:"base-url" help:"Override raw base URL"`
	RewriteLinks bool   `name:"rewrite-links" help:"Rewrite relative markdown links"`
}

// Apply overlays flags given on the command line onto cfg. Empty strings and
// unset booleans leave the configured value alone.
func (f *RenderFlags) Apply(cfg *config.Config) {
	overlay(&cfg.File, f.File)
	overlay(&cfg.Title, f.Title)
	overlay(&cfg.Theme, f.Theme)
	overlay(&cfg.Branch, f.Branch)
	overlay(&cfg.BaseURL, f.BaseURL)
	if f.RewriteLinks {
		cfg.RewriteLinks = true
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// RenderOptions builds renderer options from the merged configuration.
func RenderOptions(cfg *config.Config, cwd string) render.Options {
	return render.Options{
		Cwd:          cwd,
		Branch:       cfg.Branch,
		BaseURL:      cfg.BaseURL,
		RewriteLinks: cfg.RewriteLinks,
		Title:        cfg.Title,
		Theme:        cfg.Theme,
	}
}

// resolveRender loads the config, applies the render flags and returns the
// merged config together with the working directory.
func resolveRender(root *CLI, flags *RenderFlags) (*config.Config, string, error) {
	cfg, err := root.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	return cfg, cwd, nil
}
