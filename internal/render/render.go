package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/repository"
)

// DefaultTitle is the page title used when Options.Title is empty.
const DefaultTitle = "README Preview"

// Options configures Render.
type Options struct {
	Cwd          string
	Branch       string
	BaseURL      string
	RewriteLinks bool
	Title        string
	Theme        string
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Cwd == "" {
		o.Cwd = "."
	}
	if o.Branch == "" {
		o.Branch = repository.DefaultBranch
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Theme == "" {
		o.Theme = string(DefaultTheme)
	}
	return o
}

func (o Options) rewriteOptions() RewriteOptions {
	return RewriteOptions{
		Cwd:          o.Cwd,
		Branch:       o.Branch,
		BaseURL:      o.BaseURL,
		RewriteLinks: o.RewriteLinks,
	}
}

// Renderer owns the markdown converter and sanitization policy. Both are
// immutable after construction, so a Renderer may be shared freely.
type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewRenderer builds a Renderer with GitHub-flavoured markdown enabled. Raw
// HTML is passed through goldmark so that the policy, not the converter,
// decides what survives.
func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		policy: NewPolicy(),
	}
}

var defaultRenderer = NewRenderer()

// Render produces a complete HTML page for md using the shared Renderer.
func Render(md string, opts Options) (string, error) {
	return defaultRenderer.Render(md, opts)
}

// Render produces a complete HTML page for md.
func (r *Renderer) Render(md string, opts Options) (string, error) {
	opts = opts.withDefaults()

	body, err := r.Fragment(RewriteAssets(md, opts.rewriteOptions()))
	if err != nil {
		return "", err
	}

	return Page(opts.Title, ResolveTheme(opts.Theme), body), nil
}

// Fragment converts md to sanitized HTML with hardened anchors, without the
// page shell and without asset rewriting.
func (r *Renderer) Fragment(md string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(md), &buf); err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "failed to convert markdown").Build()
	}

	safe := r.policy.SanitizeBytes(buf.Bytes())
	return hardenLinks(string(safe)), nil
}

const pageTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>%s</title>
<style>%s</style>
</head>
<body>
<div class="wrap">%s</div>
</body>
</html>`

// Page wraps an already sanitized body fragment in the standalone document
// shell. The title is HTML-escaped.
func Page(title string, theme Theme, body string) string {
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), Stylesheet(theme), body)
}
