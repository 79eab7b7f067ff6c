package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRender(t *testing.T, md string, opts Options) string {
	t.Helper()
	if opts.Cwd == "" {
		opts.Cwd = t.TempDir()
	}
	out, err := Render(md, opts)
	require.NoError(t, err)
	return out
}

func TestRender_Basic(t *testing.T) {
	out := mustRender(t, "# Hello\n\nWorld", Options{})
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<h1>Hello</h1>")
	assert.Contains(t, out, "World")
	assert.Contains(t, out, `<meta charset="utf-8"/>`)
	assert.Contains(t, out, `name="viewport"`)
	assert.Contains(t, out, `<div class="wrap">`)
}

func TestRender_Title(t *testing.T) {
	assert.Contains(t, mustRender(t, "# Test", Options{}), "<title>README Preview</title>")
	assert.Contains(t, mustRender(t, "# Test", Options{Title: "Custom Title"}), "<title>Custom Title</title>")
	assert.Contains(t, mustRender(t, "# Test", Options{Title: "<b>A & B</b>"}), "<title>&lt;b&gt;A &amp; B&lt;/b&gt;</title>")
}

func TestRender_Themes(t *testing.T) {
	assert.Contains(t, mustRender(t, "# T", Options{}), "max-width: 960px")
	assert.Contains(t, mustRender(t, "# T", Options{Theme: "GitHub"}), "max-width: 980px")
	assert.Contains(t, mustRender(t, "# T", Options{Theme: "unknown"}), "max-width: 960px")
}

func TestRender_NeverEmitsScript(t *testing.T) {
	inputs := []string{
		"# Test\n\n<script>alert('xss')</script>\n\nSafe",
		"<SCRIPT src=\"https://evil.example/x.js\"></SCRIPT>",
		"text <script>inline()</script> more",
		"<img src=\"x.png\" onerror=\"alert(1)\">",
		"[click](javascript:alert(1))",
		"<div><script>nested()</script></div>",
		"```html\n<script>shown as code</script>\n```",
	}
	for _, md := range inputs {
		out := mustRender(t, md, Options{})
		assert.NotContains(t, strings.ToLower(out), "<script", md)
		assert.NotContains(t, out, "onerror", md)
		assert.NotContains(t, out, "javascript:", md)
	}

	out := mustRender(t, inputs[0], Options{})
	assert.Contains(t, out, "Safe")
}

func TestRender_EveryAnchorHardened(t *testing.T) {
	md := "# T\n\n[Example](https://example.com) and [Other](https://other.example) " +
		"and <a href=\"https://raw.example\" target=\"_self\">raw</a>"
	out := mustRender(t, md, Options{})

	assert.Equal(t, 3, strings.Count(out, "<a "))
	assert.Equal(t, 3, strings.Count(out, `target="_blank"`))
	assert.Equal(t, 3, strings.Count(out, `rel="noreferrer noopener"`))
	assert.NotContains(t, out, "_self")
	assert.Contains(t, out, `<a href="https://example.com" target="_blank" rel="noreferrer noopener">Example</a>`)
}

func TestRender_GFMFeatures(t *testing.T) {
	table := mustRender(t, "# Test\n\n| Header |\n|--------|\n| Cell   |", Options{})
	assert.Contains(t, table, "<table>")
	assert.Contains(t, table, "<td>Cell</td>")

	code := mustRender(t, "# Test\n\n```bash\necho hello\n```", Options{})
	assert.Contains(t, code, "<pre>")
	assert.Contains(t, code, "<code>")
	assert.Contains(t, code, "echo hello")

	inline := mustRender(t, "# Test\n\nUse `npm install` to install", Options{})
	assert.Contains(t, inline, "<code>npm install</code>")

	quote := mustRender(t, "# Test\n\n> This is a quote", Options{})
	assert.Contains(t, quote, "<blockquote>")
	assert.Contains(t, quote, "This is a quote")
}

func TestRender_Images(t *testing.T) {
	out := mustRender(t, "# Test\n\n![Screenshot](https://example.com/img.png)", Options{})
	assert.Contains(t, out, "<img")
	assert.Contains(t, out, `alt="Screenshot"`)
	assert.Contains(t, out, `src="https://example.com/img.png"`)
}

func TestRender_RewritesRelativeImage(t *testing.T) {
	out := mustRender(t, "# Test\n\n![img](./assets/screenshot.png)", Options{BaseURL: "https://example.com/"})
	assert.Contains(t, out, `src="https://example.com/assets/screenshot.png"`)
}

func TestRender_KeepsAbsoluteImage(t *testing.T) {
	out := mustRender(t, "# Test\n\n![img](https://example.com/img.png)", Options{BaseURL: "https://other.com/"})
	assert.Contains(t, out, "https://example.com/img.png")
	assert.NotContains(t, out, "https://other.com/")
}

func TestRender_LinkRewriting(t *testing.T) {
	opts := Options{BaseURL: "https://example.com/", RewriteLinks: true}

	assert.Contains(t, mustRender(t, "# Test\n\n[link](./other.md)", opts), `href="https://example.com/other.md"`)
	assert.Contains(t, mustRender(t, "# Test\n\n[link](#section)", opts), `href="#section"`)
	assert.Contains(t, mustRender(t, "# Test\n\n[email](mailto:test@example.com)", opts), "mailto:test@example.com")
}

func TestRender_InfersBaseFromRepository(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"repository":"https://github.com/octo/widget.git"}`), 0o600))

	out := mustRender(t, "![s](./s.png)", Options{Cwd: dir, Branch: "main"})
	assert.Contains(t, out, `src="https://raw.githubusercontent.com/octo/widget/main/s.png"`)

	head := mustRender(t, "![s](./s.png)", Options{Cwd: dir})
	assert.Contains(t, head, "/octo/widget/HEAD/s.png")
}

func TestRender_StripsDisallowedAttributes(t *testing.T) {
	out := mustRender(t, "<p style=\"color:red\" id=\"intro\" class=\"x\">hi</p>", Options{})
	assert.Contains(t, out, `<p id="intro">hi</p>`)
}

func TestRenderer_Fragment(t *testing.T) {
	frag, err := NewRenderer().Fragment("# Hi")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>\n", frag)
}
