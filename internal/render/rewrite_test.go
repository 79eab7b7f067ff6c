package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveBase_ExplicitGetsTrailingSlash(t *testing.T) {
	base, ok := EffectiveBase(RewriteOptions{BaseURL: "https://cdn.example.com/repo"})
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/repo/", base)

	base, ok = EffectiveBase(RewriteOptions{BaseURL: "https://cdn.example.com/repo/"})
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/repo/", base)
}

func TestEffectiveBase_InferredFromPackageJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"repository":{"url":"git+https://github.com/octo/widget.git"}}`), 0o600))

	base, ok := EffectiveBase(RewriteOptions{Cwd: dir, Branch: "main"})
	require.True(t, ok)
	assert.Equal(t, "https://raw.githubusercontent.com/octo/widget/main/", base)
}

func TestRewriteAssets_NoBaseIsIdentity(t *testing.T) {
	md := "# T\n\n![a](./a.png)\n[b](./b.md)"
	assert.Equal(t, md, RewriteAssets(md, RewriteOptions{Cwd: t.TempDir(), RewriteLinks: true}))
}

func TestRewriteAssets_NonGitHubCheckoutIsIdentity(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{Name: "origin", URLs: []string{"https://gitlab.com/octo/widget.git"}})
	require.NoError(t, err)

	md := "![a](./a.png)"
	assert.Equal(t, md, RewriteAssets(md, RewriteOptions{Cwd: dir}))
}

func TestRewriteAssets_Images(t *testing.T) {
	opts := RewriteOptions{BaseURL: "https://example.com/"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dot slash stripped", "![img](./assets/screenshot.png)", "![img](https://example.com/assets/screenshot.png)"},
		{"bare relative", "![](logo.svg)", "![](https://example.com/logo.svg)"},
		{"parent path kept", "![x](../x.png)", "![x](https://example.com/../x.png)"},
		{"absolute untouched", "![img](https://example.com/img.png)", "![img](https://example.com/img.png)"},
		{"http untouched", "![img](http://example.com/img.png)", "![img](http://example.com/img.png)"},
		{"data untouched", "![d](data:image/png;base64,AAAA)", "![d](data:image/png;base64,AAAA)"},
		{"links untouched by default", "[doc](./doc.md)", "[doc](./doc.md)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteAssets(tt.in, opts))
		})
	}
}

func TestRewriteAssets_Links(t *testing.T) {
	opts := RewriteOptions{BaseURL: "https://example.com/", RewriteLinks: true}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative rewritten", "[link](./other.md)", "[link](https://example.com/other.md)"},
		{"hash kept", "[link](#section)", "[link](#section)"},
		{"mailto kept", "[email](mailto:test@example.com)", "[email](mailto:test@example.com)"},
		{"absolute kept", "[site](https://other.com)", "[site](https://other.com)"},
		{"empty text is not a link", "[](./x.md)", "[](./x.md)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteAssets(tt.in, opts))
		})
	}
}

func TestRewriteAssets_LinkedBadgeKeepsLinkTarget(t *testing.T) {
	opts := RewriteOptions{BaseURL: "https://b", RewriteLinks: true}
	got := RewriteAssets("[![b](./i.png)](./doc.md)", opts)
	assert.Equal(t, "[![b](https://b/i.png)](./doc.md)", got)
}

func TestRewriteAssets_ImagesNotRewrittenTwice(t *testing.T) {
	opts := RewriteOptions{BaseURL: "/static", RewriteLinks: true}
	got := RewriteAssets("![a](./x.png) and [b](y.md) and ![](data:,x)", opts)
	assert.Equal(t, "![a](/static/x.png) and [b](/static/y.md) and ![](data:,x)", got)
}

func TestRewriteAssets_Deterministic(t *testing.T) {
	opts := RewriteOptions{BaseURL: "https://example.com"}
	md := "![a](a.png) ![b](b.png)"
	assert.Equal(t, RewriteAssets(md, opts), RewriteAssets(md, opts))
}
