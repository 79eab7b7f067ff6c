package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRelativeImage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"relative dot path", "![s](./assets/s.png)", true},
		{"bare relative path", "![s](assets/s.png)", true},
		{"empty alt", "![](img.png)", true},
		{"https", "![s](https://example.com/s.png)", false},
		{"http", "![s](http://example.com/s.png)", false},
		{"data uri", "![s](data:image/png;base64,abc123)", false},
		{"plain link is not an image", "[s](./doc.md)", false},
		{"mixed absolute then relative", "![a](https://x/a.png) ![b](b.png)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRelativeImage(tt.text))
		})
	}
}

func TestHasH1(t *testing.T) {
	assert.True(t, HasH1("# Title"))
	assert.True(t, HasH1("intro\n\n#   Title later"))
	assert.False(t, HasH1("## Sub only"))
	assert.False(t, HasH1("#NoSpace"))
	assert.False(t, HasH1("text # not at line start"))
}

func TestHasH1_UnicodeSpace(t *testing.T) {
	assert.True(t, HasH1("#\u00a0Title"), "no-break space")
	assert.True(t, HasH1("#\u3000Title"), "ideographic space")
	assert.False(t, HasH1("#\u00a0"), "space without a title")
}

func TestIsTooShort_Boundary(t *testing.T) {
	assert.True(t, IsTooShort(strings.Repeat("a", MinLength-1)))
	assert.False(t, IsTooShort(strings.Repeat("a", MinLength)))
	assert.True(t, IsTooShort(""))
}

func TestIsTooShort_CountsUTF16Units(t *testing.T) {
	// Each emoji outside the BMP counts as two units.
	assert.False(t, IsTooShort(strings.Repeat("😀", MinLength/2)))
	assert.True(t, IsTooShort(strings.Repeat("😀", MinLength/2-1)))
}

func TestHasDescription(t *testing.T) {
	assert.True(t, HasDescription("# Project\n\nSome description"))
	assert.True(t, HasDescription("badge line\n# Project\n\nText"), "heading need not be the first line")
	assert.True(t, HasDescription("# Project\nsub line\n\nlater text"), "loose match anywhere after the heading")
	assert.False(t, HasDescription("# Project\nNo blank line"))
	assert.False(t, HasDescription("# Project\n\n   \n"))
	assert.False(t, HasDescription("## Only h2\n\ntext"))
	assert.True(t, HasDescription("#\u00a0Project\n\nText"))
	assert.False(t, HasDescription("# Project\n\n\u00a0\u2003"), "only Unicode spaces after the blank line")
}

func TestHasRawHTML(t *testing.T) {
	positives := []string{
		"<div>x</div>",
		"</DIV>",
		"<br/>",
		"<img src=\"a.png\">",
		"<details><summary>More</summary></details>",
		"< p >",
		"<h3 id=\"x\">",
	}
	for _, s := range positives {
		assert.True(t, HasRawHTML(s), s)
	}

	negatives := []string{
		"Pass <path> to the command",
		"Set <number> of workers",
		"<article>",
		"a < b > c",
		"<preview>",
	}
	for _, s := range negatives {
		assert.False(t, HasRawHTML(s), s)
	}
}

func TestHasSpacedURL(t *testing.T) {
	assert.True(t, HasSpacedURL("[a](./my file.md)"))
	assert.True(t, HasSpacedURL("![a](my image.png)"))
	assert.False(t, HasSpacedURL("[a](./file.md)"))
	assert.False(t, HasSpacedURL("[a]( http://example.com )"), "surrounding whitespace only")
	assert.False(t, HasSpacedURL("no links here"))
	assert.True(t, HasSpacedURL("[a](my\u00a0file.md)"), "no-break space")
}

func TestIsAbsoluteAssetTarget(t *testing.T) {
	assert.True(t, IsAbsoluteAssetTarget("https://x"))
	assert.True(t, IsAbsoluteAssetTarget("http://x"))
	assert.True(t, IsAbsoluteAssetTarget("data:image/png;base64,AA"))
	assert.False(t, IsAbsoluteAssetTarget("./x.png"))
	assert.False(t, IsAbsoluteAssetTarget("//cdn.example.com/x.png"))
}

func TestDefaultRules_OrderAndTiers(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 9)

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
		require.NotNil(t, r.Violated, r.Name)
		require.NotEmpty(t, r.Message, r.Name)
	}
	assert.Equal(t, []string{
		"relative-image", "missing-h1",
		"too-short", "no-code-block", "missing-description", "raw-html",
		"missing-install", "missing-usage", "spaced-url",
	}, names)
	assert.Equal(t, TierBasic, rules[0].Tier)
	assert.Equal(t, TierBasic, rules[1].Tier)
	for _, r := range rules[2:] {
		assert.Equal(t, TierStrict, r.Tier, r.Name)
	}
}

func TestDefaultRules_ReturnsCopy(t *testing.T) {
	rules := DefaultRules()
	rules[0].Message = "changed"
	assert.Equal(t, "Relative image URLs detected.", DefaultRules()[0].Message)
}
