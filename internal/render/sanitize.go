package render

import "github.com/microcosm-cc/bluemonday"

// allowedElements is the conservative block and inline set of a typical
// README host, plus images and tables.
var allowedElements = []string{
	"address", "article", "aside", "footer", "header",
	"h1", "h2", "h3", "h4", "h5", "h6", "hgroup", "main", "nav", "section",
	"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure", "hr", "li",
	"ol", "p", "pre", "ul",
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn", "em",
	"i", "kbd", "mark", "q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp",
	"small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr",
	"caption", "col", "colgroup",
	"img", "table", "thead", "tbody", "tfoot", "tr", "th", "td",
}

// NewPolicy returns the sanitization policy applied to converted markdown.
// Elements outside the allow list are unwrapped; script and style content is
// dropped entirely.
func NewPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedElements...)

	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowAttrs("id").Globally()

	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https", "ftp", "mailto", "tel")
	p.AllowRelativeURLs(true)

	return p
}
