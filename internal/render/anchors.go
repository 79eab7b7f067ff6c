package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	linkTarget = "_blank"
	linkRel    = "noreferrer noopener"
)

// hardenLinks makes every anchor in fragment open in a new browsing context
// without leaking the referrer. Existing target and rel attributes are
// replaced; everything else is copied through byte for byte.
func hardenLinks(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	b.Grow(len(fragment))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return b.String()
		}

		raw := append([]byte(nil), z.Raw()...)
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			b.Write(raw)
			continue
		}

		tok := z.Token()
		if tok.DataAtom != atom.A {
			b.Write(raw)
			continue
		}

		attrs := make([]html.Attribute, 0, len(tok.Attr)+2)
		for _, a := range tok.Attr {
			if a.Key == "target" || a.Key == "rel" {
				continue
			}
			attrs = append(attrs, a)
		}
		attrs = append(attrs,
			html.Attribute{Key: "target", Val: linkTarget},
			html.Attribute{Key: "rel", Val: linkRel},
		)
		tok.Attr = attrs
		b.WriteString(tok.String())
	}
}
