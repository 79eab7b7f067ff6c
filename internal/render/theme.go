package render

import "golang.org/x/text/cases"

// Theme names a built-in stylesheet.
type Theme string

const (
	ThemeNPM    Theme = "npm"
	ThemeGitHub Theme = "github"
)

// DefaultTheme is used for empty and unrecognised theme names.
const DefaultTheme = ThemeNPM

// Themes lists the built-in themes, default first.
func Themes() []Theme {
	return []Theme{ThemeNPM, ThemeGitHub}
}

// ResolveTheme maps a user-supplied name to a built-in theme. Matching is
// case-insensitive under Unicode case folding; anything unknown falls back to
// DefaultTheme.
func ResolveTheme(name string) Theme {
	folded := cases.Fold().String(name)
	for _, t := range Themes() {
		if folded == string(t) {
			return t
		}
	}
	return DefaultTheme
}

// Stylesheet returns the CSS embedded in pages rendered with theme.
func Stylesheet(theme Theme) string {
	if theme == ThemeGitHub {
		return githubCSS
	}
	return npmCSS
}

const npmCSS = `
  :root { color-scheme: light dark; }
  body {
    margin: 0;
    font: 16px/1.6 -apple-system,BlinkMacSystemFont,Segoe UI,Helvetica,Arial,sans-serif;
    background: #fff;
    color: #111;
  }
  .wrap { max-width: 960px; margin: 0 auto; padding: 32px 16px; }
  h1 { font-size: 32px; margin-top: 0; }
  h2 { font-size: 24px; margin-top: 32px; }
  h3 { font-size: 20px; margin-top: 24px; }
  pre { background: #f6f8fa; padding: 16px; border-radius: 8px; overflow: auto; }
  code { font-family: ui-monospace,SFMono-Regular,Menlo,monospace; background: #f6f8fa; padding: 2px 6px; border-radius: 4px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #d0d7de; padding: 8px; }
  img { max-width: 100%; }
  a { color: #0969da; text-decoration: none; }
  a:hover { text-decoration: underline; }
  blockquote { border-left: 4px solid #d0d7de; margin: 0; padding-left: 16px; color: #57606a; }
`

const githubCSS = `
  :root { color-scheme: light dark; }
  body { margin: 0; font: 16px/1.6 -apple-system,BlinkMacSystemFont,Segoe UI,Helvetica,Arial,sans-serif; }
  .wrap { max-width: 980px; margin: 0 auto; padding: 32px 16px; }
  pre { padding: 16px; border-radius: 6px; overflow: auto; border: 1px solid rgba(127,127,127,.25); }
  code { font-family: ui-monospace,SFMono-Regular,Menlo,monospace; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid rgba(127,127,127,.25); padding: 8px; }
  img { max-width: 100%; }
  blockquote { margin: 0; padding-left: 16px; border-left: 4px solid rgba(127,127,127,.35); }
`
