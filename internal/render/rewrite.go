package render

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/readme-preview/internal/repository"
)

// RewriteOptions controls how relative asset references are made absolute.
type RewriteOptions struct {
	// Cwd is the project directory consulted for repository metadata.
	Cwd string
	// Branch is the ref used in inferred raw-content URLs.
	Branch string
	// BaseURL overrides inference when non-empty.
	BaseURL string
	// RewriteLinks extends rewriting from images to plain links.
	RewriteLinks bool
}

var (
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

var (
	imageAbsolutePrefixes = []string{"http://", "https://", "data:"}
	linkAbsolutePrefixes  = []string{"http://", "https://", "mailto:", "#"}
)

// EffectiveBase returns the URL prefix relative targets are joined to. An
// explicit BaseURL wins and is given a trailing slash; otherwise the
// raw-content URL of the repository found in Cwd is used.
func EffectiveBase(opts RewriteOptions) (string, bool) {
	if opts.BaseURL != "" {
		return ensureSlash(opts.BaseURL), true
	}
	cwd := opts.Cwd
	if cwd == "" {
		cwd = "."
	}
	return repository.RawBaseURL(cwd, opts.Branch)
}

// RewriteAssets prefixes relative image targets, and optionally relative link
// targets, with the effective base. Without a base md is returned unchanged.
func RewriteAssets(md string, opts RewriteOptions) string {
	base, ok := EffectiveBase(opts)
	if !ok {
		return md
	}

	md = replaceTargets(md, imagePattern, func(_ string, target string) (string, bool) {
		if hasAnyPrefix(target, imageAbsolutePrefixes) {
			return "", false
		}
		return base + strings.TrimPrefix(target, "./"), true
	})

	if !opts.RewriteLinks {
		return md
	}

	// A linked image such as [![b](i.png)](doc.md) matches linkPattern with the
	// image as its target, so the outer link target is left as written.
	return replaceTargets(md, linkPattern, func(preceding string, target string) (string, bool) {
		// Images were handled above.
		if strings.HasSuffix(preceding, "!") {
			return "", false
		}
		if hasAnyPrefix(target, linkAbsolutePrefixes) || strings.HasPrefix(target, base) {
			return "", false
		}
		return base + strings.TrimPrefix(target, "./"), true
	})
}

// replaceTargets rewrites the second capture group (the target) of every
// match of re. fn receives the text before the match and the target, and
// returns the replacement target or false to keep the match as is.
func replaceTargets(s string, re *regexp.Regexp, fn func(preceding, target string) (string, bool)) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		targetStart, targetEnd := m[4], m[5]
		replacement, ok := fn(s[:m[0]], s[targetStart:targetEnd])
		if !ok {
			continue
		}
		b.WriteString(s[last:targetStart])
		b.WriteString(replacement)
		last = targetEnd
	}
	b.WriteString(s[last:])
	return b.String()
}

func ensureSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
