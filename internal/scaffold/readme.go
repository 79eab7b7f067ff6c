package scaffold

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/readme-preview/internal/repository"
)

const (
	// ReadmePath is the README the scaffold patches or creates.
	ReadmePath = "README.md"
	// BadgesMarker marks a README that was already patched.
	BadgesMarker = "## Badges"
)

// placeholderSlug is used in badge URLs when the repository is unknown.
var placeholderSlug = repository.Slug{Owner: "YOUR_USERNAME", Name: "YOUR_REPO"}

const defaultReadme = "# readme-preview\n" +
	"\n" +
	"Preview how your README renders on npm and GitHub before publishing.\n" +
	"\n" +
	"## Install\n" +
	"\n" +
	"```bash\n" +
	"npx readme-preview\n" +
	"```\n" +
	"\n" +
	"## Usage\n" +
	"\n" +
	"```bash\n" +
	"npx readme-preview\n" +
	"npx readme-preview check --strict\n" +
	"```\n"

// patchBlock returns the badges, screenshot and quick start sections
// appended to a README.
func patchBlock(slug repository.Slug) string {
	lines := []string{
		"",
		"---",
		"",
		BadgesMarker,
		"",
		"![npm](https://img.shields.io/npm/v/readme-preview)",
		"![downloads](https://img.shields.io/npm/dm/readme-preview)",
		"![license](https://img.shields.io/npm/l/readme-preview)",
		fmt.Sprintf("![ci](https://github.com/%s/%s/actions/workflows/readme-preview.yml/badge.svg)", slug.Owner, slug.Name),
		"",
		"---",
		"",
		"## Screenshot",
		"",
		"Add a screenshot at `./" + ScreenshotPath + "` (relative images will be rewritten in preview):",
		"",
		"![Preview screenshot](./" + ScreenshotPath + ")",
		"",
		"---",
		"",
		"## Quick Start",
		"",
		"```bash",
		"npx readme-preview",
		"```",
		"",
		"CI check:",
		"",
		"```bash",
		"npx readme-preview check --strict",
		"```",
		"",
	}
	return strings.Join(lines, "\n")
}

// PatchReadme appends the scaffold sections to readme unless it already has
// a badges section. It reports whether anything changed.
func PatchReadme(readme string, slug repository.Slug) (string, bool) {
	if strings.Contains(readme, BadgesMarker) {
		return readme, false
	}
	return strings.TrimRight(readme, " \t\r\n") + "\n" + patchBlock(slug), true
}
