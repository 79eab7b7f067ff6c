package repository

import (
	"fmt"
	"regexp"
)

// DefaultBranch is the ref used for raw-content URLs when none is given.
const DefaultBranch = "HEAD"

var githubURLPattern = regexp.MustCompile(`github\.com[:/](.+?)/(.+?)(\.git)?$`)

// Slug identifies a GitHub repository.
type Slug struct {
	Owner string
	Name  string
}

// String returns "owner/name".
func (s Slug) String() string {
	return s.Owner + "/" + s.Name
}

// RawBaseURL returns the raw.githubusercontent.com prefix for files on branch,
// always ending in a slash.
func (s Slug) RawBaseURL(branch string) string {
	if branch == "" {
		branch = DefaultBranch
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/", s.Owner, s.Name, branch)
}

// ParseURL extracts owner and name from any URL or remote spec naming
// github.com, including scp-style (git@github.com:o/r.git) and git+https forms.
func ParseURL(raw string) (Slug, bool) {
	m := githubURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return Slug{}, false
	}
	return Slug{Owner: m[1], Name: m[2]}, true
}
