package repository

// Resolve infers the repository of dir from package.json, falling back to the
// git origin remote.
func Resolve(dir string) (Slug, bool) {
	if dir == "" {
		dir = "."
	}
	if slug, ok := FromPackageJSON(dir); ok {
		return slug, true
	}
	return FromGitRemote(dir)
}

// RawBaseURL is a convenience for Resolve followed by Slug.RawBaseURL.
func RawBaseURL(dir, branch string) (string, bool) {
	slug, ok := Resolve(dir)
	if !ok {
		return "", false
	}
	return slug.RawBaseURL(branch), true
}
