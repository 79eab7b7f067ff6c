package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PackageJSONFile is the manifest consulted first for repository metadata.
const PackageJSONFile = "package.json"

type packageManifest struct {
	Repository json.RawMessage `json:"repository"`
}

type repositoryObject struct {
	URL string `json:"url"`
}

// FromPackageJSON reads the "repository" field of dir/package.json, which may
// be a plain string or an object with a "url" member. A missing or unreadable
// manifest yields false.
func FromPackageJSON(dir string) (Slug, bool) {
	data, err := os.ReadFile(filepath.Join(dir, PackageJSONFile)) // #nosec G304 -- path is the caller's project dir
	if err != nil {
		return Slug{}, false
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil || len(manifest.Repository) == 0 {
		return Slug{}, false
	}

	var asString string
	if err := json.Unmarshal(manifest.Repository, &asString); err == nil {
		return ParseURL(asString)
	}

	var asObject repositoryObject
	if err := json.Unmarshal(manifest.Repository, &asObject); err == nil && asObject.URL != "" {
		return ParseURL(asObject.URL)
	}

	return Slug{}, false
}
