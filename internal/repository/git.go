package repository

import (
	"log/slog"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/readme-preview/internal/logfields"
)

// OriginRemote is the remote whose URL identifies the repository.
const OriginRemote = "origin"

// FromGitRemote opens the git checkout containing dir (searching parent
// directories) and parses the first URL of its origin remote.
func FromGitRemote(dir string) (Slug, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("No git repository found", logfields.Path(dir), logfields.Error(err))
		return Slug{}, false
	}

	remote, err := repo.Remote(OriginRemote)
	if err != nil {
		slog.Debug("Git repository has no origin remote", logfields.Path(dir), logfields.Error(err))
		return Slug{}, false
	}

	for _, url := range remote.Config().URLs {
		if slug, ok := ParseURL(url); ok {
			return slug, true
		}
	}
	return Slug{}, false
}
