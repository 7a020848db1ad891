package vcs

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
)

// DefaultRemote is the remote whose URL identifies the settings repository.
const DefaultRemote = "origin"

// ErrNoRemote is returned when the repository has no usable remote URL.
var ErrNoRemote = errors.New("repository has no remote url")

// DetectSettingsRoot opens the repository containing dir and returns a VCS root
// for it, identified under rootProjectID. The branch is taken from HEAD and is
// empty for a detached HEAD.
func DetectSettingsRoot(dir string, rootProjectID dsl.ID) (*dsl.VCSRoot, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, serrors.VCSDetectError(dir, err)
	}

	url, err := remoteURL(repo, DefaultRemote)
	if err != nil {
		return nil, serrors.VCSDetectError(dir, err)
	}

	branch, err := headBranch(repo)
	if err != nil {
		return nil, serrors.VCSDetectError(dir, err)
	}

	root := &dsl.VCSRoot{
		ID:     dsl.ToID("Settings", string(rootProjectID)),
		Name:   RepositoryName(url),
		URL:    url,
		Branch: branch,
	}
	slog.Debug("Detected settings repository", logfields.URL(url), logfields.Branch(branch), logfields.Path(dir))
	return root, nil
}

func remoteURL(repo *git.Repository, name string) (string, error) {
	remote, err := repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", ErrNoRemote
	}
	return urls[0], nil
}

// headBranch resolves HEAD symbolically so freshly initialized repositories
// without commits still report their branch.
func headBranch(repo *git.Repository) (string, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short(), nil
	}
	return "", nil
}

// RepositoryName extracts the repository name from a remote URL,
// e.g. "git@host:org/settings.git" -> "settings".
func RepositoryName(url string) string {
	u := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if i := strings.LastIndexAny(u, "/:"); i >= 0 {
		u = u[i+1:]
	}
	return path.Base(u)
}
