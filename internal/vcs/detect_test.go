package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
)

func initRepo(t *testing.T, remote string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	require.NoError(t, err)
	if remote != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: DefaultRemote, URLs: []string{remote}})
		require.NoError(t, err)
	}
	return dir
}

func TestDetectSettingsRoot(t *testing.T) {
	dir := initRepo(t, "https://git.example.com/ci/settings.git")
	nested := filepath.Join(dir, ".teamcity", "settings")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := DetectSettingsRoot(nested, "MyProject")
	require.NoError(t, err)
	assert.Equal(t, dsl.ID("MyProject_Settings"), root.ID)
	assert.Equal(t, "settings", root.Name)
	assert.Equal(t, "https://git.example.com/ci/settings.git", root.URL)
	assert.Equal(t, "main", root.Branch)
}

func TestDetectSettingsRoot_NoRemote(t *testing.T) {
	dir := initRepo(t, "")
	_, err := DetectSettingsRoot(dir, "MyProject")
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryVCS))
}

func TestDetectSettingsRoot_NotARepository(t *testing.T) {
	_, err := DetectSettingsRoot(t.TempDir(), "MyProject")
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryVCS))
}

func TestRepositoryName(t *testing.T) {
	tests := map[string]string{
		"https://github.com/gradle/test-retry-gradle-plugin.git": "test-retry-gradle-plugin",
		"git@github.com:org/settings.git":                        "settings",
		"git@host:settings":                                      "settings",
		"https://example.com/repo/":                              "repo",
		"file:///srv/git/ci":                                     "ci",
	}
	for in, want := range tests {
		assert.Equal(t, want, RepositoryName(in), in)
	}
}
