//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/infrastructure/repositories/git"
)

// initRepository creates a repository with the given files committed.
func initRepository(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for _, name := range files {
		writeFile(t, root, name, "committed \n")
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}

	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "mow", Email: "mow@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return root
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGitFileListerRepository(t *testing.T) {
	t.Parallel()

	t.Run("should list all tracked matching files", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "a.c", "lib/b.java", "docs/readme.md")
		writeFile(t, root, "untracked.c", "new\n")
		lister := git.NewFileListerRepository()

		// when
		selection, err := lister.List(context.Background(), entities.ListRequest{
			Dir:       root,
			Mode:      entities.VersionControlAll,
			Wildcards: entities.DefaultWildcards(),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.c"),
			filepath.Join(root, "lib", "b.java"),
		}, selection.Paths)
		assert.Equal(t, "git ls-files -- '*.java' '*.rb' '*.php' '*.js' '*.scala' '*.c' '*.cpp'", selection.Command)
	})

	t.Run("should keep only modified files when requested", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "a.c", "b.c", "c.c")
		writeFile(t, root, "b.c", "changed \n")
		require.NoError(t, os.Remove(filepath.Join(root, "c.c")))
		lister := git.NewFileListerRepository()

		// when
		selection, err := lister.List(context.Background(), entities.ListRequest{
			Dir:       root,
			Mode:      entities.VersionControlModified,
			Wildcards: entities.DefaultWildcards(),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "b.c")}, selection.Paths)
		assert.Contains(t, selection.Command, "--modified")
	})

	t.Run("should list a conflicted file once", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "a.c", "b.c")
		repo, err := gogit.PlainOpen(root)
		require.NoError(t, err)
		idx, err := repo.Storer.Index()
		require.NoError(t, err)
		var entries []*index.Entry
		for _, entry := range idx.Entries {
			if entry.Name != "a.c" {
				entries = append(entries, entry)
				continue
			}
			for _, stage := range []index.Stage{index.AncestorMode, index.OurMode, index.TheirMode} {
				staged := *entry
				staged.Stage = stage
				entries = append(entries, &staged)
			}
		}
		idx.Entries = entries
		require.NoError(t, repo.Storer.SetIndex(idx))
		lister := git.NewFileListerRepository()

		// when
		selection, err := lister.List(context.Background(), entities.ListRequest{
			Dir:       root,
			Mode:      entities.VersionControlAll,
			Wildcards: entities.Wildcards{"*.c"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.c"),
			filepath.Join(root, "b.c"),
		}, selection.Paths)
	})

	t.Run("should only list files under the working directory", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "top.c", "sub/inner.c", "sub/deep/leaf.c", "subway/other.c")
		lister := git.NewFileListerRepository()
		dir := filepath.Join(root, "sub")

		// when
		selection, err := lister.List(context.Background(), entities.ListRequest{
			Dir:       dir,
			Mode:      entities.VersionControlAll,
			Wildcards: entities.Wildcards{"*.c"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "deep", "leaf.c"),
			filepath.Join(dir, "inner.c"),
		}, selection.Paths)
	})

	t.Run("should fail with a precondition error outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		lister := git.NewFileListerRepository()

		// when
		selection, err := lister.List(context.Background(), entities.ListRequest{
			Dir:       t.TempDir(),
			Mode:      entities.VersionControlModified,
			Wildcards: entities.DefaultWildcards(),
		})

		// then
		require.Error(t, err)
		assert.Nil(t, selection)
		assert.ErrorIs(t, err, entities.ErrNotRepository)
	})
}

func TestGitFileListerRepositoryIsRepository(t *testing.T) {
	t.Parallel()

	t.Run("should detect a repository from a sub-directory", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "sub/a.c")
		lister := git.NewFileListerRepository()

		// when
		detected := lister.IsRepository(filepath.Join(root, "sub"))

		// then
		assert.True(t, detected)
	})

	t.Run("should not detect a repository in a plain directory", func(t *testing.T) {
		t.Parallel()

		// given
		lister := git.NewFileListerRepository()

		// when
		detected := lister.IsRepository(t.TempDir())

		// then
		assert.False(t, detected)
	})

	t.Run("should serve only version-control modes", func(t *testing.T) {
		t.Parallel()

		// given
		lister := git.NewFileListerRepository()

		// when / then
		assert.Equal(t, "git", lister.Name())
		assert.True(t, lister.Supports(entities.VersionControlModified))
		assert.True(t, lister.Supports(entities.VersionControlAll))
		assert.False(t, lister.Supports(entities.RecursiveFind))
	})
}
