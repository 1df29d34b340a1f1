//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

func TestResolveMode(t *testing.T) {
	t.Parallel()

	t.Run("should prefer explicit files over every other flag", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectionOptions{Files: []string{"a.c"}, ForceGit: true, Recursive: true}

		// when
		mode, err := entities.ResolveMode(opts, true)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ExplicitFiles, mode)
	})

	t.Run("should use find mode when forced even inside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectionOptions{ForceFind: true, Recursive: true}

		// when
		mode, err := entities.ResolveMode(opts, true)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RecursiveFind, mode)
	})

	t.Run("should fail forced git mode outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectionOptions{ForceGit: true, Recursive: true, OnlyModified: true}

		// when
		_, err := entities.ResolveMode(opts, false)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNotRepository)
		var precondition *entities.PreconditionError
		assert.ErrorAs(t, err, &precondition)
	})

	t.Run("should fail forced git mode without recursion", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectionOptions{ForceGit: true}

		// when
		_, err := entities.ResolveMode(opts, true)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnsupported)
	})

	t.Run("should pick git modes by the only-modified flag", func(t *testing.T) {
		t.Parallel()

		// when
		modified, errModified := entities.ResolveMode(
			entities.SelectionOptions{ForceGit: true, Recursive: true, OnlyModified: true}, true)
		all, errAll := entities.ResolveMode(
			entities.SelectionOptions{ForceGit: true, Recursive: true}, true)

		// then
		require.NoError(t, errModified)
		require.NoError(t, errAll)
		assert.Equal(t, entities.VersionControlModified, modified)
		assert.Equal(t, entities.VersionControlAll, all)
	})

	t.Run("should use git mode for recursive runs inside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectionOptions{Recursive: true, OnlyModified: true}

		// when
		mode, err := entities.ResolveMode(opts, true)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VersionControlModified, mode)
		assert.True(t, mode.IsVersionControl())
	})

	t.Run("should fall back to non-recursive find inside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		opts := entities.SelectionOptions{OnlyModified: true}

		// when
		mode, err := entities.ResolveMode(opts, true)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.NonRecursiveFind, mode)
	})

	t.Run("should use find mode outside a repository", func(t *testing.T) {
		t.Parallel()

		// when
		recursive, errRecursive := entities.ResolveMode(entities.SelectionOptions{Recursive: true}, false)
		flat, errFlat := entities.ResolveMode(entities.SelectionOptions{}, false)

		// then
		require.NoError(t, errRecursive)
		require.NoError(t, errFlat)
		assert.Equal(t, entities.RecursiveFind, recursive)
		assert.Equal(t, entities.NonRecursiveFind, flat)
	})
}

func TestSelectionModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "explicit", entities.ExplicitFiles.String())
	assert.Equal(t, "git-modified", entities.VersionControlModified.String())
	assert.Equal(t, "git-all", entities.VersionControlAll.String())
	assert.Equal(t, "find-recursive", entities.RecursiveFind.String())
	assert.Equal(t, "find", entities.NonRecursiveFind.String())
	assert.Equal(t, "mode(42)", entities.SelectionMode(42).String())
}
