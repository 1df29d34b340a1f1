package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

// FileListerRepository lists tracked files from the git index of the
// repository that contains the working directory.
type FileListerRepository struct{}

var _ repositories.VersionControlRepository = (*FileListerRepository)(nil)

// NewFileListerRepository creates a git index lister.
func NewFileListerRepository() *FileListerRepository {
	return &FileListerRepository{}
}

// Name returns the lister identifier.
func (it *FileListerRepository) Name() string {
	return "git"
}

// Supports returns true for both version-control modes.
func (it *FileListerRepository) Supports(mode entities.SelectionMode) bool {
	return mode.IsVersionControl()
}

// IsRepository returns true if dir or one of its parents holds a .git directory.
func (it *FileListerRepository) IsRepository(dir string) bool {
	_, err := openRepository(dir)
	return err == nil
}

// List enumerates index entries located under request.Dir whose name matches
// a wildcard. In entities.VersionControlModified mode only entries whose
// worktree content differs from the index are kept. Paths are returned
// relative to request.Dir, in index order.
func (it *FileListerRepository) List(ctx context.Context, request entities.ListRequest) (*entities.Selection, error) {
	dir := request.Dir
	if dir == "" {
		dir = "."
	}

	repo, err := openRepository(dir)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, &entities.PreconditionError{Err: entities.ErrNotRepository}
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	onlyModified := request.Mode == entities.VersionControlModified
	var status gogit.Status
	if onlyModified {
		if status, err = worktree.Status(); err != nil {
			return nil, fmt.Errorf("failed to compute worktree status: %w", err)
		}
	}

	root, err := canonical(worktree.Filesystem.Root())
	if err != nil {
		return nil, err
	}
	base, err := canonical(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	previous := ""
	for i, entry := range idx.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// conflicted paths carry one entry per merge stage
		if i > 0 && entry.Name == previous {
			continue
		}
		previous = entry.Name
		if !request.Wildcards.Matches(entry.Name) {
			continue
		}
		if onlyModified && !isModified(status, entry.Name) {
			continue
		}

		rel, relErr := filepath.Rel(base, filepath.Join(root, filepath.FromSlash(entry.Name)))
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		paths = append(paths, filepath.Join(dir, rel))
	}

	logger.Debugf("[git] Found %d matching file(s) in %s (only modified: %v)", len(paths), root, onlyModified)
	return &entities.Selection{
		Mode:    request.Mode,
		Paths:   paths,
		Command: lsFilesCommand(onlyModified, request.Wildcards),
	}, nil
}

// openRepository opens the repository containing dir, searching parents.
func openRepository(dir string) (*gogit.Repository, error) {
	//nolint:exhaustruct // only parent detection is needed
	return gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
}

// isModified reports whether the worktree copy of a tracked file differs
// from the index. Deleted files are excluded since they cannot be rewritten.
func isModified(status gogit.Status, name string) bool {
	fileStatus, ok := status[name]
	return ok && fileStatus.Worktree == gogit.Modified
}

// canonical resolves dir to an absolute path without symlinks so that
// worktree and working directory paths can be compared.
func canonical(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", dir, err)
	}
	return resolved, nil
}

// lsFilesCommand renders the equivalent git ls-files invocation.
func lsFilesCommand(onlyModified bool, wildcards entities.Wildcards) string {
	args := []string{"git", "ls-files"}
	if onlyModified {
		args = append(args, "--modified")
	}
	args = append(args, "--")
	args = append(args, wildcards.Quoted()...)
	return entities.CommandLine(args...)
}
