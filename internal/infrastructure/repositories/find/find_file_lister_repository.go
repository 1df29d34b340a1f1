package find

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

const gitDirName = ".git"

// FileListerRepository walks the filesystem from the working directory and
// keeps regular files whose name matches any wildcard.
type FileListerRepository struct{}

var _ repositories.FileListerRepository = (*FileListerRepository)(nil)

// NewFileListerRepository creates a filesystem walking lister.
func NewFileListerRepository() *FileListerRepository {
	return &FileListerRepository{}
}

// Name returns the lister identifier.
func (it *FileListerRepository) Name() string {
	return "find"
}

// Supports returns true for both find modes.
func (it *FileListerRepository) Supports(mode entities.SelectionMode) bool {
	return mode == entities.RecursiveFind || mode == entities.NonRecursiveFind
}

// List walks request.Dir in lexical order. Non-recursive listings stay in
// request.Dir itself. Git metadata directories are never entered.
func (it *FileListerRepository) List(ctx context.Context, request entities.ListRequest) (*entities.Selection, error) {
	root := request.Dir
	if root == "" {
		root = "."
	}
	recursive := request.Mode == entities.RecursiveFind

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warnf("[find] Skipping %s: %v", path, walkErr)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if !recursive || entry.Name() == gitDirName {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type().IsRegular() && request.Wildcards.Matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf("[find] Found %d matching file(s) under %s", len(paths), root)
	return &entities.Selection{
		Mode:    request.Mode,
		Paths:   paths,
		Command: findCommand(root, recursive, request.Wildcards),
	}, nil
}

// findCommand renders the equivalent find(1) invocation.
func findCommand(root string, recursive bool, wildcards entities.Wildcards) string {
	args := []string{"find", root, "-type", "f"}
	if !recursive {
		args = append(args, "-maxdepth", "1")
	}

	names := make([]string, 0, len(wildcards))
	for _, pattern := range wildcards.Quoted() {
		names = append(names, "-name "+pattern)
	}
	args = append(args, "(", strings.Join(names, " -o "), ")")
	return entities.CommandLine(args...)
}
