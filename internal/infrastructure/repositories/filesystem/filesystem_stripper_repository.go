package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

const tempPattern = ".mow-*"

// ErrNotRegularFile is returned when a path does not point to a regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// StripperRepository rewrites files on the local filesystem.
type StripperRepository struct{}

var _ repositories.StripperRepository = (*StripperRepository)(nil)

// NewStripperRepository creates a filesystem stripper.
func NewStripperRepository() *StripperRepository {
	return &StripperRepository{}
}

// Strip removes trailing whitespace from every line of path. The new content
// is written to a temporary file next to the original and renamed over it,
// so an interrupted run never leaves a half-written file. Files that need no
// change are not rewritten.
func (it *StripperRepository) Strip(path string) (entities.StripResult, error) {
	result := entities.StripResult{Path: path}

	// symlinks are followed so the link itself survives the rename
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return result, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return result, err
	}
	if !info.Mode().IsRegular() {
		return result, ErrNotRegularFile
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return result, err
	}

	stripped, changed := entities.StripTrailingWhitespace(content)
	if changed == 0 {
		logger.Debugf("[filesystem] %s: nothing to strip", path)
		return result, nil
	}

	if err = replaceFile(target, stripped, info.Mode().Perm()); err != nil {
		return result, err
	}

	result.LinesChanged = changed
	logger.Debugf("[filesystem] %s: stripped %d line(s)", path, changed)
	return result, nil
}

// Preview reports how many lines of path would be stripped without writing.
func (it *StripperRepository) Preview(path string, sink io.Writer) (entities.StripResult, error) {
	result := entities.StripResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		return result, err
	}

	_, result.LinesChanged = entities.StripTrailingWhitespace(content)
	if _, err = fmt.Fprintf(sink, "%s: %d line(s) would be stripped\n", path, result.LinesChanged); err != nil {
		return result, fmt.Errorf("failed to write preview: %w", err)
	}
	return result, nil
}

// replaceFile atomically replaces path with content, keeping perm.
func replaceFile(path string, content []byte, perm os.FileMode) error {
	temp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempName := temp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tempName)
		}
	}()

	if _, err = temp.Write(content); err != nil {
		_ = temp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err = temp.Sync(); err != nil {
		_ = temp.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err = temp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = os.Chmod(tempName, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tempName, path); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}

	committed = true
	return nil
}
