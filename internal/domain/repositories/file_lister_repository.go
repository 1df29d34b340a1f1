package repositories

import (
	"context"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

// FileListerRepository abstracts one file-discovery strategy (explicit list,
// git index, filesystem walk). Listing is read-only.
type FileListerRepository interface {
	// Name returns the lister identifier (e.g. "explicit", "git", "find").
	Name() string

	// Supports returns true if the lister serves the given selection mode.
	Supports(mode entities.SelectionMode) bool

	// List produces the ordered candidate paths and the command that describes them.
	List(ctx context.Context, request entities.ListRequest) (*entities.Selection, error)
}

// VersionControlRepository is a FileListerRepository that can also tell
// whether a directory belongs to a repository.
type VersionControlRepository interface {
	FileListerRepository

	// IsRepository returns true if dir or one of its parents holds a repository.
	IsRepository(dir string) bool
}
