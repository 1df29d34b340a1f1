package explicit

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

// FileListerRepository returns the operator-supplied paths unchanged.
type FileListerRepository struct{}

var _ repositories.FileListerRepository = (*FileListerRepository)(nil)

// NewFileListerRepository creates an explicit-list lister.
func NewFileListerRepository() *FileListerRepository {
	return &FileListerRepository{}
}

// Name returns the lister identifier.
func (it *FileListerRepository) Name() string {
	return "explicit"
}

// Supports returns true only for entities.ExplicitFiles.
func (it *FileListerRepository) Supports(mode entities.SelectionMode) bool {
	return mode == entities.ExplicitFiles
}

// List returns the requested files in the given order. Wildcards are ignored
// and existence is not checked; missing files fail later, one by one.
func (it *FileListerRepository) List(_ context.Context, request entities.ListRequest) (*entities.Selection, error) {
	paths := make([]string, len(request.Files))
	copy(paths, request.Files)
	logger.Debugf("[explicit] Using %d file(s) given on the command line", len(paths))

	return &entities.Selection{
		Mode:    entities.ExplicitFiles,
		Paths:   paths,
		Command: entities.CommandLine(append([]string{"echo"}, paths...)...),
	}, nil
}
