//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"io"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

// StubStripperRepository is a stub implementation of repositories.StripperRepository.
type StubStripperRepository struct {
	// Errors maps a path to the error Strip and Preview return for it.
	Errors map[string]error
	// Changed maps a path to the number of lines reported as stripped.
	Changed map[string]int

	// spy fields
	Stripped  []string
	Previewed []string
}

var _ repositories.StripperRepository = (*StubStripperRepository)(nil)

func (s *StubStripperRepository) Strip(path string) (entities.StripResult, error) {
	s.Stripped = append(s.Stripped, path)
	if err := s.Errors[path]; err != nil {
		return entities.StripResult{Path: path}, err
	}
	return entities.StripResult{Path: path, LinesChanged: s.Changed[path]}, nil
}

func (s *StubStripperRepository) Preview(path string, sink io.Writer) (entities.StripResult, error) {
	s.Previewed = append(s.Previewed, path)
	if err := s.Errors[path]; err != nil {
		return entities.StripResult{Path: path}, err
	}
	_, _ = fmt.Fprintf(sink, "preview %s\n", path)
	return entities.StripResult{Path: path, LinesChanged: s.Changed[path]}, nil
}
