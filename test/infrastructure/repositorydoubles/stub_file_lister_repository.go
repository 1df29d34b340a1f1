//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

// StubFileListerRepository is a stub implementation of
// repositories.VersionControlRepository, usable as a plain lister too.
type StubFileListerRepository struct {
	ListerName   string
	Modes        []entities.SelectionMode
	Selection    *entities.Selection
	ListErr      error
	InRepository bool

	// spy fields
	ListCallCount   int
	LastRequest     entities.ListRequest
	IsRepoCallCount int
}

var _ repositories.VersionControlRepository = (*StubFileListerRepository)(nil)

func (s *StubFileListerRepository) Name() string {
	if s.ListerName == "" {
		return "stub"
	}
	return s.ListerName
}

func (s *StubFileListerRepository) Supports(mode entities.SelectionMode) bool {
	for _, m := range s.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (s *StubFileListerRepository) List(
	_ context.Context,
	request entities.ListRequest,
) (*entities.Selection, error) {
	s.ListCallCount++
	s.LastRequest = request
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if s.Selection == nil {
		return &entities.Selection{Mode: request.Mode}, nil
	}
	return s.Selection, nil
}

func (s *StubFileListerRepository) IsRepository(_ string) bool {
	s.IsRepoCallCount++
	return s.InRepository
}
