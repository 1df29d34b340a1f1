//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mow/internal/domain/commands"
)

// StubMowCommand is a stub implementation of commands.Mow.
type StubMowCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.MowOptions
}

var _ commands.Mow = (*StubMowCommand)(nil)

func (s *StubMowCommand) Execute(
	_ context.Context,
	opts commands.MowOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
