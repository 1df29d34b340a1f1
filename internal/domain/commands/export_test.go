package commands

import (
	"context"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

// Process exposes process for testing.
func (it *MowCommand) Process(ctx context.Context, paths []string, preview bool) *entities.ProcessReport {
	return it.process(ctx, paths, preview)
}
