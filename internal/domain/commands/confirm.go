package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

// confirm runs the operator menu until a proceed or abort choice is made.
// It returns true when processing should start.
func (it *MowCommand) confirm(ctx context.Context, opts MowOptions, selection *entities.Selection) (bool, error) {
	question := fmt.Sprintf(
		"About to process %d files! Continue? [%s]",
		len(selection.Paths), entities.ActionKeys,
	)

	for {
		action, err := it.prompt.Ask(question)
		if err != nil {
			return false, fmt.Errorf("failed to read operator input: %w", err)
		}

		switch action {
		case entities.ActionProceed:
			return true, nil
		case entities.ActionAbort, entities.ActionQuit:
			return false, nil
		case entities.ActionListFiles:
			for _, path := range selection.Paths {
				it.prompt.Say(path)
			}
		case entities.ActionShowCommand:
			it.prompt.Say(selection.Command)
		case entities.ActionDebug:
			it.printDebug(opts, selection)
			// preview failures are already logged; the menu stays open
			_ = it.process(ctx, selection.Paths, true)
		default:
			// help and unrecognized input
			it.prompt.Alert(entities.ActionHelpText)
		}
	}
}
