package repositories

import (
	"io"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

// PromptRepository is the operator console used by the confirmation loop.
type PromptRepository interface {
	// Ask shows the question and reads the operator's choice. End of input
	// is reported as entities.ActionAbort.
	Ask(question string) (entities.Action, error)

	// Say prints a plain line.
	Say(text string)

	// Alert prints a highlighted block, used for help text.
	Alert(text string)

	// Writer is the plain output stream, also used as the preview sink.
	Writer() io.Writer
}
