package repositories

import (
	"io"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

// StripperRepository removes trailing whitespace from files.
type StripperRepository interface {
	// Strip rewrites the file in place. The file is either fully rewritten or
	// left untouched.
	Strip(path string) (entities.StripResult, error)

	// Preview reads the file and writes what Strip would do to sink.
	Preview(path string, sink io.Writer) (entities.StripResult, error)
}
