//go:build unit

package entities_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

func TestProcessReport(t *testing.T) {
	t.Parallel()

	t.Run("should return nil error when every file succeeded", func(t *testing.T) {
		t.Parallel()

		// given
		report := &entities.ProcessReport{}
		report.AddResult(entities.StripResult{Path: "a.c", LinesChanged: 2})
		report.AddResult(entities.StripResult{Path: "b.c", LinesChanged: 3})

		// when
		err := report.Err()

		// then
		require.NoError(t, err)
		assert.Equal(t, 5, report.LinesChanged())
	})

	t.Run("should combine every per-file failure", func(t *testing.T) {
		t.Parallel()

		// given
		report := &entities.ProcessReport{}
		report.AddFailure("missing.c", os.ErrNotExist)
		report.AddResult(entities.StripResult{Path: "ok.c"})
		report.AddFailure("locked.c", os.ErrPermission)

		// when
		err := report.Err()

		// then
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 2)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorIs(t, err, os.ErrPermission)

		var fileErr *entities.FileError
		require.True(t, errors.As(err, &fileErr))
		assert.Equal(t, "missing.c", fileErr.Path)
		assert.Contains(t, err.Error(), "locked.c")
	})
}
