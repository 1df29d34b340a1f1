//go:build unit

package controllers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/infrastructure/controllers"
	"github.com/rios0rios0/mow/test/domain/commanddoubles"
)

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	//nolint:exhaustruct // flag holder only
	cmd := &cobra.Command{Use: "mow"}
	controllers.NewMowController(&commanddoubles.StubMowCommand{}, entities.DefaultWildcards()).AddFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd.Flags()
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should keep explicit files exactly as given", func(t *testing.T) {
		t.Parallel()

		// given
		flags := parsedFlags(t, "-f", "a,b.c", "-f", " lead.c")

		// when
		settings, err := controllers.NewSettings(flags, []string{"c.c"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a,b.c", " lead.c", "c.c"}, settings.Files)
	})

	t.Run("should drop blank wildcard entries", func(t *testing.T) {
		t.Parallel()

		// given
		flags := parsedFlags(t, "-w", " ", "-w", "*.go")

		// when
		settings, err := controllers.NewSettings(flags, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"*.go"}, settings.Wildcards)
	})

	t.Run("should read boolean switches", func(t *testing.T) {
		t.Parallel()

		// given
		flags := parsedFlags(t, "-r", "--force-find", "-l", "-v")

		// when
		settings, err := controllers.NewSettings(flags, nil)

		// then
		require.NoError(t, err)
		assert.True(t, settings.Recursive)
		assert.True(t, settings.ForceFind)
		assert.True(t, settings.ListWildcards)
		assert.True(t, settings.Verbose)
		assert.False(t, settings.ForceGit)
		assert.Contains(t, settings.String(), "Recursive:true")
	})
}
