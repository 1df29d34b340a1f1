//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/mow/internal/domain/entities"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	cases := map[string]entities.Action{
		"y":     entities.ActionProceed,
		"yes\n": entities.ActionProceed,
		"n":     entities.ActionAbort,
		"f":     entities.ActionListFiles,
		"c":     entities.ActionShowCommand,
		"d":     entities.ActionDebug,
		"q":     entities.ActionQuit,
		"?":     entities.ActionHelp,
		"  y  ": entities.ActionProceed,
		"Y":     entities.ActionUnknown,
		"x":     entities.ActionUnknown,
		"":      entities.ActionUnknown,
		"\n":    entities.ActionUnknown,
	}

	for input, expected := range cases {
		t.Run("should parse "+input, func(t *testing.T) {
			t.Parallel()

			// when
			action := entities.ParseAction(input)

			// then
			assert.Equal(t, expected, action)
		})
	}
}
