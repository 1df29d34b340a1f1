package entities

import (
	"strings"
	"unicode/utf8"
)

// Action is an operator choice in the confirmation prompt.
type Action int

const (
	ActionUnknown Action = iota
	ActionProceed
	ActionAbort
	ActionListFiles
	ActionShowCommand
	ActionDebug
	ActionQuit
	ActionHelp
)

// ActionKeys lists the accepted keys in the order they are shown to the operator.
const ActionKeys = "y,n,f,c,d,q,?"

// ParseAction maps the first character of the operator input to an Action.
func ParseAction(input string) Action {
	input = strings.TrimSpace(input)
	if input == "" {
		return ActionUnknown
	}
	key, _ := utf8.DecodeRuneInString(input)
	switch key {
	case 'y':
		return ActionProceed
	case 'n':
		return ActionAbort
	case 'f':
		return ActionListFiles
	case 'c':
		return ActionShowCommand
	case 'd':
		return ActionDebug
	case 'q':
		return ActionQuit
	case '?':
		return ActionHelp
	default:
		return ActionUnknown
	}
}

// ActionHelpText is the text printed for '?' and for unrecognized input.
const ActionHelpText = `y - Start processing files
n - Abort execution, equivalent to "q"
f - List files to be processed
c - Show command used to generate the file list
d - Print debug information
q - Abort execution
? - Print help`
