package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mow/internal/domain/commands"
	"github.com/rios0rios0/mow/internal/domain/entities"
)

const (
	flagFiles           = "files"
	flagWildcard        = "wildcard"
	flagRecursive       = "recursive"
	flagForceFind       = "force-find"
	flagForceGit        = "force-git"
	flagNotOnlyModified = "not-only-modified"
	flagListWildcards   = "list-wildcards"
	flagDebug           = "debug"
	flagYes             = "yes"
	flagVerbose         = "verbose"
)

// MowController binds the root command to the mow command.
type MowController struct {
	command  commands.Mow
	defaults entities.Wildcards
}

var _ entities.Controller = (*MowController)(nil)

// NewMowController creates a new MowController.
func NewMowController(command commands.Mow, defaults entities.Wildcards) *MowController {
	return &MowController{command: command, defaults: defaults}
}

// GetBind returns the Cobra command metadata for the mow controller.
func (it *MowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "mow [FILE...]",
		Short: "Remove trailing whitespaces from source files",
		Long: `Remove trailing spaces and tabs from every line of source files.

Files are selected in one of three ways:
  - explicitly, with --files or as arguments
  - from git, listing tracked files (only modified ones unless -m is given);
    used automatically for recursive runs inside a repository, always recursive
  - with a filesystem walk matching the wildcards, optionally recursive

Every flag can also be set with a MOW_ environment variable,
e.g. MOW_RECURSIVE=true or MOW_WILDCARD="*.go *.py".`,
		Example: `  mow -r                      # Process all matching files in the current and all sub-directories
  mow                         # Process all matching files in the current directory
  mow -f README.txt test.cpp  # Process the specified two files
  mow -r                      # Inside a git repository: process modified files only
  mow -r -m                   # Inside a git repository: process all tracked matching files
  mow -r -w '*.pl' -w '*.mmd' # Also process *.pl and *.mmd files`,
	}
}

// AddFlags registers the mow flags on the given Cobra command.
func (it *MowController) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayP(flagFiles, "f", nil, "Specifies files to be processed (repeatable)")
	flags.StringArrayP(flagWildcard, "w", nil,
		"Add an additional wildcard for source files to be processed")
	flags.BoolP(flagRecursive, "r", false, "Process sub-directories too")
	flags.Bool(flagForceFind, false, "Always find files by walking the filesystem")
	flags.Bool(flagForceGit, false, "Always list files from git (recursive only)")
	flags.BoolP(flagNotOnlyModified, "m", false,
		"In git mode, process all tracked files instead of only modified ones")
	flags.BoolP(flagListWildcards, "l", false, "Print the wildcards and exit")
	flags.Bool(flagDebug, false,
		"Print debug information and only preview what would be processed")
	flags.BoolP(flagYes, "y", false, "Do not ask for confirmation")
	flags.BoolP(flagVerbose, "v", false, "Enable verbose output")
	cmd.MarkFlagsMutuallyExclusive(flagForceFind, flagForceGit)
}

// Execute runs the mow command with the parsed flags.
func (it *MowController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := NewSettings(cmd.Flags(), args)
	if err != nil {
		return err
	}
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	wildcards := it.defaults.With(settings.Wildcards...)
	if settings.ListWildcards {
		for _, pattern := range wildcards {
			if _, err = fmt.Fprintln(cmd.OutOrStdout(), pattern); err != nil {
				return err
			}
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return it.command.Execute(ctx, commands.MowOptions{
		Dir: ".",
		Selection: entities.SelectionOptions{
			Files:        settings.Files,
			Recursive:    settings.Recursive,
			ForceFind:    settings.ForceFind,
			ForceGit:     settings.ForceGit,
			OnlyModified: !settings.NotOnlyModified,
		},
		Wildcards: wildcards,
		Debug:     settings.Debug,
		AssumeYes: settings.Yes,
		Arguments: settings.String(),
	})
}
