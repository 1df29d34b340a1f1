package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/mow/internal/infrastructure/repositories"
)

// Mow is the interface for the whitespace stripping command.
type Mow interface {
	Execute(ctx context.Context, opts MowOptions) error
}

// MowOptions holds runtime options for a single run.
type MowOptions struct {
	Dir       string
	Selection entities.SelectionOptions
	Wildcards entities.Wildcards
	Debug     bool
	AssumeYes bool
	// Arguments is the rendering of the parsed flags shown in debug output.
	Arguments string
}

// MowCommand selects files, asks the operator for confirmation, and strips
// trailing whitespace from every approved file.
type MowCommand struct {
	listers  *infraRepos.ListerRegistry
	vcs      repositories.VersionControlRepository
	stripper repositories.StripperRepository
	prompt   repositories.PromptRepository
}

// NewMowCommand creates a new MowCommand.
func NewMowCommand(
	listers *infraRepos.ListerRegistry,
	vcs repositories.VersionControlRepository,
	stripper repositories.StripperRepository,
	prompt repositories.PromptRepository,
) *MowCommand {
	return &MowCommand{
		listers:  listers,
		vcs:      vcs,
		stripper: stripper,
		prompt:   prompt,
	}
}

// Execute runs discovery, confirmation and processing. Precondition and
// discovery errors are returned before any file is touched; per-file
// failures do not stop the run and are returned combined at the end.
func (it *MowCommand) Execute(ctx context.Context, opts MowOptions) error {
	if err := opts.Wildcards.Validate(); err != nil {
		return err
	}

	selection, err := it.selectFiles(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Debug {
		it.printDebug(opts, selection)
	}

	if len(selection.Paths) == 0 {
		it.prompt.Say("No files to process.")
		return nil
	}

	if !opts.AssumeYes {
		proceed, confirmErr := it.confirm(ctx, opts, selection)
		if confirmErr != nil {
			return confirmErr
		}
		if !proceed {
			it.prompt.Say("Bye!")
			return nil
		}
	}

	report := it.process(ctx, selection.Paths, opts.Debug)
	return report.Err()
}

// selectFiles resolves the selection mode and runs the matching lister.
func (it *MowCommand) selectFiles(ctx context.Context, opts MowOptions) (*entities.Selection, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	// Detecting a repository only matters when git mode is still possible
	inRepository := false
	if len(opts.Selection.Files) == 0 && !opts.Selection.ForceFind {
		inRepository = it.vcs.IsRepository(dir)
	}

	mode, err := entities.ResolveMode(opts.Selection, inRepository)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Selection mode: %s (in repository: %v)", mode, inRepository)

	lister, err := it.listers.Get(mode)
	if err != nil {
		return nil, err
	}

	selection, err := lister.List(ctx, entities.ListRequest{
		Dir:       dir,
		Mode:      mode,
		Wildcards: opts.Wildcards,
		Files:     opts.Selection.Files,
	})
	if err != nil {
		var precondition *entities.PreconditionError
		if errors.As(err, &precondition) {
			return nil, err
		}
		return nil, &entities.DiscoveryError{Lister: lister.Name(), Err: err}
	}

	logger.Debugf("Listed %d file(s) with: %s", len(selection.Paths), selection.Command)
	return selection, nil
}

// process strips every path in order, or previews it when preview is set.
// A failing file is logged and recorded; the remaining files are still
// attempted. Once ctx is cancelled the remaining files are recorded as failed
// without being opened.
func (it *MowCommand) process(ctx context.Context, paths []string, preview bool) *entities.ProcessReport {
	report := &entities.ProcessReport{}
	out := it.prompt.Writer()

	if preview {
		it.prompt.Say("Data that would be passed to the stripper:")
	} else {
		_, _ = fmt.Fprint(out, "Processing files")
	}

	for _, path := range paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.AddFailure(path, ctxErr)
			continue
		}

		var (
			result entities.StripResult
			err    error
		)
		if preview {
			result, err = it.stripper.Preview(path, out)
		} else {
			result, err = it.stripper.Strip(path)
			_, _ = fmt.Fprint(out, ".")
		}

		if err != nil {
			logger.Errorf("Failed to process %s: %v", path, err)
			report.AddFailure(path, err)
			continue
		}
		report.AddResult(result)
	}

	if !preview {
		_, _ = fmt.Fprintln(out, " Done!")
	}

	logger.Infof(
		"Handled %d file(s), %d line(s) with trailing whitespace, %d failure(s)",
		len(report.Results), report.LinesChanged(), len(report.Failures),
	)
	return report
}

// printDebug shows the parsed arguments, the resolved paths and the command
// that produced them.
func (it *MowCommand) printDebug(opts MowOptions, selection *entities.Selection) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		dir = opts.Dir
	}

	it.prompt.Say("\nArguments as parsed:")
	it.prompt.Say(opts.Arguments)
	it.prompt.Say(fmt.Sprintf("Working directory: %s, mode: %s", dir, selection.Mode))

	it.prompt.Say("\nFiles to be processed:")
	it.prompt.Say(fmt.Sprintf("%q", selection.Paths))

	it.prompt.Say("\nCommand that generated the file list:")
	it.prompt.Say(selection.Command)
}
