package entities

import (
	"fmt"
	"strings"
)

// SelectionMode identifies the strategy used to discover files.
type SelectionMode int

const (
	ExplicitFiles SelectionMode = iota
	VersionControlModified
	VersionControlAll
	RecursiveFind
	NonRecursiveFind
)

func (m SelectionMode) String() string {
	switch m {
	case ExplicitFiles:
		return "explicit"
	case VersionControlModified:
		return "git-modified"
	case VersionControlAll:
		return "git-all"
	case RecursiveFind:
		return "find-recursive"
	case NonRecursiveFind:
		return "find"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// IsVersionControl reports whether the mode lists files through git.
func (m SelectionMode) IsVersionControl() bool {
	return m == VersionControlModified || m == VersionControlAll
}

// SelectionOptions holds the flags that decide the selection mode.
type SelectionOptions struct {
	Files        []string
	Recursive    bool
	ForceFind    bool
	ForceGit     bool
	OnlyModified bool
}

// ResolveMode picks the selection mode from the options and whether the
// working directory belongs to a git repository. Explicit files win, then
// --force-find, then --force-git. Without a force flag, git mode is used
// for recursive runs inside a repository and find mode otherwise.
func ResolveMode(opts SelectionOptions, inRepository bool) (SelectionMode, error) {
	switch {
	case len(opts.Files) > 0:
		return ExplicitFiles, nil
	case opts.ForceFind:
		return findMode(opts.Recursive), nil
	case opts.ForceGit:
		if !opts.Recursive {
			return 0, &PreconditionError{Err: ErrUnsupported}
		}
		if !inRepository {
			return 0, &PreconditionError{Err: ErrNotRepository}
		}
		return gitMode(opts.OnlyModified), nil
	case inRepository && opts.Recursive:
		return gitMode(opts.OnlyModified), nil
	default:
		return findMode(opts.Recursive), nil
	}
}

func findMode(recursive bool) SelectionMode {
	if recursive {
		return RecursiveFind
	}
	return NonRecursiveFind
}

func gitMode(onlyModified bool) SelectionMode {
	if onlyModified {
		return VersionControlModified
	}
	return VersionControlAll
}

// ListRequest is the configuration handed to a file lister at call time.
type ListRequest struct {
	Dir       string
	Mode      SelectionMode
	Wildcards Wildcards
	Files     []string
}

// Selection is the outcome of a listing: the paths to consider and the
// command that would produce the same list in a shell.
type Selection struct {
	Mode    SelectionMode
	Paths   []string
	Command string
}

// CommandLine joins command arguments for display.
func CommandLine(args ...string) string {
	return strings.Join(args, " ")
}
