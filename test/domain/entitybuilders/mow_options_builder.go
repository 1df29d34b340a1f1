//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mow/internal/domain/commands"
	"github.com/rios0rios0/mow/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// MowOptionsBuilder helps create mow command options with a fluent interface.
type MowOptionsBuilder struct {
	*testkit.BaseBuilder
	dir       string
	selection entities.SelectionOptions
	wildcards entities.Wildcards
	debug     bool
	assumeYes bool
}

// NewMowOptionsBuilder creates a new options builder with sensible defaults:
// a recursive, only-modified run over the default wildcards.
func NewMowOptionsBuilder() *MowOptionsBuilder {
	return &MowOptionsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		dir:         ".",
		selection:   entities.SelectionOptions{Recursive: true, OnlyModified: true},
		wildcards:   entities.DefaultWildcards(),
	}
}

// WithDir sets the working directory.
func (b *MowOptionsBuilder) WithDir(dir string) *MowOptionsBuilder {
	b.dir = dir
	return b
}

// WithFiles sets the explicit file list.
func (b *MowOptionsBuilder) WithFiles(files ...string) *MowOptionsBuilder {
	b.selection.Files = files
	return b
}

// WithRecursive sets the recursive flag.
func (b *MowOptionsBuilder) WithRecursive(recursive bool) *MowOptionsBuilder {
	b.selection.Recursive = recursive
	return b
}

// WithForceFind sets the force-find flag.
func (b *MowOptionsBuilder) WithForceFind() *MowOptionsBuilder {
	b.selection.ForceFind = true
	return b
}

// WithForceGit sets the force-git flag.
func (b *MowOptionsBuilder) WithForceGit() *MowOptionsBuilder {
	b.selection.ForceGit = true
	return b
}

// WithOnlyModified sets whether git mode keeps only modified files.
func (b *MowOptionsBuilder) WithOnlyModified(onlyModified bool) *MowOptionsBuilder {
	b.selection.OnlyModified = onlyModified
	return b
}

// WithWildcards replaces the wildcard set.
func (b *MowOptionsBuilder) WithWildcards(wildcards ...string) *MowOptionsBuilder {
	b.wildcards = wildcards
	return b
}

// WithDebug enables debug (preview) mode.
func (b *MowOptionsBuilder) WithDebug() *MowOptionsBuilder {
	b.debug = true
	return b
}

// WithAssumeYes skips the confirmation prompt.
func (b *MowOptionsBuilder) WithAssumeYes() *MowOptionsBuilder {
	b.assumeYes = true
	return b
}

// Build creates the options (satisfies testkit.Builder interface).
func (b *MowOptionsBuilder) Build() interface{} {
	return b.BuildOptions()
}

// BuildOptions creates the options with a concrete return type.
func (b *MowOptionsBuilder) BuildOptions() commands.MowOptions {
	return commands.MowOptions{
		Dir:       b.dir,
		Selection: b.selection,
		Wildcards: b.wildcards,
		Debug:     b.debug,
		AssumeYes: b.assumeYes,
		Arguments: "{test}",
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *MowOptionsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.dir = "."
	b.selection = entities.SelectionOptions{Recursive: true, OnlyModified: true}
	b.wildcards = entities.DefaultWildcards()
	b.debug = false
	b.assumeYes = false
	return b
}

// Clone creates a deep copy of the MowOptionsBuilder.
func (b *MowOptionsBuilder) Clone() testkit.Builder {
	selection := b.selection
	selection.Files = append([]string(nil), b.selection.Files...)
	return &MowOptionsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		dir:         b.dir,
		selection:   selection,
		wildcards:   append(entities.Wildcards(nil), b.wildcards...),
		debug:       b.debug,
		assumeYes:   b.assumeYes,
	}
}
