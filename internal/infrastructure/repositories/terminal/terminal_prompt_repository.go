package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

const (
	promptColor = lipgloss.Color("12") // bright blue
	alertColor  = lipgloss.Color("9")  // bright red

	keyInterrupt = 0x03
	keyEOF       = 0x04
)

// PromptRepository talks to the operator through a reader and a writer.
// When the reader is a terminal a single keystroke answers the prompt,
// otherwise a whole line is read and its first character used.
type PromptRepository struct {
	in     io.Reader
	out    io.Writer
	lines  *bufio.Reader
	prompt lipgloss.Style
	alert  lipgloss.Style
}

var _ repositories.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates a prompt bound to the process stdin and stdout.
func NewPromptRepository() *PromptRepository {
	return NewPromptRepositoryWith(os.Stdin, os.Stdout)
}

// NewPromptRepositoryWith creates a prompt bound to the given streams.
func NewPromptRepositoryWith(in io.Reader, out io.Writer) *PromptRepository {
	renderer := lipgloss.NewRenderer(out)
	return &PromptRepository{
		in:     in,
		out:    out,
		lines:  bufio.NewReader(in),
		prompt: renderer.NewStyle().Bold(true).Foreground(promptColor),
		alert:  renderer.NewStyle().Bold(true).Foreground(alertColor),
	}
}

// Ask prints the question and waits for the operator's choice.
func (it *PromptRepository) Ask(question string) (entities.Action, error) {
	if _, err := fmt.Fprint(it.out, it.prompt.Render(question)+" "); err != nil {
		return entities.ActionUnknown, err
	}

	if file, ok := it.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return it.readKey(file)
	}
	return it.readLine()
}

// readKey reads one keystroke with the terminal in raw mode.
func (it *PromptRepository) readKey(file *os.File) (entities.Action, error) {
	fd := int(file.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		logger.Debugf("[terminal] Raw mode unavailable, reading a line instead: %v", err)
		return it.readLine()
	}

	key := make([]byte, 1)
	_, readErr := file.Read(key)
	if restoreErr := term.Restore(fd, state); restoreErr != nil {
		logger.Warnf("[terminal] Failed to restore terminal state: %v", restoreErr)
	}
	if readErr != nil {
		if errors.Is(readErr, io.EOF) {
			_, _ = fmt.Fprintln(it.out)
			return entities.ActionAbort, nil
		}
		return entities.ActionUnknown, readErr
	}

	_, _ = fmt.Fprintf(it.out, "%c\n", printable(key[0]))
	if key[0] == keyInterrupt || key[0] == keyEOF {
		return entities.ActionAbort, nil
	}
	return entities.ParseAction(string(key)), nil
}

// readLine reads a full line; end of input aborts.
func (it *PromptRepository) readLine() (entities.Action, error) {
	line, err := it.lines.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			_, _ = fmt.Fprintln(it.out)
			return entities.ActionAbort, nil
		}
		if !errors.Is(err, io.EOF) {
			return entities.ActionUnknown, err
		}
	}
	return entities.ParseAction(line), nil
}

// Say prints a plain line.
func (it *PromptRepository) Say(text string) {
	_, _ = fmt.Fprintln(it.out, text)
}

// Alert prints a highlighted block.
func (it *PromptRepository) Alert(text string) {
	_, _ = fmt.Fprintln(it.out, it.alert.Render(text))
}

// Writer returns the plain output stream.
func (it *PromptRepository) Writer() io.Writer {
	return it.out
}

func printable(key byte) byte {
	if key < ' ' || key > '~' {
		return ' '
	}
	return key
}
