//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"bytes"
	"io"
	"strings"

	"github.com/rios0rios0/mow/internal/domain/entities"
	"github.com/rios0rios0/mow/internal/domain/repositories"
)

// StubPromptRepository is a scripted implementation of repositories.PromptRepository.
// Answers are consumed in order; once exhausted, Ask reports ActionAbort.
type StubPromptRepository struct {
	Answers []entities.Action
	AskErr  error

	// spy fields
	Questions []string
	Alerts    []string
	Output    bytes.Buffer
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) Ask(question string) (entities.Action, error) {
	s.Questions = append(s.Questions, question)
	if s.AskErr != nil {
		return entities.ActionUnknown, s.AskErr
	}
	if len(s.Answers) == 0 {
		return entities.ActionAbort, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *StubPromptRepository) Say(text string) {
	s.Output.WriteString(text + "\n")
}

func (s *StubPromptRepository) Alert(text string) {
	s.Alerts = append(s.Alerts, text)
}

func (s *StubPromptRepository) Writer() io.Writer {
	return &s.Output
}

// Lines returns the plain output split into lines.
func (s *StubPromptRepository) Lines() []string {
	return strings.Split(strings.TrimRight(s.Output.String(), "\n"), "\n")
}
