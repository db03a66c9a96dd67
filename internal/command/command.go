// Package command holds the closed set of executable commands. Every command
// either leaves the model in a new valid state and returns a result, or
// leaves it untouched and returns a command error.
package command

import (
	"errors"

	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
)

// Command is implemented only by the types in this package.
type Command interface {
	Execute(m domain.Model) (domain.CommandResult, error)
	// Mutates reports whether a successful run changes the model and must be saved.
	Mutates() bool
	sealed()
}

type mutating struct{}

func (mutating) Mutates() bool { return true }
func (mutating) sealed()       {}

type readOnly struct{}

func (readOnly) Mutates() bool { return false }
func (readOnly) sealed()       {}

func result(feedback string) domain.CommandResult {
	return domain.CommandResult{Feedback: feedback}
}

// candidateAt resolves a one-based index against the displayed candidates.
func candidateAt(m domain.Model, index int) (domain.Candidate, error) {
	c, ok := m.FilteredCandidates().Get(index - 1)
	if !ok {
		return domain.Candidate{}, apperror.Command(MessageInvalidCandidateIndex)
	}
	return c, nil
}

func positionAt(m domain.Model, index int) (domain.Position, error) {
	p, ok := m.FilteredPositions().Get(index - 1)
	if !ok {
		return domain.Position{}, apperror.Command(MessageInvalidPositionIndex)
	}
	return p, nil
}

func interviewAt(m domain.Model, index int) (domain.Interview, error) {
	iv, ok := m.FilteredInterviews().Get(index - 1)
	if !ok {
		return domain.Interview{}, apperror.Command(MessageInvalidInterviewIndex)
	}
	return iv, nil
}

// resolvePositions returns the first title that is not a known position.
func resolvePositions(m domain.Model, titles []string) error {
	for _, title := range titles {
		if _, ok := m.FindPosition(title); !ok {
			return apperror.Commandf(MessagePositionNotFound, title)
		}
	}
	return nil
}

func resolveCandidates(m domain.Model, names []string) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, 0, len(names))
	for _, name := range names {
		c, ok := m.FindCandidate(name)
		if !ok {
			return nil, apperror.Commandf(MessageCandidateNotFound, name)
		}
		out = append(out, c)
	}
	return out, nil
}

// modelError turns an error from the model into a command error. The command
// pre-checks its preconditions, so this only fires on a broken invariant.
func modelError(err error, duplicateMessage string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return apperror.Command(duplicateMessage)
	}
	return apperror.New(apperror.KindCommand, err.Error(), err)
}
