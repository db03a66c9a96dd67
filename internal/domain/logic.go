package domain

import "context"

// CommandResult is what the front-end shows after a command succeeds.
type CommandResult struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

// LogicUsecase is the single entry point used by the front-end.
type LogicUsecase interface {
	Execute(ctx context.Context, commandText string) (CommandResult, error)
	FilteredCandidates() *View[Candidate]
	FilteredPositions() *View[Position]
	FilteredInterviews() *View[Interview]
}

// HrStorage persists the model as three documents.
type HrStorage interface {
	Load(ctx context.Context) (HrManagerData, error)
	Save(ctx context.Context, data HrManagerData) error
}
