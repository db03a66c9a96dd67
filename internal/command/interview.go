package command

import (
	"fmt"
	"time"

	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
)

const (
	AddInterviewWord    = "add_i"
	EditInterviewWord   = "edit_i"
	StatusInterviewWord = "status_i"
	DeleteInterviewWord = "delete_i"
	ListInterviewWord   = "list_i"
	FindInterviewWord   = "find_i"
)

const (
	AddInterviewUsage = AddInterviewWord + ": Schedules an interview in the HR Manager. " +
		"Parameters: pos/POSITION c/CANDIDATE_NAME... d/DATE(DD/MM/YYYY) t/TIME(HHMM) dur/DURATION(minutes)\n" +
		"Example: " + AddInterviewWord + " pos/HR Manager c/Amy d/01/01/2025 t/0900 dur/60"

	EditInterviewUsage = EditInterviewWord + ": Adds candidates to the interview identified by the index number " +
		"used in the displayed interview list.\n" +
		"Parameters: INDEX (must be a positive integer) c/CANDIDATE_NAME...\n" +
		"Example: " + EditInterviewWord + " 1 c/Bob"

	StatusInterviewUsage = StatusInterviewWord + ": Updates the status of the interview identified by the index number " +
		"used in the displayed interview list.\n" +
		"Parameters: INDEX (must be a positive integer) s/PENDING|COMPLETED\n" +
		"Example: " + StatusInterviewWord + " 1 s/COMPLETED"

	DeleteInterviewUsage = DeleteInterviewWord + ": Deletes the interview identified by the index number " +
		"used in the displayed interview list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteInterviewWord + " 1"

	FindInterviewUsage = FindInterviewWord + ": Finds all interviews whose position title or candidate names " +
		"contain any of the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindInterviewWord + " manager amy"

	ListInterviewSuccess = "Listed all interviews"
)

// AddInterview schedules existing candidates for an existing position. New
// interviews start PENDING.
type AddInterview struct {
	mutating
	PositionTitle  string
	CandidateNames []string
	Date           time.Time
	StartTime      time.Time
	Duration       time.Duration
}

func (c AddInterview) Execute(m domain.Model) (domain.CommandResult, error) {
	position, ok := m.FindPosition(c.PositionTitle)
	if !ok {
		return domain.CommandResult{}, apperror.Commandf(MessagePositionNotFound, c.PositionTitle)
	}
	candidates, err := resolveCandidates(m, c.CandidateNames)
	if err != nil {
		return domain.CommandResult{}, err
	}

	iv, err := domain.NewInterview(position, candidates, c.Date, c.StartTime, c.Duration, domain.InterviewStatusPending)
	if err != nil {
		return domain.CommandResult{}, apperror.New(apperror.KindCommand, err.Error(), err)
	}
	if m.HasInterview(iv) {
		return domain.CommandResult{}, apperror.Command(MessageDuplicateInterview)
	}
	if err := m.AddInterview(iv); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateInterview)
	}
	return result(fmt.Sprintf("New interview added: %s", iv)), nil
}

// EditInterview merges more candidates into the interview at a displayed index.
type EditInterview struct {
	mutating
	Index          int
	CandidateNames []string
}

func (c EditInterview) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := interviewAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	added, err := resolveCandidates(m, c.CandidateNames)
	if err != nil {
		return domain.CommandResult{}, err
	}

	edited := target.WithCandidates(added)
	if !target.IsSame(edited) && m.HasInterview(edited) {
		return domain.CommandResult{}, apperror.Command(MessageDuplicateInterview)
	}
	if err := m.SetInterview(target, edited); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateInterview)
	}
	m.UpdateFilteredInterviews(nil)
	return result(fmt.Sprintf("Edited Interview: %s", edited)), nil
}

// SetInterviewStatus changes only the status of the interview at a displayed index.
type SetInterviewStatus struct {
	mutating
	Index  int
	Status domain.InterviewStatus
}

func (c SetInterviewStatus) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := interviewAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	edited := target.WithStatus(c.Status)
	if err := m.SetInterview(target, edited); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateInterview)
	}
	return result(fmt.Sprintf("Interview status updated: %s", edited)), nil
}

// DeleteInterview deletes the interview at a displayed index.
type DeleteInterview struct {
	mutating
	Index int
}

func (c DeleteInterview) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := interviewAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	if err := m.DeleteInterview(target); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateInterview)
	}
	return result(fmt.Sprintf("Deleted Interview: %s", target)), nil
}

// ListInterview shows every interview.
type ListInterview struct {
	readOnly
}

func (ListInterview) Execute(m domain.Model) (domain.CommandResult, error) {
	m.UpdateFilteredInterviews(nil)
	return result(ListInterviewSuccess), nil
}

// FindInterview shows the interviews whose position or candidates match any keyword.
type FindInterview struct {
	readOnly
	Keywords []string
}

func (c FindInterview) Execute(m domain.Model) (domain.CommandResult, error) {
	m.UpdateFilteredInterviews(domain.InterviewContains(c.Keywords))
	return result(fmt.Sprintf(MessageInterviewsListed, m.FilteredInterviews().Len())), nil
}
