package command

import (
	"fmt"

	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
)

const (
	AddCandidateWord    = "add_c"
	EditCandidateWord   = "edit_c"
	RemarkCandidateWord = "remark_c"
	DeleteCandidateWord = "delete_c"
	ListCandidateWord   = "list_c"
	FindCandidateWord   = "find_c"
)

const (
	AddCandidateUsage = AddCandidateWord + ": Adds a candidate to the HR Manager. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS pos/POSITION... [tag/TAG]... [r/REMARK]\n" +
		"Example: " + AddCandidateWord + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 pos/HR Manager tag/friends"

	EditCandidateUsage = EditCandidateWord + ": Edits the details of the candidate identified " +
		"by the index number used in the displayed candidate list. Existing values will be overwritten.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [pos/POSITION]... [tag/TAG]...\n" +
		"Example: " + EditCandidateWord + " 1 p/91234567 e/johndoe@example.com"

	RemarkCandidateUsage = RemarkCandidateWord + ": Edits the remark of the candidate identified " +
		"by the index number used in the displayed candidate list. An empty remark removes it.\n" +
		"Parameters: INDEX (must be a positive integer) r/[REMARK]\n" +
		"Example: " + RemarkCandidateWord + " 1 r/Likes to swim."

	DeleteCandidateUsage = DeleteCandidateWord + ": Deletes the candidate identified by the index number " +
		"used in the displayed candidate list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteCandidateWord + " 1"

	FindCandidateUsage = FindCandidateWord + ": Finds all candidates whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindCandidateWord + " alice bob charlie"

	ListCandidateSuccess = "Listed all candidates"
)

// AddCandidate adds a new candidate who applied for existing positions.
type AddCandidate struct {
	mutating
	Candidate domain.Candidate
}

func (c AddCandidate) Execute(m domain.Model) (domain.CommandResult, error) {
	if err := resolvePositions(m, c.Candidate.Positions); err != nil {
		return domain.CommandResult{}, err
	}
	if m.HasCandidate(c.Candidate) {
		return domain.CommandResult{}, apperror.Command(MessageDuplicateCandidate)
	}
	if err := m.AddCandidate(c.Candidate); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateCandidate)
	}
	return result(fmt.Sprintf("New candidate added: %s", c.Candidate)), nil
}

// EditCandidateDescriptor holds the fields to change. Nil means unchanged.
type EditCandidateDescriptor struct {
	Name      *string
	Phone     *string
	Email     *string
	Address   *string
	Tags      *[]string
	Positions *[]string
}

func (d EditCandidateDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Tags != nil || d.Positions != nil
}

func (d EditCandidateDescriptor) apply(c domain.Candidate) domain.Candidate {
	name, phone, email, address := c.Name, c.Phone, c.Email, c.Address
	tags, positions := c.Tags, c.Positions
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Address != nil {
		address = *d.Address
	}
	if d.Tags != nil {
		tags = *d.Tags
	}
	if d.Positions != nil {
		positions = *d.Positions
	}
	return domain.NewCandidate(name, phone, email, address, tags, c.Remark, positions)
}

// EditCandidate edits the candidate at a displayed index.
type EditCandidate struct {
	mutating
	Index      int
	Descriptor EditCandidateDescriptor
}

func (c EditCandidate) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := candidateAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	edited := c.Descriptor.apply(target)

	if err := resolvePositions(m, edited.Positions); err != nil {
		return domain.CommandResult{}, err
	}
	if !target.IsSame(edited) && m.HasCandidate(edited) {
		return domain.CommandResult{}, apperror.Command(MessageDuplicateCandidate)
	}
	if err := m.SetCandidate(target, edited); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateCandidate)
	}
	m.UpdateFilteredCandidates(nil)
	return result(fmt.Sprintf("Edited Candidate: %s", edited)), nil
}

// RemarkCandidate sets or clears the remark of the candidate at a displayed index.
type RemarkCandidate struct {
	mutating
	Index  int
	Remark string
}

func (c RemarkCandidate) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := candidateAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	edited := target.Clone()
	edited.Remark = c.Remark

	if err := m.SetCandidate(target, edited); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateCandidate)
	}
	if c.Remark == "" {
		return result(fmt.Sprintf("Removed remark from Candidate: %s", edited)), nil
	}
	return result(fmt.Sprintf("Added remark to Candidate: %s", edited)), nil
}

// DeleteCandidate deletes the candidate at a displayed index unless an
// interview still lists them.
type DeleteCandidate struct {
	mutating
	Index int
}

func (c DeleteCandidate) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := candidateAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	if scheduled := m.InterviewsForCandidate(target); len(scheduled) > 0 {
		return domain.CommandResult{}, apperror.Commandf(MessageCandidateStillScheduled, target.Name, scheduled[0])
	}
	if err := m.DeleteCandidate(target); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateCandidate)
	}
	return result(fmt.Sprintf("Deleted Candidate: %s", target)), nil
}

// ListCandidate shows every candidate.
type ListCandidate struct {
	readOnly
}

func (ListCandidate) Execute(m domain.Model) (domain.CommandResult, error) {
	m.UpdateFilteredCandidates(nil)
	return result(ListCandidateSuccess), nil
}

// FindCandidate shows the candidates whose name contains any keyword.
type FindCandidate struct {
	readOnly
	Keywords []string
}

func (c FindCandidate) Execute(m domain.Model) (domain.CommandResult, error) {
	m.UpdateFilteredCandidates(domain.CandidateNameContains(c.Keywords))
	return result(fmt.Sprintf(MessageCandidatesListed, m.FilteredCandidates().Len())), nil
}
