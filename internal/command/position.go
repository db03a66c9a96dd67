package command

import (
	"fmt"

	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/apperror"
)

const (
	AddPositionWord    = "add_p"
	EditPositionWord   = "edit_p"
	DeletePositionWord = "delete_p"
	ListPositionWord   = "list_p"
	FindPositionWord   = "find_p"
)

const (
	AddPositionUsage = AddPositionWord + ": Adds a position to the HR Manager. " +
		"Parameters: pos/TITLE\n" +
		"Example: " + AddPositionWord + " pos/Software Engineer"

	EditPositionUsage = EditPositionWord + ": Edits the position identified by the index number " +
		"used in the displayed position list.\n" +
		"Parameters: INDEX (must be a positive integer) [pos/TITLE] [s/OPEN|CLOSED]\n" +
		"Example: " + EditPositionWord + " 1 s/CLOSED"

	DeletePositionUsage = DeletePositionWord + ": Deletes the position identified by the index number " +
		"used in the displayed position list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeletePositionWord + " 1"

	FindPositionUsage = FindPositionWord + ": Finds all positions whose titles contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindPositionWord + " engineer manager"

	ListPositionSuccess = "Listed all positions"
)

// AddPosition adds a new open position.
type AddPosition struct {
	mutating
	Position domain.Position
}

func (c AddPosition) Execute(m domain.Model) (domain.CommandResult, error) {
	if m.HasPosition(c.Position) {
		return domain.CommandResult{}, apperror.Command(MessageDuplicatePosition)
	}
	if err := m.AddPosition(c.Position); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicatePosition)
	}
	return result(fmt.Sprintf("New position added: %s", c.Position)), nil
}

// EditPosition renames a position or changes its status. A rename is carried
// into every candidate and interview that refers to the position.
type EditPosition struct {
	mutating
	Index  int
	Title  *string
	Status *domain.PositionStatus
}

func (c EditPosition) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := positionAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	edited := target
	if c.Title != nil {
		edited.Title = *c.Title
	}
	if c.Status != nil {
		edited.Status = *c.Status
	}

	if !target.IsSame(edited) && m.HasPosition(edited) {
		return domain.CommandResult{}, apperror.Command(MessageDuplicatePosition)
	}
	if err := m.SetPosition(target, edited); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicateInterview)
	}
	m.UpdateFilteredPositions(nil)
	return result(fmt.Sprintf("Edited Position: %s", edited)), nil
}

// DeletePosition deletes the position at a displayed index unless an
// interview is still scheduled for it.
type DeletePosition struct {
	mutating
	Index int
}

func (c DeletePosition) Execute(m domain.Model) (domain.CommandResult, error) {
	target, err := positionAt(m, c.Index)
	if err != nil {
		return domain.CommandResult{}, err
	}
	if scheduled := m.InterviewsForPosition(target); len(scheduled) > 0 {
		return domain.CommandResult{}, apperror.Commandf(MessagePositionStillScheduled, target.Title, scheduled[0])
	}
	if err := m.DeletePosition(target); err != nil {
		return domain.CommandResult{}, modelError(err, MessageDuplicatePosition)
	}
	return result(fmt.Sprintf("Deleted Position: %s", target)), nil
}

// ListPosition shows every position.
type ListPosition struct {
	readOnly
}

func (ListPosition) Execute(m domain.Model) (domain.CommandResult, error) {
	m.UpdateFilteredPositions(nil)
	return result(ListPositionSuccess), nil
}

// FindPosition shows the positions whose title contains any keyword.
type FindPosition struct {
	readOnly
	Keywords []string
}

func (c FindPosition) Execute(m domain.Model) (domain.CommandResult, error) {
	m.UpdateFilteredPositions(domain.PositionTitleContains(c.Keywords))
	return result(fmt.Sprintf(MessagePositionsListed, m.FilteredPositions().Len())), nil
}
