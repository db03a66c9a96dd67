package command

import "go-hr-manager/internal/domain"

const (
	HelpWord = "help"
	ExitWord = "exit"

	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord

	MessageShowingHelp = "Opened help window."
	MessageExiting     = "Exiting HR Manager as requested ..."
)

// Help asks the front-end to show usage instructions.
type Help struct {
	readOnly
}

func (Help) Execute(domain.Model) (domain.CommandResult, error) {
	return domain.CommandResult{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

// Exit asks the front-end to stop.
type Exit struct {
	readOnly
}

func (Exit) Execute(domain.Model) (domain.CommandResult, error) {
	return domain.CommandResult{Feedback: MessageExiting, Exit: true}, nil
}

// Usages lists the usage text of every command, in the order shown by help.
func Usages() []string {
	return []string{
		AddCandidateUsage, EditCandidateUsage, RemarkCandidateUsage, DeleteCandidateUsage,
		ListCandidateWord + ": Lists all candidates.", FindCandidateUsage,
		AddPositionUsage, EditPositionUsage, DeletePositionUsage,
		ListPositionWord + ": Lists all positions.", FindPositionUsage,
		AddInterviewUsage, EditInterviewUsage, StatusInterviewUsage, DeleteInterviewUsage,
		ListInterviewWord + ": Lists all interviews.", FindInterviewUsage,
		HelpUsage, ExitWord + ": Exits the program.",
	}
}
