package command

const (
	MessageUnknownCommand = "Unknown command"

	MessageInvalidCandidateIndex = "The candidate index provided is invalid"
	MessageInvalidPositionIndex  = "The position index provided is invalid"
	MessageInvalidInterviewIndex = "The interview index provided is invalid"

	MessagePositionNotFound  = "Position not found: %s"
	MessageCandidateNotFound = "Candidate not found: %s"

	MessageDuplicateCandidate = "This candidate already exists in the HR Manager"
	MessageDuplicatePosition  = "This position already exists in the HR Manager"
	MessageDuplicateInterview = "This interview already exists in the HR Manager"

	MessageCandidateStillScheduled = "Candidate %s is still scheduled for interview %s"
	MessagePositionStillScheduled  = "Position %s is still scheduled for interview %s"

	MessageCandidatesListed = "%d candidates listed!"
	MessagePositionsListed  = "%d positions listed!"
	MessageInterviewsListed = "%d interviews listed!"

	MessageNotEdited = "At least one field to edit must be provided."
)
