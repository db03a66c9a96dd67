package memory

import "go-hr-manager/internal/domain"

func NewCandidateRepository() domain.CandidateRepository {
	return newUniqueList[domain.Candidate]()
}

func NewPositionRepository() domain.PositionRepository {
	return newUniqueList[domain.Position]()
}

func NewInterviewRepository() domain.InterviewRepository {
	return newUniqueList[domain.Interview]()
}
