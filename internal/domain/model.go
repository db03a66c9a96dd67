package domain

// HrManagerData is a detached snapshot of the three collections, used for
// persistence and for comparing model states.
type HrManagerData struct {
	Candidates []Candidate
	Positions  []Position
	Interviews []Interview
}

func (d HrManagerData) Equal(other HrManagerData) bool {
	return entitiesEqual(d.Candidates, other.Candidates) &&
		entitiesEqual(d.Positions, other.Positions) &&
		entitiesEqual(d.Interviews, other.Interviews)
}

func entitiesEqual[T Entity[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Model owns every candidate, position and interview and keeps interviews
// referentially consistent with the other two collections.
type Model interface {
	HasCandidate(c Candidate) bool
	FindCandidate(name string) (Candidate, bool)
	AddCandidate(c Candidate) error
	// SetCandidate replaces target and every interview reference to it.
	SetCandidate(target, edited Candidate) error
	// DeleteCandidate fails with ErrStillReferenced while an interview lists c.
	DeleteCandidate(c Candidate) error
	FilteredCandidates() *View[Candidate]
	UpdateFilteredCandidates(p Predicate[Candidate])

	HasPosition(p Position) bool
	FindPosition(title string) (Position, bool)
	AddPosition(p Position) error
	// SetPosition replaces target in the positions, the candidates and the interviews.
	SetPosition(target, edited Position) error
	// DeletePosition fails with ErrStillReferenced while an interview is for p.
	DeletePosition(p Position) error
	FilteredPositions() *View[Position]
	UpdateFilteredPositions(p Predicate[Position])

	HasInterview(i Interview) bool
	// AddInterview fails with ErrDanglingReference if the position or a candidate is unknown.
	AddInterview(i Interview) error
	SetInterview(target, edited Interview) error
	DeleteInterview(i Interview) error
	FilteredInterviews() *View[Interview]
	UpdateFilteredInterviews(p Predicate[Interview])
	InterviewsForCandidate(c Candidate) []Interview
	InterviewsForPosition(p Position) []Interview

	// Data returns a snapshot of the full, unfiltered collections.
	Data() HrManagerData
	// Reset replaces the whole model with data after checking it.
	Reset(data HrManagerData) error
}
