package memory

import (
	"fmt"

	"go-hr-manager/internal/domain"
)

type hrManager struct {
	candidates domain.CandidateRepository
	positions  domain.PositionRepository
	interviews domain.InterviewRepository
}

// NewModel returns an empty model.
func NewModel() domain.Model {
	return &hrManager{
		candidates: NewCandidateRepository(),
		positions:  NewPositionRepository(),
		interviews: NewInterviewRepository(),
	}
}

// NewModelFromData returns a model holding data, or an error if data breaks
// uniqueness or referential integrity.
func NewModelFromData(data domain.HrManagerData) (domain.Model, error) {
	m := NewModel()
	if err := m.Reset(data); err != nil {
		return nil, err
	}
	return m, nil
}

// =================================================================================================
// Candidates
// =================================================================================================

func (m *hrManager) HasCandidate(c domain.Candidate) bool {
	return m.candidates.Contains(c)
}

func (m *hrManager) FindCandidate(name string) (domain.Candidate, bool) {
	key := domain.CandidateKey(name)
	for _, c := range m.candidates.All() {
		if c.Key() == key {
			return c, true
		}
	}
	return domain.Candidate{}, false
}

func (m *hrManager) AddCandidate(c domain.Candidate) error {
	if err := m.checkAppliedPositions(c); err != nil {
		return err
	}
	return m.candidates.Add(c)
}

func (m *hrManager) SetCandidate(target, edited domain.Candidate) error {
	if !m.candidates.Contains(target) {
		return domain.ErrNotFound
	}
	if err := m.checkAppliedPositions(edited); err != nil {
		return err
	}

	interviews := m.interviews.All()
	for i, iv := range interviews {
		if iv.ReferencesCandidate(target) {
			interviews[i] = iv.ReplacingCandidate(target, edited)
		}
	}
	if !allUnique(interviews) {
		return domain.ErrDuplicate
	}

	if err := m.candidates.Set(target, edited); err != nil {
		return err
	}
	return m.interviews.SetAll(interviews)
}

func (m *hrManager) DeleteCandidate(c domain.Candidate) error {
	if len(m.InterviewsForCandidate(c)) > 0 {
		return domain.ErrStillReferenced
	}
	return m.candidates.Remove(c)
}

func (m *hrManager) FilteredCandidates() *domain.View[domain.Candidate] {
	return m.candidates.Filtered()
}

func (m *hrManager) UpdateFilteredCandidates(p domain.Predicate[domain.Candidate]) {
	m.candidates.UpdateFilter(p)
}

func (m *hrManager) checkAppliedPositions(c domain.Candidate) error {
	for _, title := range c.Positions {
		if _, ok := m.FindPosition(title); !ok {
			return fmt.Errorf("%w: position %q", domain.ErrDanglingReference, title)
		}
	}
	return nil
}

// =================================================================================================
// Positions
// =================================================================================================

func (m *hrManager) HasPosition(p domain.Position) bool {
	return m.positions.Contains(p)
}

func (m *hrManager) FindPosition(title string) (domain.Position, bool) {
	for _, p := range m.positions.All() {
		if p.Title == title {
			return p, true
		}
	}
	return domain.Position{}, false
}

func (m *hrManager) AddPosition(p domain.Position) error {
	return m.positions.Add(p)
}

func (m *hrManager) SetPosition(target, edited domain.Position) error {
	if !m.positions.Contains(target) {
		return domain.ErrNotFound
	}

	candidates := m.candidates.All()
	if target.Title != edited.Title {
		for i, c := range candidates {
			if c.HasAppliedFor(target.Title) {
				candidates[i] = c.WithPositionRenamed(target.Title, edited.Title)
			}
		}
	}

	interviews := m.interviews.All()
	for i, iv := range interviews {
		if iv.ReferencesPosition(target) {
			iv = iv.ReplacingPosition(edited)
		}
		interviews[i] = syncCandidates(iv, candidates)
	}
	if !allUnique(interviews) {
		return domain.ErrDuplicate
	}

	if err := m.positions.Set(target, edited); err != nil {
		return err
	}
	if err := m.candidates.SetAll(candidates); err != nil {
		return err
	}
	return m.interviews.SetAll(interviews)
}

func (m *hrManager) DeletePosition(p domain.Position) error {
	if len(m.InterviewsForPosition(p)) > 0 {
		return domain.ErrStillReferenced
	}
	if err := m.positions.Remove(p); err != nil {
		return err
	}

	candidates := m.candidates.All()
	for i, c := range candidates {
		candidates[i] = c.WithoutPosition(p.Title)
	}
	interviews := m.interviews.All()
	for i, iv := range interviews {
		interviews[i] = syncCandidates(iv, candidates)
	}
	if err := m.candidates.SetAll(candidates); err != nil {
		return err
	}
	return m.interviews.SetAll(interviews)
}

func (m *hrManager) FilteredPositions() *domain.View[domain.Position] {
	return m.positions.Filtered()
}

func (m *hrManager) UpdateFilteredPositions(p domain.Predicate[domain.Position]) {
	m.positions.UpdateFilter(p)
}

// =================================================================================================
// Interviews
// =================================================================================================

func (m *hrManager) HasInterview(i domain.Interview) bool {
	return m.interviews.Contains(i)
}

func (m *hrManager) AddInterview(i domain.Interview) error {
	resolved, err := m.resolve(i)
	if err != nil {
		return err
	}
	return m.interviews.Add(resolved)
}

func (m *hrManager) SetInterview(target, edited domain.Interview) error {
	resolved, err := m.resolve(edited)
	if err != nil {
		return err
	}
	return m.interviews.Set(target, resolved)
}

func (m *hrManager) DeleteInterview(i domain.Interview) error {
	return m.interviews.Remove(i)
}

func (m *hrManager) FilteredInterviews() *domain.View[domain.Interview] {
	return m.interviews.Filtered()
}

func (m *hrManager) UpdateFilteredInterviews(p domain.Predicate[domain.Interview]) {
	m.interviews.UpdateFilter(p)
}

func (m *hrManager) InterviewsForCandidate(c domain.Candidate) []domain.Interview {
	var out []domain.Interview
	for _, iv := range m.interviews.All() {
		if iv.ReferencesCandidate(c) {
			out = append(out, iv)
		}
	}
	return out
}

func (m *hrManager) InterviewsForPosition(p domain.Position) []domain.Interview {
	var out []domain.Interview
	for _, iv := range m.interviews.All() {
		if iv.ReferencesPosition(p) {
			out = append(out, iv)
		}
	}
	return out
}

func (m *hrManager) checkReferences(i domain.Interview) error {
	if !m.positions.Contains(i.Position()) {
		return fmt.Errorf("%w: position %q", domain.ErrDanglingReference, i.PositionTitle())
	}
	for _, c := range i.Candidates() {
		if !m.candidates.Contains(c) {
			return fmt.Errorf("%w: candidate %q", domain.ErrDanglingReference, c.Name)
		}
	}
	return nil
}

// resolve checks i's references and returns a copy holding the model's own
// position and candidate values.
func (m *hrManager) resolve(i domain.Interview) (domain.Interview, error) {
	if err := m.checkReferences(i); err != nil {
		return domain.Interview{}, err
	}
	p, _ := m.FindPosition(i.PositionTitle())
	return syncCandidates(i.ReplacingPosition(p), m.candidates.All()), nil
}

// syncCandidates refreshes every candidate of iv from candidates.
func syncCandidates(iv domain.Interview, candidates []domain.Candidate) domain.Interview {
	for _, scheduled := range iv.Candidates() {
		for _, c := range candidates {
			if c.IsSame(scheduled) {
				iv = iv.ReplacingCandidate(scheduled, c)
				break
			}
		}
	}
	return iv
}

// =================================================================================================
// Snapshot
// =================================================================================================

func (m *hrManager) Data() domain.HrManagerData {
	return domain.HrManagerData{
		Candidates: m.candidates.All(),
		Positions:  m.positions.All(),
		Interviews: m.interviews.All(),
	}
}

func (m *hrManager) Reset(data domain.HrManagerData) error {
	staged := &hrManager{
		candidates: NewCandidateRepository(),
		positions:  NewPositionRepository(),
		interviews: NewInterviewRepository(),
	}
	if err := staged.positions.SetAll(data.Positions); err != nil {
		return fmt.Errorf("positions: %w", err)
	}
	for _, c := range data.Candidates {
		if err := staged.checkAppliedPositions(c); err != nil {
			return err
		}
	}
	if err := staged.candidates.SetAll(data.Candidates); err != nil {
		return fmt.Errorf("candidates: %w", err)
	}
	for _, iv := range data.Interviews {
		if err := staged.checkReferences(iv); err != nil {
			return err
		}
	}
	if err := staged.interviews.SetAll(data.Interviews); err != nil {
		return fmt.Errorf("interviews: %w", err)
	}

	// Everything checked: swap contents into the live repositories so the
	// views handed out earlier keep working.
	_ = m.positions.SetAll(data.Positions)
	_ = m.candidates.SetAll(data.Candidates)
	_ = m.interviews.SetAll(data.Interviews)
	return nil
}
