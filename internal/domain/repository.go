package domain

// Entity is implemented by Candidate, Position and Interview.
type Entity[T any] interface {
	// IsSame is the weak identity used to reject duplicates.
	IsSame(other T) bool
	Equal(other T) bool
	Clone() T
}

// Repository is a uniqueness-constrained collection with a filtered view.
// No two stored entities are ever the same under IsSame.
type Repository[T Entity[T]] interface {
	Contains(entity T) bool
	// Add fails with ErrDuplicate if an equivalent entity is stored.
	Add(entity T) error
	// Set replaces target with edited. Fails with ErrNotFound or ErrDuplicate.
	Set(target, edited T) error
	// Remove fails with ErrNotFound if no stored entity is the same as entity.
	Remove(entity T) error
	// SetAll replaces the whole content. Fails with ErrDuplicate and leaves
	// the repository unchanged if entities contains duplicates.
	SetAll(entities []T) error
	All() []T
	Len() int
	Filtered() *View[T]
	UpdateFilter(p Predicate[T])
}

type (
	CandidateRepository = Repository[Candidate]
	PositionRepository  = Repository[Position]
	InterviewRepository = Repository[Interview]
)
