package domain

// Predicate selects which entities a View shows.
type Predicate[T any] func(T) bool

// ShowAll is the default predicate of every view.
func ShowAll[T any](T) bool { return true }

// Cloner is implemented by entities that can hand out independent copies.
type Cloner[T any] interface {
	Clone() T
}

// View is a live, read-only projection of a repository through its current
// predicate. It exposes no mutating methods: only the owning repository can
// change its contents or its predicate.
type View[T Cloner[T]] struct {
	items  *[]T
	filter Predicate[T]
}

// NewView returns a view over items together with the function the owner uses
// to replace the predicate. A nil predicate means ShowAll.
func NewView[T Cloner[T]](items *[]T) (*View[T], func(Predicate[T])) {
	v := &View[T]{items: items, filter: ShowAll[T]}
	setFilter := func(p Predicate[T]) {
		if p == nil {
			p = ShowAll[T]
		}
		v.filter = p
	}
	return v, setFilter
}

// Len returns the number of entities currently shown.
func (v *View[T]) Len() int {
	n := 0
	for _, item := range *v.items {
		if v.filter(item) {
			n++
		}
	}
	return n
}

// Get returns the entity at the zero-based index among the shown entities.
func (v *View[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	n := 0
	for _, item := range *v.items {
		if !v.filter(item) {
			continue
		}
		if n == index {
			return item.Clone(), true
		}
		n++
	}
	return zero, false
}

// Items returns copies of all shown entities in order.
func (v *View[T]) Items() []T {
	out := make([]T, 0, len(*v.items))
	for _, item := range *v.items {
		if v.filter(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}
