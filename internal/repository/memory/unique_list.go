package memory

import (
	"slices"

	"go-hr-manager/internal/domain"
)

// uniqueList stores entities in insertion order and refuses weak duplicates.
// The view it hands out reads the same backing slice, so it stays current
// across every mutation.
type uniqueList[T domain.Entity[T]] struct {
	items     []T
	view      *domain.View[T]
	setFilter func(domain.Predicate[T])
}

func newUniqueList[T domain.Entity[T]]() *uniqueList[T] {
	l := &uniqueList[T]{items: []T{}}
	l.view, l.setFilter = domain.NewView(&l.items)
	return l
}

func (l *uniqueList[T]) indexOf(entity T) int {
	return slices.IndexFunc(l.items, entity.IsSame)
}

func (l *uniqueList[T]) Contains(entity T) bool {
	return l.indexOf(entity) >= 0
}

func (l *uniqueList[T]) Add(entity T) error {
	if l.Contains(entity) {
		return domain.ErrDuplicate
	}
	l.items = append(l.items, entity.Clone())
	return nil
}

func (l *uniqueList[T]) Set(target, edited T) error {
	idx := l.indexOf(target)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if !target.IsSame(edited) && l.Contains(edited) {
		return domain.ErrDuplicate
	}
	l.items[idx] = edited.Clone()
	return nil
}

func (l *uniqueList[T]) Remove(entity T) error {
	idx := l.indexOf(entity)
	if idx < 0 {
		return domain.ErrNotFound
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return nil
}

func (l *uniqueList[T]) SetAll(entities []T) error {
	if !allUnique(entities) {
		return domain.ErrDuplicate
	}
	items := make([]T, len(entities))
	for i, e := range entities {
		items[i] = e.Clone()
	}
	l.items = items
	return nil
}

func (l *uniqueList[T]) All() []T {
	out := make([]T, len(l.items))
	for i, e := range l.items {
		out[i] = e.Clone()
	}
	return out
}

func (l *uniqueList[T]) Len() int {
	return len(l.items)
}

func (l *uniqueList[T]) Filtered() *domain.View[T] {
	return l.view
}

func (l *uniqueList[T]) UpdateFilter(p domain.Predicate[T]) {
	l.setFilter(p)
}

func allUnique[T domain.Entity[T]](entities []T) bool {
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			if entities[i].IsSame(entities[j]) {
				return false
			}
		}
	}
	return true
}
