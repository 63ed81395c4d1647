// Package uniquelist provides an ordered collection that rejects entries the
// caller considers duplicates of one already present.
//
// Duplicates are decided by an Equivalence supplied at construction, not by
// ==, so two records may differ in unrelated fields and still collide.
package uniquelist

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pbaille/addressjournal/internal/domain"
)

var (
	// ErrDuplicate is returned when an insertion collides with an existing entry.
	ErrDuplicate = errors.New("duplicate entity")
	// ErrOutOfRange is returned when an index does not name a current entry.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when no entry carries the requested identifier.
	ErrNotFound = errors.New("entity not found")
)

// Identified is implemented by entities that carry a stable identifier.
type Identified interface {
	EntityID() uuid.UUID
}

// Equivalence decides whether two entries are the same record. It must be
// symmetric.
type Equivalence[T any] func(a, b T) bool

// List is an insertion-ordered collection with no two equivalent entries.
// It is safe for concurrent use.
type List[T Identified] struct {
	mu    sync.RWMutex
	same  Equivalence[T]
	items []T
}

// New returns an empty list using same for duplicate detection.
func New[T Identified](same Equivalence[T]) *List[T] {
	return &List[T]{same: same}
}

// Add appends item unless an equivalent entry is already present.
func (l *List[T]) Add(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOfSame(item, -1) >= 0 {
		return ErrDuplicate
	}
	l.items = append(l.items, item)
	return nil
}

// Get returns the entry at idx.
func (l *List[T]) Get(idx domain.Index) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	if err := l.checkRange(idx); err != nil {
		return zero, err
	}
	return l.items[idx.ZeroBased()], nil
}

// GetID returns the entry carrying id.
func (l *List[T]) GetID(id uuid.UUID) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	i := l.indexOfID(id)
	if i < 0 {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l.items[i], nil
}

// Set replaces the entry at idx. The replacement may be equivalent to the
// entry it replaces but to no other.
func (l *List[T]) Set(idx domain.Index, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkRange(idx); err != nil {
		return err
	}
	return l.setAt(idx.ZeroBased(), item)
}

// SetID replaces the entry carrying id, under the same rule as Set.
func (l *List[T]) SetID(id uuid.UUID, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfID(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l.setAt(i, item)
}

// Remove deletes and returns the entry at idx. Later entries move up by one.
func (l *List[T]) Remove(idx domain.Index) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if err := l.checkRange(idx); err != nil {
		return zero, err
	}
	return l.removeAt(idx.ZeroBased()), nil
}

// RemoveID deletes and returns the entry carrying id.
func (l *List[T]) RemoveID(id uuid.UUID) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	i := l.indexOfID(id)
	if i < 0 {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l.removeAt(i), nil
}

// Replace swaps the whole content for items, checking every pair. On error
// the list is left untouched.
func (l *List[T]) Replace(items []T) error {
	next := make([]T, 0, len(items))
	for _, item := range items {
		for _, kept := range next {
			if l.same(kept, item) {
				return ErrDuplicate
			}
		}
		next = append(next, item)
	}

	l.mu.Lock()
	l.items = next
	l.mu.Unlock()
	return nil
}

// Clear removes every entry.
func (l *List[T]) Clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Items returns a copy of the entries in insertion order.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// All iterates over a snapshot of the entries with their 1-based indices.
func (l *List[T]) All() iter.Seq2[domain.Index, T] {
	items := l.Items()
	return func(yield func(domain.Index, T) bool) {
		for i, item := range items {
			if !yield(domain.MustIndex(i+1), item) {
				return
			}
		}
	}
}

func (l *List[T]) checkRange(idx domain.Index) error {
	if idx.ZeroBased() >= len(l.items) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, idx.OneBased(), len(l.items))
	}
	return nil
}

func (l *List[T]) setAt(i int, item T) error {
	if l.indexOfSame(item, i) >= 0 {
		return ErrDuplicate
	}
	l.items[i] = item
	return nil
}

func (l *List[T]) removeAt(i int) T {
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item
}

// indexOfSame finds an entry equivalent to item, ignoring position skip.
func (l *List[T]) indexOfSame(item T, skip int) int {
	for i, existing := range l.items {
		if i != skip && l.same(existing, item) {
			return i
		}
	}
	return -1
}

func (l *List[T]) indexOfID(id uuid.UUID) int {
	for i, existing := range l.items {
		if existing.EntityID() == id {
			return i
		}
	}
	return -1
}
