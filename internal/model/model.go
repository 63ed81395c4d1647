// Package model holds the in-memory address book and journal together with
// the filtered views that commands address by index.
package model

import (
	"fmt"
	"sync"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

// Model is the state commands execute against.
type Model struct {
	contacts *uniquelist.List[domain.Person]
	journal  *uniquelist.List[domain.JournalEntry]

	mu            sync.RWMutex
	contactFilter func(domain.Person) bool
	entryFilter   func(domain.JournalEntry) bool
}

// New returns an empty model.
func New() *Model {
	return &Model{
		contacts: uniquelist.New(domain.SamePerson),
		journal:  uniquelist.New(domain.SameEntry),
	}
}

// Contacts is the full address book, unaffected by filters.
func (m *Model) Contacts() *uniquelist.List[domain.Person] { return m.contacts }

// Journal is the full journal, unaffected by filters.
func (m *Model) Journal() *uniquelist.List[domain.JournalEntry] { return m.journal }

// FilterContacts restricts the visible contacts. A nil predicate shows all.
func (m *Model) FilterContacts(pred func(domain.Person) bool) {
	m.mu.Lock()
	m.contactFilter = pred
	m.mu.Unlock()
}

// FilterEntries restricts the visible entries. A nil predicate shows all.
func (m *Model) FilterEntries(pred func(domain.JournalEntry) bool) {
	m.mu.Lock()
	m.entryFilter = pred
	m.mu.Unlock()
}

// VisibleContacts returns the contacts passing the current filter.
func (m *Model) VisibleContacts() []domain.Person {
	m.mu.RLock()
	pred := m.contactFilter
	m.mu.RUnlock()
	return visible(m.contacts, pred)
}

// VisibleEntries returns the entries passing the current filter.
func (m *Model) VisibleEntries() []domain.JournalEntry {
	m.mu.RLock()
	pred := m.entryFilter
	m.mu.RUnlock()
	return visible(m.journal, pred)
}

// ContactAt resolves idx against the visible contacts.
func (m *Model) ContactAt(idx domain.Index) (domain.Person, error) {
	return at(m.VisibleContacts(), idx)
}

// EntryAt resolves idx against the visible entries.
func (m *Model) EntryAt(idx domain.Index) (domain.JournalEntry, error) {
	return at(m.VisibleEntries(), idx)
}

// Load replaces both collections, for example with what storage returned.
// Nothing changes unless both collections are free of duplicates.
func (m *Model) Load(persons []domain.Person, entries []domain.JournalEntry) error {
	probe := uniquelist.New(domain.SameEntry)
	if err := probe.Replace(entries); err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	if err := m.contacts.Replace(persons); err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	// Cannot fail: the same items were accepted by probe.
	_ = m.journal.Replace(entries)

	m.FilterContacts(nil)
	m.FilterEntries(nil)
	return nil
}

func visible[T uniquelist.Identified](l *uniquelist.List[T], pred func(T) bool) []T {
	items := l.Items()
	if pred == nil {
		return items
	}
	out := items[:0]
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func at[T any](items []T, idx domain.Index) (T, error) {
	var zero T
	if idx.ZeroBased() >= len(items) {
		return zero, fmt.Errorf("%w: %d of %d shown", uniquelist.ErrOutOfRange, idx.OneBased(), len(items))
	}
	return items[idx.ZeroBased()], nil
}
