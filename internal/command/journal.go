package command

import (
	"fmt"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/model"
)

// AddEntry appends a new entry to the journal.
type AddEntry struct {
	Entry domain.JournalEntry
}

func (AddEntry) Kind() Kind          { return KindAdd }
func (AddEntry) Scope() domain.Scope { return domain.ScopeJournal }

func (c AddEntry) Execute(m *model.Model) (Result, error) {
	if err := m.Journal().Add(c.Entry); err != nil {
		return Result{}, listFailure(err, MessageDuplicateEntry)
	}
	return Result{Feedback: "New entry added: " + FormatEntry(c.Entry)}, nil
}

// EntryEdit lists the fields an edit replaces.
type EntryEdit struct {
	Title       Update[domain.Name]
	Date        Update[domain.Date]
	Description Update[domain.Description]
	Contacts    Update[[]domain.Person]
	Tags        Update[domain.TagSet]
}

func (e EntryEdit) Any() bool {
	return e.Title.IsSet() || e.Date.IsSet() || e.Description.IsSet() || e.Contacts.IsSet() || e.Tags.IsSet()
}

func (e EntryEdit) Apply(j domain.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:          j.ID,
		Title:       e.Title.Apply(j.Title),
		Date:        e.Date.Apply(j.Date),
		Description: e.Description.Apply(j.Description),
		Contacts:    e.Contacts.Apply(j.Contacts),
		Tags:        e.Tags.Apply(j.Tags),
	}
}

// EditEntry changes the entry shown at Index.
type EditEntry struct {
	Index domain.Index
	Edit  EntryEdit
}

func (EditEntry) Kind() Kind          { return KindEdit }
func (EditEntry) Scope() domain.Scope { return domain.ScopeJournal }

func (c EditEntry) Execute(m *model.Model) (Result, error) {
	target, err := m.EntryAt(c.Index)
	if err != nil {
		return Result{}, listFailure(err, MessageDuplicateEntry)
	}
	edited := c.Edit.Apply(target)
	if err := m.Journal().SetID(target.ID, edited); err != nil {
		return Result{}, listFailure(err, MessageDuplicateEntry)
	}
	return Result{Feedback: "Edited entry: " + FormatEntry(edited)}, nil
}

// DeleteEntry removes the entry shown at Index.
type DeleteEntry struct {
	Index domain.Index
}

func (DeleteEntry) Kind() Kind          { return KindDelete }
func (DeleteEntry) Scope() domain.Scope { return domain.ScopeJournal }

func (c DeleteEntry) Execute(m *model.Model) (Result, error) {
	target, err := m.EntryAt(c.Index)
	if err != nil {
		return Result{}, listFailure(err, MessageDuplicateEntry)
	}
	if _, err := m.Journal().RemoveID(target.ID); err != nil {
		return Result{}, listFailure(err, MessageDuplicateEntry)
	}
	return Result{Feedback: "Deleted entry: " + FormatEntry(target)}, nil
}

// FindEntries narrows the visible entries to those matching Query.
type FindEntries struct {
	Query domain.EntryQuery
}

func (FindEntries) Kind() Kind          { return KindFind }
func (FindEntries) Scope() domain.Scope { return domain.ScopeJournal }

func (c FindEntries) Execute(m *model.Model) (Result, error) {
	m.FilterEntries(c.Query.Matches)
	return Result{Feedback: fmt.Sprintf("%d entries listed!", len(m.VisibleEntries())), Listing: domain.ScopeJournal}, nil
}

// ListEntries clears any journal filter.
type ListEntries struct{}

func (ListEntries) Kind() Kind          { return KindList }
func (ListEntries) Scope() domain.Scope { return domain.ScopeJournal }

func (ListEntries) Execute(m *model.Model) (Result, error) {
	m.FilterEntries(nil)
	return Result{Feedback: "Listed all entries", Listing: domain.ScopeJournal}, nil
}

// ClearJournal empties the journal.
type ClearJournal struct{}

func (ClearJournal) Kind() Kind          { return KindClear }
func (ClearJournal) Scope() domain.Scope { return domain.ScopeJournal }

func (ClearJournal) Execute(m *model.Model) (Result, error) {
	m.Journal().Clear()
	m.FilterEntries(nil)
	return Result{Feedback: "Journal has been cleared!"}, nil
}
