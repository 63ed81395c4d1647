package command

import (
	"fmt"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/model"
)

// AddContact appends a new person to the address book.
type AddContact struct {
	Person domain.Person
}

func (AddContact) Kind() Kind          { return KindAdd }
func (AddContact) Scope() domain.Scope { return domain.ScopeContacts }

func (c AddContact) Execute(m *model.Model) (Result, error) {
	if err := m.Contacts().Add(c.Person); err != nil {
		return Result{}, listFailure(err, MessageDuplicateContact)
	}
	return Result{Feedback: "New contact added: " + FormatPerson(c.Person)}, nil
}

// ContactEdit lists the fields an edit replaces. Unset fields keep their
// current value.
type ContactEdit struct {
	Name    Update[domain.Name]
	Phone   Update[domain.Phone]
	Email   Update[domain.Email]
	Address Update[domain.Address]
	Tags    Update[domain.TagSet]
}

// Any reports whether at least one field is replaced.
func (e ContactEdit) Any() bool {
	return e.Name.IsSet() || e.Phone.IsSet() || e.Email.IsSet() || e.Address.IsSet() || e.Tags.IsSet()
}

// Apply returns p with the edit applied. The identifier never changes.
func (e ContactEdit) Apply(p domain.Person) domain.Person {
	return domain.Person{
		ID:      p.ID,
		Name:    e.Name.Apply(p.Name),
		Phone:   e.Phone.Apply(p.Phone),
		Email:   e.Email.Apply(p.Email),
		Address: e.Address.Apply(p.Address),
		Tags:    e.Tags.Apply(p.Tags),
	}
}

// EditContact changes the contact shown at Index.
type EditContact struct {
	Index domain.Index
	Edit  ContactEdit
}

func (EditContact) Kind() Kind          { return KindEdit }
func (EditContact) Scope() domain.Scope { return domain.ScopeContacts }

func (c EditContact) Execute(m *model.Model) (Result, error) {
	target, err := m.ContactAt(c.Index)
	if err != nil {
		return Result{}, listFailure(err, MessageDuplicateContact)
	}
	edited := c.Edit.Apply(target)
	if err := m.Contacts().SetID(target.ID, edited); err != nil {
		return Result{}, listFailure(err, MessageDuplicateContact)
	}
	return Result{Feedback: "Edited contact: " + FormatPerson(edited)}, nil
}

// DeleteContact removes the contact shown at Index.
type DeleteContact struct {
	Index domain.Index
}

func (DeleteContact) Kind() Kind          { return KindDelete }
func (DeleteContact) Scope() domain.Scope { return domain.ScopeContacts }

func (c DeleteContact) Execute(m *model.Model) (Result, error) {
	target, err := m.ContactAt(c.Index)
	if err != nil {
		return Result{}, listFailure(err, MessageDuplicateContact)
	}
	if _, err := m.Contacts().RemoveID(target.ID); err != nil {
		return Result{}, listFailure(err, MessageDuplicateContact)
	}
	return Result{Feedback: "Deleted contact: " + FormatPerson(target)}, nil
}

// FindContacts narrows the visible contacts to those matching Query.
type FindContacts struct {
	Query domain.ContactQuery
}

func (FindContacts) Kind() Kind          { return KindFind }
func (FindContacts) Scope() domain.Scope { return domain.ScopeContacts }

func (c FindContacts) Execute(m *model.Model) (Result, error) {
	m.FilterContacts(c.Query.Matches)
	return Result{Feedback: fmt.Sprintf("%d persons listed!", len(m.VisibleContacts())), Listing: domain.ScopeContacts}, nil
}

// ListContacts clears any contact filter.
type ListContacts struct{}

func (ListContacts) Kind() Kind          { return KindList }
func (ListContacts) Scope() domain.Scope { return domain.ScopeContacts }

func (ListContacts) Execute(m *model.Model) (Result, error) {
	m.FilterContacts(nil)
	return Result{Feedback: "Listed all contacts", Listing: domain.ScopeContacts}, nil
}

// ClearContacts empties the address book.
type ClearContacts struct{}

func (ClearContacts) Kind() Kind          { return KindClear }
func (ClearContacts) Scope() domain.Scope { return domain.ScopeContacts }

func (ClearContacts) Execute(m *model.Model) (Result, error) {
	m.Contacts().Clear()
	m.FilterContacts(nil)
	return Result{Feedback: "Address book has been cleared!"}, nil
}
