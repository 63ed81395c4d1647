package domain

import (
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Person is a contact in the address book
type Person struct {
	ID      uuid.UUID
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Tags    TagSet
}

// NewContactRef builds a name-only person, as used for the participants of a
// journal entry.
func NewContactRef(name Name, id uuid.UUID) Person {
	return Person{ID: id, Name: name, Tags: NewTagSet()}
}

func (p Person) EntityID() uuid.UUID { return p.ID }

// JournalEntry is a dated note, optionally linked to contacts
type JournalEntry struct {
	ID          uuid.UUID
	Title       Name
	Date        Date
	Description Description
	Contacts    []Person
	Tags        TagSet
}

func (e JournalEntry) EntityID() uuid.UUID { return e.ID }

// ContactNames returns the participant names in their stored order.
func (e JournalEntry) ContactNames() []string {
	names := make([]string, len(e.Contacts))
	for i, c := range e.Contacts {
		names[i] = c.Name.String()
	}
	return names
}

// SamePerson reports whether two people are the same contact: their names
// match ignoring case. Other fields are not compared.
func SamePerson(a, b Person) bool {
	return fold(a.Name.String()) == fold(b.Name.String())
}

// SameEntry reports whether two entries record the same event: equal titles
// ignoring case, on the same date.
func SameEntry(a, b JournalEntry) bool {
	return a.Date.Equal(b.Date) && fold(a.Title.String()) == fold(b.Title.String())
}

// fold returns the caseless form of s. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Fold exposes the caseless form used by the equivalences for keyword search.
func Fold(s string) string {
	return fold(s)
}
