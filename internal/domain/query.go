package domain

import "strings"

// ContactQuery selects people for the find command. A person matches when
// any supplied keyword occurs in the corresponding field, ignoring case, or
// when the person carries any of the supplied tags. Empty keywords are unused.
type ContactQuery struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Tags    []Tag
}

// IsZero reports whether the query has no criteria at all.
func (q ContactQuery) IsZero() bool {
	return q.Name == "" && q.Phone == "" && q.Email == "" && q.Address == "" && len(q.Tags) == 0
}

func (q ContactQuery) Matches(p Person) bool {
	return containsFold(p.Name.String(), q.Name) ||
		containsFold(p.Phone.String(), q.Phone) ||
		containsFold(p.Email.String(), q.Email) ||
		containsFold(p.Address.String(), q.Address) ||
		hasAnyTag(p.Tags, q.Tags)
}

// EntryQuery selects journal entries for the find command, with the same
// any-criterion semantics as ContactQuery. Contact matches against the names
// of the entry's participants.
type EntryQuery struct {
	Title       string
	Description string
	Contact     string
	Date        Date
	HasDate     bool
	Tags        []Tag
}

func (q EntryQuery) IsZero() bool {
	return q.Title == "" && q.Description == "" && q.Contact == "" && !q.HasDate && len(q.Tags) == 0
}

func (q EntryQuery) Matches(e JournalEntry) bool {
	if containsFold(e.Title.String(), q.Title) || containsFold(e.Description.String(), q.Description) {
		return true
	}
	if q.HasDate && e.Date.Equal(q.Date) {
		return true
	}
	for _, c := range e.Contacts {
		if containsFold(c.Name.String(), q.Contact) {
			return true
		}
	}
	return hasAnyTag(e.Tags, q.Tags)
}

func containsFold(field, keyword string) bool {
	if keyword == "" || field == "" {
		return false
	}
	return strings.Contains(fold(field), fold(keyword))
}

func hasAnyTag(set TagSet, tags []Tag) bool {
	for _, t := range tags {
		if set.Contains(t) {
			return true
		}
	}
	return false
}
