package command

import (
	"strings"

	"github.com/pbaille/addressjournal/internal/domain"
)

// FormatPerson renders a person on one line, skipping blank fields.
func FormatPerson(p domain.Person) string {
	var sb strings.Builder
	sb.WriteString(p.Name.String())
	if !p.Phone.IsEmpty() {
		sb.WriteString("; Phone: " + p.Phone.String())
	}
	if !p.Email.IsEmpty() {
		sb.WriteString("; Email: " + p.Email.String())
	}
	if !p.Address.IsEmpty() {
		sb.WriteString("; Address: " + p.Address.String())
	}
	writeTags(&sb, p.Tags)
	return sb.String()
}

// FormatEntry renders a journal entry on one line, skipping blank fields.
func FormatEntry(e domain.JournalEntry) string {
	var sb strings.Builder
	sb.WriteString(e.Title.String())
	sb.WriteString("; Date: " + e.Date.String())
	if !e.Description.IsNull() {
		sb.WriteString("; Description: " + e.Description.String())
	}
	if len(e.Contacts) > 0 {
		sb.WriteString("; Contacts: " + strings.Join(e.ContactNames(), ", "))
	}
	writeTags(&sb, e.Tags)
	return sb.String()
}

func writeTags(sb *strings.Builder, tags domain.TagSet) {
	if tags.Len() == 0 {
		return
	}
	sb.WriteString("; Tags: ")
	for _, t := range tags.Sorted() {
		sb.WriteString(t.String())
	}
}
