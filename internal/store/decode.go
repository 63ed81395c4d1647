package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pbaille/addressjournal/internal/domain"
)

// decodePerson rebuilds a person from stored columns. Empty optional
// columns map back to the empty sentinels.
func decodePerson(rawID, name, phone, email, address string) (domain.Person, error) {
	var p domain.Person
	var err error

	if p.ID, err = uuid.Parse(rawID); err != nil {
		return p, fmt.Errorf("id: %w", err)
	}
	if p.Name, err = domain.NewName(name); err != nil {
		return p, err
	}
	if phone != "" {
		if p.Phone, err = domain.NewPhone(phone); err != nil {
			return p, err
		}
	}
	if email != "" {
		if p.Email, err = domain.NewEmail(email); err != nil {
			return p, err
		}
	}
	if address != "" {
		if p.Address, err = domain.NewAddress(address); err != nil {
			return p, err
		}
	}
	p.Tags = domain.NewTagSet()
	return p, nil
}

// decodeEntry rebuilds an entry without its contacts and tags. A NULL
// description stays null.
func decodeEntry(rawID, title, date string, desc sql.NullString) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	var err error

	if e.ID, err = uuid.Parse(rawID); err != nil {
		return e, fmt.Errorf("id: %w", err)
	}
	if e.Title, err = domain.NewName(title); err != nil {
		return e, err
	}
	if e.Date, err = domain.NewDate(date); err != nil {
		return e, err
	}
	if desc.Valid {
		if e.Description, err = domain.NewDescription(desc.String); err != nil {
			return e, err
		}
	}
	e.Tags = domain.NewTagSet()
	return e, nil
}
