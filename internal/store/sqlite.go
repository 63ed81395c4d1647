// Package store persists contacts and journal entries in SQLite.
//
// The store only moves plain entities in and out; every value read back is
// validated again through the domain constructors, so a hand-edited or
// corrupt database cannot smuggle invalid data into the model.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

//go:embed schema.sql
var schema string

// Store handles database operations
type Store struct {
	db *sql.DB
}

// New opens the database at dbPath and creates the schema if needed
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces everything stored with persons and entries, in order.
// Either all of it is written or nothing changes.
func (s *Store) Save(persons []domain.Person, entries []domain.JournalEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"entry_tags", "entry_contacts", "entries", "person_tags", "persons"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, p := range persons {
		_, err := tx.Exec(
			"INSERT INTO persons (id, position, name, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID.String(), i, p.Name.String(), p.Phone.String(), p.Email.String(), p.Address.String(),
		)
		if err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		for _, tag := range p.Tags.Names() {
			if _, err := tx.Exec("INSERT INTO person_tags (person_id, tag) VALUES (?, ?)", p.ID.String(), tag); err != nil {
				return fmt.Errorf("insert person tag: %w", err)
			}
		}
	}

	for i, e := range entries {
		var desc sql.NullString
		desc.String, desc.Valid = e.Description.Value()
		_, err := tx.Exec(
			"INSERT INTO entries (id, position, title, date, description) VALUES (?, ?, ?, ?, ?)",
			e.ID.String(), i, e.Title.String(), e.Date.String(), desc,
		)
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		for j, c := range e.Contacts {
			_, err := tx.Exec(
				"INSERT INTO entry_contacts (entry_id, position, person_id, name) VALUES (?, ?, ?, ?)",
				e.ID.String(), j, c.ID.String(), c.Name.String(),
			)
			if err != nil {
				return fmt.Errorf("insert entry contact: %w", err)
			}
		}
		for _, tag := range e.Tags.Names() {
			if _, err := tx.Exec("INSERT INTO entry_tags (entry_id, tag) VALUES (?, ?)", e.ID.String(), tag); err != nil {
				return fmt.Errorf("insert entry tag: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load returns every stored person and entry in their saved order
func (s *Store) Load() ([]domain.Person, []domain.JournalEntry, error) {
	persons, err := s.loadPersons()
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.loadEntries()
	if err != nil {
		return nil, nil, err
	}
	return persons, entries, nil
}

func (s *Store) loadPersons() ([]domain.Person, error) {
	rows, err := s.db.Query("SELECT id, name, phone, email, address FROM persons ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		var id, name, phone, email, address string
		if err := rows.Scan(&id, &name, &phone, &email, &address); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		p, err := decodePerson(id, name, phone, email, address)
		if err != nil {
			return nil, fmt.Errorf("person %s: %w", id, err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	for i := range persons {
		tags, err := s.loadTags("SELECT tag FROM person_tags WHERE person_id = ?", persons[i].ID)
		if err != nil {
			return nil, err
		}
		persons[i].Tags = tags
	}
	return persons, nil
}

func (s *Store) loadEntries() ([]domain.JournalEntry, error) {
	rows, err := s.db.Query("SELECT id, title, date, description FROM entries ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var id, title, date string
		var desc sql.NullString
		if err := rows.Scan(&id, &title, &date, &desc); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e, err := decodeEntry(id, title, date, desc)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", id, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	for i := range entries {
		contacts, err := s.loadEntryContacts(entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Contacts = contacts

		tags, err := s.loadTags("SELECT tag FROM entry_tags WHERE entry_id = ?", entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Tags = tags
	}
	return entries, nil
}

func (s *Store) loadEntryContacts(entryID uuid.UUID) ([]domain.Person, error) {
	rows, err := s.db.Query(
		"SELECT person_id, name FROM entry_contacts WHERE entry_id = ? ORDER BY position",
		entryID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("get entry contacts: %w", err)
	}
	defer rows.Close()

	contacts := uniquelist.New(domain.SamePerson)
	for rows.Next() {
		var rawID, rawName string
		if err := rows.Scan(&rawID, &rawName); err != nil {
			return nil, fmt.Errorf("scan entry contact: %w", err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("entry %s contact id: %w", entryID, err)
		}
		name, err := domain.NewName(rawName)
		if err != nil {
			return nil, fmt.Errorf("entry %s contact name: %w", entryID, err)
		}
		if err := contacts.Add(domain.NewContactRef(name, id)); err != nil {
			return nil, fmt.Errorf("entry %s contact %q: %w", entryID, rawName, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get entry contacts: %w", err)
	}
	return contacts.Items(), nil
}

func (s *Store) loadTags(query string, ownerID uuid.UUID) (domain.TagSet, error) {
	rows, err := s.db.Query(query, ownerID.String())
	if err != nil {
		return domain.TagSet{}, fmt.Errorf("get tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return domain.TagSet{}, fmt.Errorf("scan tag: %w", err)
		}
		t, err := domain.NewTag(raw)
		if err != nil {
			return domain.TagSet{}, fmt.Errorf("tag of %s: %w", ownerID, err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return domain.TagSet{}, fmt.Errorf("get tags: %w", err)
	}
	return domain.NewTagSet(tags...), nil
}
