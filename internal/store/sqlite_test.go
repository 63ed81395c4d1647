package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/domain/domaintest"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "aj.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePerson(t *testing.T) domain.Person {
	t.Helper()
	name, err := domain.NewName("Alex Yeoh")
	require.NoError(t, err)
	phone, err := domain.NewPhone("87438807")
	require.NoError(t, err)
	tag, err := domain.NewTag("friends")
	require.NoError(t, err)
	return domain.Person{ID: domaintest.ID(1), Name: name, Phone: phone, Tags: domain.NewTagSet(tag)}
}

func sampleEntry(t *testing.T, withDescription bool) domain.JournalEntry {
	t.Helper()
	title, err := domain.NewName("Standup")
	require.NoError(t, err)
	date, err := domain.NewDate("04-03-2024")
	require.NoError(t, err)
	contact, err := domain.NewName("Bernice")
	require.NoError(t, err)
	e := domain.JournalEntry{
		ID:       domaintest.ID(2),
		Title:    title,
		Date:     date,
		Contacts: []domain.Person{domain.NewContactRef(contact, domaintest.ID(3))},
		Tags:     domain.NewTagSet(),
	}
	if withDescription {
		e.Description, err = domain.NewDescription("Sprint review")
		require.NoError(t, err)
	}
	return e
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	person := samplePerson(t)
	entry := sampleEntry(t, false)

	require.NoError(t, s.Save([]domain.Person{person}, []domain.JournalEntry{entry}))

	persons, entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, persons, 1)
	require.Len(t, entries, 1)

	got := persons[0]
	assert.Equal(t, person.ID, got.ID)
	assert.True(t, person.Name.Equal(got.Name))
	assert.True(t, person.Phone.Equal(got.Phone))
	assert.True(t, got.Email.IsEmpty())
	assert.True(t, got.Address.IsEmpty())
	assert.True(t, person.Tags.Equal(got.Tags))

	gotEntry := entries[0]
	assert.Equal(t, entry.ID, gotEntry.ID)
	assert.Equal(t, "04-03-2024", gotEntry.Date.String())
	assert.True(t, gotEntry.Description.IsNull())
	assert.Equal(t, []string{"Bernice"}, gotEntry.ContactNames())
	assert.Equal(t, domaintest.ID(3), gotEntry.Contacts[0].ID)
}

func TestSave_ReplacesPreviousContentAndKeepsOrder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]domain.Person{samplePerson(t)}, []domain.JournalEntry{sampleEntry(t, true)}))

	a, _ := domain.NewName("Zed")
	b, _ := domain.NewName("Amy")
	next := []domain.Person{
		{ID: domaintest.ID(10), Name: a, Tags: domain.NewTagSet()},
		{ID: domaintest.ID(11), Name: b, Tags: domain.NewTagSet()},
	}
	require.NoError(t, s.Save(next, nil))

	persons, entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, "Zed", persons[0].Name.String())
	assert.Equal(t, "Amy", persons[1].Name.String())
	assert.Empty(t, entries)
}

func TestSave_KeepsDescription(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(nil, []domain.JournalEntry{sampleEntry(t, true)}))

	_, entries, err := s.Load()
	require.NoError(t, err)
	desc, ok := entries[0].Description.Value()
	assert.True(t, ok)
	assert.Equal(t, "Sprint review", desc)
}

func TestLoad_RejectsCorruptRow(t *testing.T) {
	s := newTestStore(t)
	_, err := s.db.Exec(
		"INSERT INTO persons (id, position, name, phone) VALUES (?, 0, 'Alex', '12')",
		domaintest.ID(1).String(),
	)
	require.NoError(t, err)

	_, _, err = s.Load()
	require.Error(t, err)
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.FieldPhone, ce.Field)
}

func TestSave_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entry_tags").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	s := &Store{db: db}
	err = s.Save([]domain.Person{samplePerson(t)}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear entry_tags")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_PropagatesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, phone, email, address FROM persons").
		WillReturnError(errors.New("no such table: persons"))

	s := &Store{db: db}
	_, _, err = s.Load()
	assert.ErrorContains(t, err, "list persons")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_RejectsDuplicateEntryContacts(t *testing.T) {
	s := newTestStore(t)
	entry := sampleEntry(t, false)
	require.NoError(t, s.Save(nil, []domain.JournalEntry{entry}))

	_, err := s.db.Exec(
		"INSERT INTO entry_contacts (entry_id, position, person_id, name) VALUES (?, 1, ?, 'BERNICE')",
		entry.ID.String(), domaintest.ID(4).String(),
	)
	require.NoError(t, err)

	_, _, err = s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, uniquelist.ErrDuplicate)
}
