package uniquelist_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/domain/domaintest"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

func person(t *testing.T, id uint64, name, phone string) domain.Person {
	t.Helper()
	n, err := domain.NewName(name)
	require.NoError(t, err)
	p := domain.Person{ID: domaintest.ID(id), Name: n, Tags: domain.NewTagSet()}
	if phone != "" {
		p.Phone, err = domain.NewPhone(phone)
		require.NoError(t, err)
	}
	return p
}

func newPeople(t *testing.T, names ...string) *uniquelist.List[domain.Person] {
	t.Helper()
	l := uniquelist.New(domain.SamePerson)
	for i, name := range names {
		require.NoError(t, l.Add(person(t, uint64(i+1), name, "")))
	}
	return l
}

func names(l *uniquelist.List[domain.Person]) []string {
	var out []string
	for _, p := range l.All() {
		out = append(out, p.Name.String())
	}
	return out
}

func TestAdd_RejectsEquivalentNotJustEqual(t *testing.T) {
	l := uniquelist.New(domain.SamePerson)
	require.NoError(t, l.Add(person(t, 1, "Alex", "111")))

	err := l.Add(person(t, 2, "Alex", "222"))
	assert.ErrorIs(t, err, uniquelist.ErrDuplicate)

	err = l.Add(person(t, 3, "alex", ""))
	assert.ErrorIs(t, err, uniquelist.ErrDuplicate)

	assert.Equal(t, 1, l.Len())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	l := newPeople(t, "Charlotte", "Alex", "Bernice")
	assert.Equal(t, []string{"Charlotte", "Alex", "Bernice"}, names(l))
}

func TestRemove_RenumbersLaterEntries(t *testing.T) {
	l := newPeople(t, "Alex", "Bernice", "Charlotte")

	removed, err := l.Remove(domain.MustIndex(2))
	require.NoError(t, err)
	assert.Equal(t, "Bernice", removed.Name.String())

	second, err := l.Get(domain.MustIndex(2))
	require.NoError(t, err)
	assert.Equal(t, "Charlotte", second.Name.String())
	assert.Equal(t, 2, l.Len())
}

func TestRemove_OutOfRangeLeavesListUnchanged(t *testing.T) {
	l := newPeople(t, "Alex", "Bernice", "Charlotte")

	_, err := l.Remove(domain.MustIndex(5))
	assert.ErrorIs(t, err, uniquelist.ErrOutOfRange)
	assert.Equal(t, []string{"Alex", "Bernice", "Charlotte"}, names(l))

	_, err = l.Get(domain.MustIndex(4))
	assert.ErrorIs(t, err, uniquelist.ErrOutOfRange)
}

func TestRemoveID(t *testing.T) {
	l := newPeople(t, "Alex", "Bernice")

	removed, err := l.RemoveID(domaintest.ID(1))
	require.NoError(t, err)
	assert.Equal(t, "Alex", removed.Name.String())

	_, err = l.RemoveID(domaintest.ID(1))
	assert.ErrorIs(t, err, uniquelist.ErrNotFound)
	assert.Equal(t, []string{"Bernice"}, names(l))
}

func TestSet_AllowsSelfButNotOthers(t *testing.T) {
	l := newPeople(t, "Alex", "Bernice")

	require.NoError(t, l.Set(domain.MustIndex(1), person(t, 1, "ALEX", "999")))
	got, err := l.GetID(domaintest.ID(1))
	require.NoError(t, err)
	assert.Equal(t, "ALEX", got.Name.String())

	err = l.Set(domain.MustIndex(1), person(t, 1, "bernice", ""))
	assert.ErrorIs(t, err, uniquelist.ErrDuplicate)

	err = l.SetID(domaintest.ID(9), person(t, 9, "Zed", ""))
	assert.ErrorIs(t, err, uniquelist.ErrNotFound)
}

func TestReplace_IsAllOrNothing(t *testing.T) {
	l := newPeople(t, "Alex")

	err := l.Replace([]domain.Person{person(t, 5, "Dan", ""), person(t, 6, "DAN", "")})
	assert.ErrorIs(t, err, uniquelist.ErrDuplicate)
	assert.Equal(t, []string{"Alex"}, names(l))

	require.NoError(t, l.Replace([]domain.Person{person(t, 5, "Dan", ""), person(t, 6, "Eve", "")}))
	assert.Equal(t, []string{"Dan", "Eve"}, names(l))

	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestItems_ReturnsCopy(t *testing.T) {
	l := newPeople(t, "Alex")
	items := l.Items()
	items[0] = person(t, 9, "Mallory", "")

	got, err := l.Get(domain.MustIndex(1))
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name.String())
}

func TestAll_StopsEarly(t *testing.T) {
	l := newPeople(t, "Alex", "Bernice", "Charlotte")
	var seen []int
	for idx := range l.All() {
		seen = append(seen, idx.OneBased())
		if idx.OneBased() == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestAdd_ConcurrentInsertersKeepUniqueness(t *testing.T) {
	l := uniquelist.New(domain.SamePerson)
	var wg sync.WaitGroup
	for i := range 20 {
		p := person(t, uint64(i+1), "Same Name", "")
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Add(p)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, l.Len())
}
