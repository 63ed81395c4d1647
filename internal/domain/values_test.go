package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName_TrimsAndIsStable(t *testing.T) {
	n, err := NewName("  Alex Yeoh  ")
	require.NoError(t, err)
	assert.Equal(t, "Alex Yeoh", n.String())

	again, err := NewName(n.String())
	require.NoError(t, err)
	assert.True(t, n.Equal(again))
}

func TestNewName_RejectsWithConstraintMessage(t *testing.T) {
	_, err := NewName("***")
	require.Error(t, err)

	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, FieldName, ce.Field)
	assert.Equal(t, NameConstraints, err.Error())
}

func TestOptionalSentinels(t *testing.T) {
	assert.True(t, EmptyPhone.IsEmpty())
	assert.True(t, EmptyEmail.IsEmpty())
	assert.True(t, EmptyAddress.IsEmpty())
	assert.True(t, NullDescription.IsNull())

	p, err := NewPhone(" 98765432 ")
	require.NoError(t, err)
	assert.False(t, p.IsEmpty())
	assert.Equal(t, "98765432", p.String())
}

func TestConstructorsReportTheirField(t *testing.T) {
	tests := []struct {
		field   string
		message string
		build   func() error
	}{
		{FieldPhone, PhoneConstraints, func() error { _, err := NewPhone("12"); return err }},
		{FieldEmail, EmailConstraints, func() error { _, err := NewEmail("nope"); return err }},
		{FieldAddress, AddressConstraints, func() error { _, err := NewAddress(" "); return err }},
		{FieldTag, TagConstraints, func() error { _, err := NewTag("bad tag!"); return err }},
		{FieldDate, DateConstraints, func() error { _, err := NewDate("31-02-2024"); return err }},
		{FieldDescription, DescriptionConstraints, func() error { _, err := NewDescription(""); return err }},
		{FieldScope, ScopeConstraints, func() error { _, err := NewScope("x"); return err }},
		{FieldIndex, IndexConstraints, func() error { _, err := NewIndex(0); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := tt.build()
			var ce *ConstraintError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
			assert.Equal(t, tt.message, ce.Message)
		})
	}
}

func TestTagSet_CollapsesDuplicates(t *testing.T) {
	a, _ := NewTag("friends")
	b, _ := NewTag("work")
	dup, _ := NewTag("friends")

	set := NewTagSet(b, a, dup)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(a))
	if diff := cmp.Diff([]string{"friends", "work"}, set.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, set.Equal(NewTagSet(a, b)))
	assert.False(t, set.Equal(NewTagSet(a)))
}

func TestNewDate(t *testing.T) {
	d, err := NewDate(" 29-02-2024 ")
	require.NoError(t, err)
	assert.Equal(t, "29-02-2024", d.String())
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d.Time())

	_, err = NewDate("31-02-2024")
	assert.EqualError(t, err, DateConstraints)
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	d := DateOf(time.Date(2024, time.March, 5, 23, 59, 0, 0, loc))
	assert.Equal(t, "05-03-2024", d.String())
}

func TestDescription_NullIsDistinctFromText(t *testing.T) {
	d, err := NewDescription("  lunch  ")
	require.NoError(t, err)
	v, ok := d.Value()
	assert.True(t, ok)
	assert.Equal(t, "lunch", v)
	assert.False(t, d.Equal(NullDescription))
}

func TestNewScope(t *testing.T) {
	s, err := NewScope("c")
	require.NoError(t, err)
	assert.Equal(t, ScopeContacts, s)

	s, err = NewScope(" j ")
	require.NoError(t, err)
	assert.Equal(t, ScopeJournal, s)

	for _, raw := range []string{"x", "", "C", "cj", "contacts"} {
		_, err := NewScope(raw)
		assert.EqualError(t, err, ScopeConstraints, "NewScope(%q)", raw)
	}
}

func TestIndex(t *testing.T) {
	idx, err := NewIndex(3)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.OneBased())
	assert.Equal(t, 2, idx.ZeroBased())

	_, err = NewIndex(-1)
	assert.EqualError(t, err, IndexConstraints)
	assert.Panics(t, func() { MustIndex(0) })
}
