package domain

import (
	"sort"
	"strings"
	"time"
)

// Name is a validated person name or journal entry title.
type Name struct {
	value string
}

// NewName trims raw and validates it.
func NewName(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if !IsValidName(s) {
		return Name{}, constraint(FieldName, NameConstraints)
	}
	return Name{value: s}, nil
}

func (n Name) String() string    { return n.value }
func (n Name) Equal(o Name) bool { return n.value == o.value }

// Phone is a validated phone number. The zero value is EmptyPhone.
type Phone struct {
	value string
}

// EmptyPhone marks a phone number deliberately left blank.
var EmptyPhone = Phone{}

// NewPhone trims raw and validates it.
func NewPhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if !IsValidPhone(s) {
		return Phone{}, constraint(FieldPhone, PhoneConstraints)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string     { return p.value }
func (p Phone) IsEmpty() bool      { return p.value == "" }
func (p Phone) Equal(o Phone) bool { return p.value == o.value }

// Email is a validated email address. The zero value is EmptyEmail.
type Email struct {
	value string
}

// EmptyEmail marks an email deliberately left blank.
var EmptyEmail = Email{}

// NewEmail trims raw and validates it.
func NewEmail(raw string) (Email, error) {
	s := strings.TrimSpace(raw)
	if !IsValidEmail(s) {
		return Email{}, constraint(FieldEmail, EmailConstraints)
	}
	return Email{value: s}, nil
}

func (e Email) String() string     { return e.value }
func (e Email) IsEmpty() bool      { return e.value == "" }
func (e Email) Equal(o Email) bool { return e.value == o.value }

// Address is a validated postal address. The zero value is EmptyAddress.
type Address struct {
	value string
}

// EmptyAddress marks an address deliberately left blank.
var EmptyAddress = Address{}

// NewAddress trims raw and validates it.
func NewAddress(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	if !IsValidAddress(s) {
		return Address{}, constraint(FieldAddress, AddressConstraints)
	}
	return Address{value: s}, nil
}

func (a Address) String() string       { return a.value }
func (a Address) IsEmpty() bool        { return a.value == "" }
func (a Address) Equal(o Address) bool { return a.value == o.value }

// Tag is a validated label.
type Tag struct {
	name string
}

// NewTag trims raw and validates it.
func NewTag(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if !IsValidTagName(s) {
		return Tag{}, constraint(FieldTag, TagConstraints)
	}
	return Tag{name: s}, nil
}

func (t Tag) Name() string     { return t.name }
func (t Tag) String() string   { return "[" + t.name + "]" }
func (t Tag) Equal(o Tag) bool { return t.name == o.name }

// TagSet is an immutable set of tags keyed by tag name.
type TagSet struct {
	tags map[string]Tag
}

// NewTagSet collapses duplicate names.
func NewTagSet(tags ...Tag) TagSet {
	m := make(map[string]Tag, len(tags))
	for _, t := range tags {
		m[t.name] = t
	}
	return TagSet{tags: m}
}

func (s TagSet) Len() int { return len(s.tags) }

func (s TagSet) Contains(t Tag) bool {
	_, ok := s.tags[t.name]
	return ok
}

// Sorted returns the tags ordered by name.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Names returns the sorted tag names.
func (s TagSet) Names() []string {
	sorted := s.Sorted()
	names := make([]string, len(sorted))
	for i, t := range sorted {
		names[i] = t.name
	}
	return names
}

func (s TagSet) Equal(o TagSet) bool {
	if len(s.tags) != len(o.tags) {
		return false
	}
	for name := range s.tags {
		if _, ok := o.tags[name]; !ok {
			return false
		}
	}
	return true
}

// Date is a calendar day with no time-of-day component.
type Date struct {
	day time.Time
}

// NewDate validates raw against DateLayout.
func NewDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, constraint(FieldDate, DateConstraints)
	}
	return Date{day: t}, nil
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time    { return d.day }
func (d Date) String() string     { return d.day.Format(DateLayout) }
func (d Date) Equal(o Date) bool  { return d.day.Equal(o.day) }
func (d Date) Before(o Date) bool { return d.day.Before(o.day) }

// Description is free text that may be absent. The zero value is
// NullDescription, which is kept as-is rather than defaulted.
type Description struct {
	value string
	set   bool
}

// NullDescription is a description that was never supplied.
var NullDescription = Description{}

// NewDescription trims raw and validates it.
func NewDescription(raw string) (Description, error) {
	s := strings.TrimSpace(raw)
	if !IsValidDescription(s) {
		return Description{}, constraint(FieldDescription, DescriptionConstraints)
	}
	return Description{value: s, set: true}, nil
}

// Value returns the text and whether one was supplied.
func (d Description) Value() (string, bool) { return d.value, d.set }
func (d Description) IsNull() bool          { return !d.set }
func (d Description) String() string        { return d.value }

func (d Description) Equal(o Description) bool {
	return d.set == o.set && d.value == o.value
}

// Scope selects which record family a command targets.
type Scope string

const (
	ScopeContacts Scope = "c"
	ScopeJournal  Scope = "j"
)

// NewScope accepts exactly "c" or "j" after trimming.
func NewScope(raw string) (Scope, error) {
	switch s := Scope(strings.TrimSpace(raw)); s {
	case ScopeContacts, ScopeJournal:
		return s, nil
	default:
		return "", constraint(FieldScope, ScopeConstraints)
	}
}

func (s Scope) String() string { return string(s) }
