package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

var unsignedRe = regexp.MustCompile(`^[0-9]+$`)

// ParseIndex parses a 1-based index. Every rejection, whether the input is
// not a number, zero, signed or too large, carries the same message.
func ParseIndex(raw string) (domain.Index, error) {
	s := strings.TrimSpace(raw)
	invalid := &Error{Kind: ErrInvalidIndex, Message: domain.IndexConstraints}
	if !unsignedRe.MatchString(s) {
		return domain.Index{}, invalid
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return domain.Index{}, invalid
	}
	idx, err := domain.NewIndex(n)
	if err != nil {
		return domain.Index{}, invalid
	}
	return idx, nil
}

// ParseName parses a required name or title.
func ParseName(raw string) (domain.Name, error) {
	n, err := domain.NewName(raw)
	if err != nil {
		return domain.Name{}, fieldError(ErrFormat, err)
	}
	return n, nil
}

// ParsePhone yields EmptyPhone when f is absent.
func ParsePhone(f Field) (domain.Phone, error) {
	if f.IsAbsent() {
		return domain.EmptyPhone, nil
	}
	p, err := domain.NewPhone(f.Raw)
	if err != nil {
		return domain.Phone{}, fieldError(ErrFormat, err)
	}
	return p, nil
}

// ParseEmail yields EmptyEmail when f is absent.
func ParseEmail(f Field) (domain.Email, error) {
	if f.IsAbsent() {
		return domain.EmptyEmail, nil
	}
	e, err := domain.NewEmail(f.Raw)
	if err != nil {
		return domain.Email{}, fieldError(ErrFormat, err)
	}
	return e, nil
}

// ParseAddress yields EmptyAddress when f is absent.
func ParseAddress(f Field) (domain.Address, error) {
	if f.IsAbsent() {
		return domain.EmptyAddress, nil
	}
	a, err := domain.NewAddress(f.Raw)
	if err != nil {
		return domain.Address{}, fieldError(ErrFormat, err)
	}
	return a, nil
}

// ParseTag parses a single tag name.
func ParseTag(raw string) (domain.Tag, error) {
	t, err := domain.NewTag(raw)
	if err != nil {
		return domain.Tag{}, fieldError(ErrFormat, err)
	}
	return t, nil
}

// ParseTags stops at the first invalid tag and returns no set at all.
func ParseTags(raws []string) (domain.TagSet, error) {
	tags := make([]domain.Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := ParseTag(raw)
		if err != nil {
			return domain.TagSet{}, err
		}
		tags = append(tags, t)
	}
	return domain.NewTagSet(tags...), nil
}

// ParseContacts builds name-only people from raw names, each with a fresh
// identifier from ids. A name repeated in the batch, ignoring case, is
// rejected as a duplicate.
func ParseContacts(raws []string, ids domain.IDSource) (*uniquelist.List[domain.Person], error) {
	contacts := uniquelist.New(domain.SamePerson)
	for _, raw := range raws {
		n, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		if err := contacts.Add(domain.NewContactRef(n, ids.NewID())); err != nil {
			if errors.Is(err, uniquelist.ErrDuplicate) {
				return nil, duplicateContact(err)
			}
			return nil, err
		}
	}
	return contacts, nil
}

// ParseDate yields the current day, per now, when f is absent.
func ParseDate(f Field, now func() time.Time) (domain.Date, error) {
	if f.IsAbsent() {
		return domain.DateOf(now()), nil
	}
	d, err := domain.NewDate(f.Raw)
	if err != nil {
		return domain.Date{}, fieldError(ErrFormat, err)
	}
	return d, nil
}

// ParseDescription keeps an absent description as NullDescription.
func ParseDescription(f Field) (domain.Description, error) {
	if f.IsAbsent() {
		return domain.NullDescription, nil
	}
	d, err := domain.NewDescription(f.Raw)
	if err != nil {
		return domain.Description{}, fieldError(ErrFormat, err)
	}
	return d, nil
}

// ParseScope accepts "c" or "j" after trimming.
func ParseScope(raw string) (domain.Scope, error) {
	s, err := domain.NewScope(raw)
	if err != nil {
		return "", fieldError(ErrUnknownScope, err)
	}
	return s, nil
}
