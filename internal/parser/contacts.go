package parser

import (
	"strings"

	"github.com/pbaille/addressjournal/internal/command"
	"github.com/pbaille/addressjournal/internal/domain"
)

var contactPrefixes = []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag}

func usage(k command.Kind, s domain.Scope) string {
	return command.Usage(k, s)
}

func parseAddContact(p *Parser, args ArgMultimap) (command.Command, error) {
	if args.Preamble() != "" || !args.Has(PrefixName) {
		return nil, formatError(usage(command.KindAdd, domain.ScopeContacts))
	}

	name, err := ParseName(args.Field(PrefixName).Raw)
	if err != nil {
		return nil, err
	}
	phone, err := ParsePhone(args.Field(PrefixPhone))
	if err != nil {
		return nil, err
	}
	email, err := ParseEmail(args.Field(PrefixEmail))
	if err != nil {
		return nil, err
	}
	address, err := ParseAddress(args.Field(PrefixAddress))
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(args.All(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.AddContact{Person: domain.Person{
		ID:      p.ids.NewID(),
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags,
	}}, nil
}

func parseEditContact(_ *Parser, args ArgMultimap) (command.Command, error) {
	if args.Preamble() == "" {
		return nil, formatError(usage(command.KindEdit, domain.ScopeContacts))
	}
	idx, err := ParseIndex(args.Preamble())
	if err != nil {
		return nil, err
	}

	var edit command.ContactEdit
	if f := args.Field(PrefixName); !f.IsAbsent() {
		name, err := ParseName(f.Raw)
		if err != nil {
			return nil, err
		}
		edit.Name = command.Set(name)
	}
	if edit.Phone, err = clearable(args.Field(PrefixPhone), domain.EmptyPhone, ParsePhone); err != nil {
		return nil, err
	}
	if edit.Email, err = clearable(args.Field(PrefixEmail), domain.EmptyEmail, ParseEmail); err != nil {
		return nil, err
	}
	if edit.Address, err = clearable(args.Field(PrefixAddress), domain.EmptyAddress, ParseAddress); err != nil {
		return nil, err
	}
	if edit.Tags, err = tagsUpdate(args.All(PrefixTag)); err != nil {
		return nil, err
	}

	if !edit.Any() {
		return nil, &Error{Kind: ErrFormat, Message: MessageNoFieldsEdited}
	}
	return command.EditContact{Index: idx, Edit: edit}, nil
}

func parseDeleteContact(_ *Parser, args ArgMultimap) (command.Command, error) {
	idx, err := deleteIndex(args, domain.ScopeContacts)
	if err != nil {
		return nil, err
	}
	return command.DeleteContact{Index: idx}, nil
}

func parseFindContacts(_ *Parser, args ArgMultimap) (command.Command, error) {
	bad := formatError(usage(command.KindFind, domain.ScopeContacts))
	if args.Preamble() != "" {
		return nil, bad
	}

	var q domain.ContactQuery
	for prefix, dst := range map[Prefix]*string{
		PrefixName:    &q.Name,
		PrefixPhone:   &q.Phone,
		PrefixEmail:   &q.Email,
		PrefixAddress: &q.Address,
	} {
		switch f := args.Field(prefix); f.Presence {
		case Blank:
			return nil, bad
		case Present:
			*dst = strings.TrimSpace(f.Raw)
		}
	}
	for _, raw := range args.All(PrefixTag) {
		t, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}
		q.Tags = append(q.Tags, t)
	}

	if q.IsZero() {
		return nil, bad
	}
	return command.FindContacts{Query: q}, nil
}

func parseListContacts(*Parser, ArgMultimap) (command.Command, error) {
	return command.ListContacts{}, nil
}

func parseClearContacts(*Parser, ArgMultimap) (command.Command, error) {
	return command.ClearContacts{}, nil
}

// clearable resolves an optional field of an edit: absent keeps the current
// value, blank resets it to empty, anything else must validate.
func clearable[T any](f Field, empty T, parse func(Field) (T, error)) (command.Update[T], error) {
	switch f.Presence {
	case Absent:
		return command.Update[T]{}, nil
	case Blank:
		return command.Set(empty), nil
	}
	v, err := parse(f)
	if err != nil {
		return command.Update[T]{}, err
	}
	return command.Set(v), nil
}

// tagsUpdate treats a single blank t/ as "remove all tags".
func tagsUpdate(raws []string) (command.Update[domain.TagSet], error) {
	switch {
	case len(raws) == 0:
		return command.Update[domain.TagSet]{}, nil
	case len(raws) == 1 && strings.TrimSpace(raws[0]) == "":
		return command.Set(domain.NewTagSet()), nil
	}
	tags, err := ParseTags(raws)
	if err != nil {
		return command.Update[domain.TagSet]{}, err
	}
	return command.Set(tags), nil
}

func deleteIndex(args ArgMultimap, scope domain.Scope) (domain.Index, error) {
	if args.Preamble() == "" {
		return domain.Index{}, formatError(usage(command.KindDelete, scope))
	}
	return ParseIndex(args.Preamble())
}
