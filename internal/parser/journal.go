package parser

import (
	"strings"

	"github.com/pbaille/addressjournal/internal/command"
	"github.com/pbaille/addressjournal/internal/domain"
)

var journalPrefixes = []Prefix{PrefixName, PrefixDate, PrefixDescription, PrefixContact, PrefixTag}

func parseAddEntry(p *Parser, args ArgMultimap) (command.Command, error) {
	if args.Preamble() != "" || !args.Has(PrefixName) {
		return nil, formatError(usage(command.KindAdd, domain.ScopeJournal))
	}

	title, err := ParseName(args.Field(PrefixName).Raw)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(args.Field(PrefixDate), p.now)
	if err != nil {
		return nil, err
	}
	desc, err := ParseDescription(args.Field(PrefixDescription))
	if err != nil {
		return nil, err
	}
	contacts, err := ParseContacts(args.All(PrefixContact), p.ids)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(args.All(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.AddEntry{Entry: domain.JournalEntry{
		ID:          p.ids.NewID(),
		Title:       title,
		Date:        date,
		Description: desc,
		Contacts:    contacts.Items(),
		Tags:        tags,
	}}, nil
}

func parseEditEntry(p *Parser, args ArgMultimap) (command.Command, error) {
	if args.Preamble() == "" {
		return nil, formatError(usage(command.KindEdit, domain.ScopeJournal))
	}
	idx, err := ParseIndex(args.Preamble())
	if err != nil {
		return nil, err
	}

	var edit command.EntryEdit
	if f := args.Field(PrefixName); !f.IsAbsent() {
		title, err := ParseName(f.Raw)
		if err != nil {
			return nil, err
		}
		edit.Title = command.Set(title)
	}
	if f := args.Field(PrefixDate); !f.IsAbsent() {
		date, err := ParseDate(f, p.now)
		if err != nil {
			return nil, err
		}
		edit.Date = command.Set(date)
	}
	if edit.Description, err = clearable(args.Field(PrefixDescription), domain.NullDescription, ParseDescription); err != nil {
		return nil, err
	}
	if raws := args.All(PrefixContact); len(raws) == 1 && strings.TrimSpace(raws[0]) == "" {
		edit.Contacts = command.Set([]domain.Person{})
	} else if len(raws) > 0 {
		contacts, err := ParseContacts(raws, p.ids)
		if err != nil {
			return nil, err
		}
		edit.Contacts = command.Set(contacts.Items())
	}
	if edit.Tags, err = tagsUpdate(args.All(PrefixTag)); err != nil {
		return nil, err
	}

	if !edit.Any() {
		return nil, &Error{Kind: ErrFormat, Message: MessageNoFieldsEdited}
	}
	return command.EditEntry{Index: idx, Edit: edit}, nil
}

func parseDeleteEntry(_ *Parser, args ArgMultimap) (command.Command, error) {
	idx, err := deleteIndex(args, domain.ScopeJournal)
	if err != nil {
		return nil, err
	}
	return command.DeleteEntry{Index: idx}, nil
}

func parseFindEntries(p *Parser, args ArgMultimap) (command.Command, error) {
	bad := formatError(usage(command.KindFind, domain.ScopeJournal))
	if args.Preamble() != "" {
		return nil, bad
	}

	var q domain.EntryQuery
	for prefix, dst := range map[Prefix]*string{
		PrefixName:        &q.Title,
		PrefixDescription: &q.Description,
		PrefixContact:     &q.Contact,
	} {
		switch f := args.Field(prefix); f.Presence {
		case Blank:
			return nil, bad
		case Present:
			*dst = strings.TrimSpace(f.Raw)
		}
	}
	if f := args.Field(PrefixDate); !f.IsAbsent() {
		date, err := ParseDate(f, p.now)
		if err != nil {
			return nil, err
		}
		q.Date, q.HasDate = date, true
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
	return command.FindEntries{Query: q}, nil
}

func parseListEntries(*Parser, ArgMultimap) (command.Command, error) {
	return command.ListEntries{}, nil
}

func parseClearJournal(*Parser, ArgMultimap) (command.Command, error) {
	return command.ClearJournal{}, nil
}
