// Package parser turns raw command lines into validated commands.
//
// A line reads WORD [in/SCOPE] [PREAMBLE] [PREFIX/VALUE]... . The command
// word is looked up first, so an unknown word is reported before anything
// else; then the scope picks the contacts or journal family, and the
// matching command parser validates every present field. Parsing is pure:
// the only inputs beyond the line are the identifier source and the clock.
package parser

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pbaille/addressjournal/internal/command"
	"github.com/pbaille/addressjournal/internal/domain"
)

type parseFunc func(p *Parser, args ArgMultimap) (command.Command, error)

type route struct {
	kind  command.Kind
	scope domain.Scope
}

type handler struct {
	prefixes []Prefix
	parse    parseFunc
}

// Parser holds the dispatch table and the capabilities parsers draw on.
type Parser struct {
	ids   domain.IDSource
	now   func() time.Time
	table map[route]handler
}

// Option configures a Parser.
type Option func(*Parser)

// WithIDSource sets where new entities get their identifiers.
func WithIDSource(ids domain.IDSource) Option {
	return func(p *Parser) { p.ids = ids }
}

// WithClock sets the clock used for dates left out by the user.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// New builds a Parser. It panics if any scoped command kind lacks a parser
// for either scope, so a new kind cannot ship half-wired.
func New(opts ...Option) *Parser {
	p := &Parser{
		ids: domain.RandomIDs,
		now: time.Now,
		table: map[route]handler{
			{command.KindAdd, domain.ScopeContacts}:    {contactPrefixes, parseAddContact},
			{command.KindEdit, domain.ScopeContacts}:   {contactPrefixes, parseEditContact},
			{command.KindDelete, domain.ScopeContacts}: {nil, parseDeleteContact},
			{command.KindFind, domain.ScopeContacts}:   {contactPrefixes, parseFindContacts},
			{command.KindList, domain.ScopeContacts}:   {nil, parseListContacts},
			{command.KindClear, domain.ScopeContacts}:  {nil, parseClearContacts},

			{command.KindAdd, domain.ScopeJournal}:    {journalPrefixes, parseAddEntry},
			{command.KindEdit, domain.ScopeJournal}:   {journalPrefixes, parseEditEntry},
			{command.KindDelete, domain.ScopeJournal}: {nil, parseDeleteEntry},
			{command.KindFind, domain.ScopeJournal}:   {journalPrefixes, parseFindEntries},
			{command.KindList, domain.ScopeJournal}:   {nil, parseListEntries},
			{command.KindClear, domain.ScopeJournal}:  {nil, parseClearJournal},
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, k := range command.Kinds() {
		if !k.Scoped() {
			continue
		}
		for _, s := range []domain.Scope{domain.ScopeContacts, domain.ScopeJournal} {
			if _, ok := p.table[route{k, s}]; !ok {
				panic(fmt.Sprintf("parser: no parser registered for %q in scope %q", k.Word(), s))
			}
		}
	}
	return p
}

// ParseLine parses a full command line as typed by the user.
func (p *Parser) ParseLine(line string) (command.Command, error) {
	word, rest := splitWord(line)
	if word == "" {
		return nil, formatError(command.Usage(command.KindHelp, ""))
	}

	kind, err := lookup(word)
	if err != nil {
		return nil, err
	}
	if !kind.Scoped() {
		return unscoped(kind), nil
	}

	scopeToken, _ := liftScope(Tokenize(rest, AllPrefixes...))
	scope, err := ParseScope(scopeToken)
	if err != nil {
		return nil, err
	}

	h := p.table[route{kind, scope}]
	_, args := liftScope(Tokenize(rest, append([]Prefix{PrefixScope}, h.prefixes...)...))
	return h.parse(p, args)
}

// Parse is the structured entry point: the scope token, the command word
// and the already split arguments. Unscoped commands ignore scopeToken.
func (p *Parser) Parse(scopeToken, word string, args ArgMultimap) (command.Command, error) {
	kind, err := lookup(strings.TrimSpace(word))
	if err != nil {
		return nil, err
	}
	if !kind.Scoped() {
		return unscoped(kind), nil
	}

	scope, err := ParseScope(scopeToken)
	if err != nil {
		return nil, err
	}
	return p.table[route{kind, scope}].parse(p, args)
}

func lookup(word string) (command.Kind, error) {
	kind, ok := command.KindForWord(word)
	if !ok {
		return 0, &Error{Kind: ErrUnknownCommand, Message: MessageUnknownCommand}
	}
	return kind, nil
}

func unscoped(kind command.Kind) command.Command {
	if kind == command.KindExit {
		return command.Exit{}
	}
	return command.Help{}
}

// liftScope keeps only the first word of each in/ value and moves the rest
// into the preamble, so that "edit in/c 2 p/123" edits index 2. It returns
// the last scope token, or "" when in/ is missing.
func liftScope(args ArgMultimap) (string, ArgMultimap) {
	vals := args.values[PrefixScope]
	if len(vals) == 0 {
		return "", args
	}
	preamble := []string{args.preamble}
	for i, v := range vals {
		word, tail := splitWord(v)
		vals[i] = word
		preamble = append(preamble, strings.TrimSpace(tail))
	}
	args.preamble = strings.TrimSpace(strings.Join(preamble, " "))
	return vals[len(vals)-1], args
}

func splitWord(line string) (word, rest string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}
