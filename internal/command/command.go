// Package command defines the validated commands produced by the parser and
// how each one changes the model.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/model"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

// User-facing messages.
const (
	MessageInvalidIndex     = "The index provided is invalid."
	MessageDuplicateContact = "This contact already exists in the address book."
	MessageDuplicateEntry   = "This entry already exists in the journal."
	MessageExit             = "Exiting address journal as requested ..."
)

// Command is a fully validated user request.
type Command interface {
	Kind() Kind
	// Scope is empty for unscoped commands.
	Scope() domain.Scope
	Execute(m *model.Model) (Result, error)
}

// Result is what a successful command reports back.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	// Listing is set when the visible view of that list changed.
	Listing domain.Scope
}

// Error is an execution failure with a message fit for the user. It wraps
// the underlying cause, such as uniquelist.ErrDuplicate.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func fail(message string, cause error) error {
	return &Error{Message: message, Err: cause}
}

// listFailure translates list errors into user messages.
func listFailure(err error, duplicate string) error {
	switch {
	case errors.Is(err, uniquelist.ErrDuplicate):
		return fail(duplicate, err)
	case errors.Is(err, uniquelist.ErrOutOfRange), errors.Is(err, uniquelist.ErrNotFound):
		return fail(MessageInvalidIndex, err)
	default:
		return fmt.Errorf("execute: %w", err)
	}
}

// Update is one field of an edit: either left alone or set to a new value.
type Update[T any] struct {
	value T
	set   bool
}

// Set returns an update that replaces the field with v.
func Set[T any](v T) Update[T] {
	return Update[T]{value: v, set: true}
}

func (u Update[T]) IsSet() bool { return u.set }

// Apply returns the new value, or current when the field is left alone.
func (u Update[T]) Apply(current T) T {
	if u.set {
		return u.value
	}
	return current
}

// Help shows usage instructions.
type Help struct{}

func (Help) Kind() Kind          { return KindHelp }
func (Help) Scope() domain.Scope { return "" }

func (Help) Execute(*model.Model) (Result, error) {
	return Result{Feedback: HelpText(), ShowHelp: true}, nil
}

// HelpText lists the usage of every command.
func HelpText() string {
	var sb strings.Builder
	for _, k := range Kinds() {
		if !k.Scoped() {
			sb.WriteString(Usage(k, ""))
			sb.WriteString("\n\n")
			continue
		}
		for _, s := range []domain.Scope{domain.ScopeContacts, domain.ScopeJournal} {
			sb.WriteString(Usage(k, s))
			sb.WriteString("\n\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

// Exit ends the session.
type Exit struct{}

func (Exit) Kind() Kind          { return KindExit }
func (Exit) Scope() domain.Scope { return "" }

func (Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}
