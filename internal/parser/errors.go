package parser

import (
	"errors"
	"fmt"

	"github.com/pbaille/addressjournal/internal/uniquelist"
)

// Error kinds. Every *Error matches exactly one of these with errors.Is.
// A batch of contact names can also fail with uniquelist.ErrDuplicate.
var (
	ErrFormat         = errors.New("format error")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownScope   = errors.New("unknown scope")
	ErrInvalidIndex   = errors.New("invalid index")
)

// User-facing messages that are not field constraints.
const (
	MessageUnknownCommand   = "Unknown command"
	MessageInvalidFormat    = "Invalid command format! \n%s"
	MessageNoFieldsEdited   = "At least one field to edit must be provided."
	MessageDuplicateContact = "Contacts should not be listed more than once."
)

// Error is a rejected command line. Message is shown to the user verbatim.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func formatError(usage string) error {
	return &Error{Kind: ErrFormat, Message: fmt.Sprintf(MessageInvalidFormat, usage)}
}

// fieldError wraps a validator rejection, keeping its constraint message.
func fieldError(kind, cause error) error {
	return &Error{Kind: kind, Message: cause.Error(), Err: cause}
}

func duplicateContact(cause error) error {
	return &Error{Kind: uniquelist.ErrDuplicate, Message: MessageDuplicateContact, Err: cause}
}
