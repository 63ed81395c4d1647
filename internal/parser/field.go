package parser

import "strings"

// Presence records how an argument arrived.
type Presence uint8

const (
	// Absent means the prefix never appeared.
	Absent Presence = iota
	// Blank means the prefix appeared with nothing after it.
	Blank
	// Present means the prefix carried a non-blank value.
	Present
)

// Field is a single raw argument with its presence. Each field parser
// decides what Absent and Blank mean for its type.
type Field struct {
	Presence Presence
	Raw      string
}

// Supplied wraps a raw value that was typed after its prefix.
func Supplied(raw string) Field {
	if strings.TrimSpace(raw) == "" {
		return Field{Presence: Blank, Raw: raw}
	}
	return Field{Presence: Present, Raw: raw}
}

func (f Field) IsAbsent() bool { return f.Presence == Absent }
