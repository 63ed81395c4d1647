package command

import "github.com/pbaille/addressjournal/internal/domain"

// Kind enumerates every command the application understands.
type Kind uint8

const (
	KindAdd Kind = iota + 1
	KindEdit
	KindDelete
	KindFind
	KindList
	KindClear
	KindHelp
	KindExit
)

var kindWords = map[Kind]string{
	KindAdd:    "add",
	KindEdit:   "edit",
	KindDelete: "delete",
	KindFind:   "find",
	KindList:   "list",
	KindClear:  "clear",
	KindHelp:   "help",
	KindExit:   "exit",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindAdd, KindEdit, KindDelete, KindFind, KindList, KindClear, KindHelp, KindExit}
}

// KindForWord maps a command word to its kind.
func KindForWord(word string) (Kind, bool) {
	for k, w := range kindWords {
		if w == word {
			return k, true
		}
	}
	return 0, false
}

// Word is the command word typed by the user.
func (k Kind) Word() string { return kindWords[k] }

func (k Kind) String() string { return k.Word() }

// Scoped reports whether the command needs an in/ scope.
func (k Kind) Scoped() bool {
	return k != KindHelp && k != KindExit
}

// Mutates reports whether a successful run changes stored data.
func (k Kind) Mutates() bool {
	switch k {
	case KindAdd, KindEdit, KindDelete, KindClear:
		return true
	default:
		return false
	}
}

var usages = map[Kind]map[domain.Scope]string{
	KindAdd: {
		domain.ScopeContacts: "add in/c: Adds a contact to the address book.\n" +
			"Parameters: n/NAME [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
			"Example: add in/c n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends",
		domain.ScopeJournal: "add in/j: Adds an entry to the journal.\n" +
			"Parameters: n/TITLE [d/DATE] [x/DESCRIPTION] [c/CONTACT]... [t/TAG]...\n" +
			"Example: add in/j n/Project sync d/04-03-2024 x/Agreed on scope c/John Doe t/work",
	},
	KindEdit: {
		domain.ScopeContacts: "edit in/c: Edits the contact at INDEX in the displayed list. " +
			"Blank p/, e/, a/ or t/ values clear that field.\n" +
			"Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
			"Example: edit in/c 1 p/91234567 e/johndoe@example.com",
		domain.ScopeJournal: "edit in/j: Edits the entry at INDEX in the displayed list. " +
			"Blank x/, c/ or t/ values clear that field.\n" +
			"Parameters: INDEX [n/TITLE] [d/DATE] [x/DESCRIPTION] [c/CONTACT]... [t/TAG]...\n" +
			"Example: edit in/j 2 d/05-03-2024",
	},
	KindDelete: {
		domain.ScopeContacts: "delete in/c: Deletes the contact at INDEX in the displayed list.\n" +
			"Parameters: INDEX\nExample: delete in/c 1",
		domain.ScopeJournal: "delete in/j: Deletes the entry at INDEX in the displayed list.\n" +
			"Parameters: INDEX\nExample: delete in/j 1",
	},
	KindFind: {
		domain.ScopeContacts: "find in/c: Finds all persons in the address book whose fields contain " +
			"the specified strings or whose tags include the specified tags.\n" +
			"Parameters: [n/NAME] [a/ADDRESS] [e/EMAIL] [p/PHONE] [t/TAG]...",
		domain.ScopeJournal: "find in/j: Finds all journal entries whose fields contain the specified " +
			"strings, fall on DATE, or whose tags include the specified tags.\n" +
			"Parameters: [n/TITLE] [d/DATE] [x/DESCRIPTION] [c/CONTACT] [t/TAG]...",
	},
	KindList: {
		domain.ScopeContacts: "list in/c: Shows every contact.",
		domain.ScopeJournal:  "list in/j: Shows every journal entry.",
	},
	KindClear: {
		domain.ScopeContacts: "clear in/c: Removes every contact.",
		domain.ScopeJournal:  "clear in/j: Removes every journal entry.",
	},
}

// Usage returns the help text for a kind in a scope. Unscoped kinds ignore
// scope.
func Usage(k Kind, scope domain.Scope) string {
	switch k {
	case KindHelp:
		return "help: Shows program usage instructions."
	case KindExit:
		return "exit: Exits the program."
	}
	return usages[k][scope]
}
