package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pbaille/addressjournal/internal/command"
	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/logic"
	"github.com/pbaille/addressjournal/internal/model"
)

const prompt = "> "

// runREPL executes one command per input line until exit or end of input.
func runREPL(l *logic.Logic, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, prompt)
			continue
		}

		res, err := l.Execute(line)
		if res.Feedback != "" {
			fmt.Fprintln(out, res.Feedback)
		}
		if err != nil {
			fmt.Fprintln(out, err.Error())
		}
		if res.Exit {
			return nil
		}
		if res.Listing != "" {
			printList(out, l.Model(), res.Listing)
		}
		fmt.Fprint(out, prompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// printList writes the visible view of one list, numbered from 1.
func printList(out io.Writer, m *model.Model, scope domain.Scope) {
	switch scope {
	case domain.ScopeContacts:
		for i, p := range m.VisibleContacts() {
			fmt.Fprintf(out, "%d. %s\n", i+1, command.FormatPerson(p))
		}
	case domain.ScopeJournal:
		for i, e := range m.VisibleEntries() {
			fmt.Fprintf(out, "%d. %s\n", i+1, command.FormatEntry(e))
		}
	}
}
