// Package logic runs a command line through the whole pipeline: parse,
// execute against the model, then persist.
package logic

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pbaille/addressjournal/internal/command"
	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/model"
	"github.com/pbaille/addressjournal/internal/parser"
	"github.com/pbaille/addressjournal/internal/uniquelist"
)

// MessageSaveFailed prefixes storage failures shown to the user.
const MessageSaveFailed = "Could not save data to file: "

// Storage is the persistence collaborator. *store.Store satisfies it.
type Storage interface {
	Save(persons []domain.Person, entries []domain.JournalEntry) error
	Load() ([]domain.Person, []domain.JournalEntry, error)
}

// Logic serialises every command so that parsing, execution and saving of
// one line never interleave with another.
type Logic struct {
	mu       sync.Mutex
	parser   *parser.Parser
	model    *model.Model
	storage  Storage
	autosave bool
	logger   *zap.Logger
}

// Option configures Logic.
type Option func(*Logic)

// WithStorage enables persistence. Without it nothing is saved.
func WithStorage(s Storage, autosave bool) Option {
	return func(l *Logic) {
		l.storage = s
		l.autosave = autosave
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Logic) { l.logger = logger }
}

// New wires a pipeline around p and m.
func New(p *parser.Parser, m *model.Model, opts ...Option) *Logic {
	l := &Logic{parser: p, model: m, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Model exposes the model for read-only views.
func (l *Logic) Model() *model.Model { return l.model }

// Load replaces the model with what storage holds.
func (l *Logic) Load() error {
	if l.storage == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	persons, entries, err := l.storage.Load()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	if err := l.model.Load(persons, entries); err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	l.logger.Info("data loaded", zap.Int("contacts", len(persons)), zap.Int("entries", len(entries)))
	return nil
}

// Save writes the full model to storage.
func (l *Logic) Save() error {
	if l.storage == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save()
}

// Execute parses and runs one line. Parse and execution failures leave the
// model untouched. The returned error's message is meant for the user.
func (l *Logic) Execute(line string) (command.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cmd, err := l.parser.ParseLine(line)
	if err != nil {
		l.logger.Debug("command rejected", zap.String("line", line), zap.String("kind", ErrorKind(err)))
		return command.Result{}, err
	}

	res, err := cmd.Execute(l.model)
	if err != nil {
		l.logger.Debug("command failed",
			zap.Stringer("command", cmd.Kind()),
			zap.String("scope", cmd.Scope().String()),
			zap.Error(err))
		return command.Result{}, err
	}
	l.logger.Info("command executed", zap.Stringer("command", cmd.Kind()), zap.String("scope", cmd.Scope().String()))

	if cmd.Kind().Mutates() && l.autosave && l.storage != nil {
		if err := l.save(); err != nil {
			return res, &command.Error{Message: MessageSaveFailed + err.Error(), Err: err}
		}
	}
	return res, nil
}

func (l *Logic) save() error {
	err := l.storage.Save(l.model.Contacts().Items(), l.model.Journal().Items())
	if err != nil {
		l.logger.Error("save failed", zap.Error(err))
		return fmt.Errorf("save data: %w", err)
	}
	return nil
}

// ErrorKind names the class of a pipeline error for logs and API clients.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, parser.ErrUnknownCommand):
		return "unknown_command"
	case errors.Is(err, parser.ErrUnknownScope):
		return "unknown_scope"
	case errors.Is(err, parser.ErrInvalidIndex):
		return "invalid_index"
	case errors.Is(err, parser.ErrFormat):
		return "format"
	case errors.Is(err, uniquelist.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, uniquelist.ErrOutOfRange), errors.Is(err, uniquelist.ErrNotFound):
		return "out_of_range"
	default:
		return "internal"
	}
}
