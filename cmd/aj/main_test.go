package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/addressjournal/internal/config"
	"github.com/pbaille/addressjournal/internal/domain"
)

type fakeStore struct {
	saveErr error
	saves   int
	closed  bool
	persons []domain.Person
}

func (f *fakeStore) Save(persons []domain.Person, _ []domain.JournalEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.persons = persons
	return nil
}

func (f *fakeStore) Load() ([]domain.Person, []domain.JournalEntry, error) {
	return nil, nil, nil
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

// useFakeStore routes openLogic to fs and writes a config with autosave set
// as given. It returns the config path.
func useFakeStore(t *testing.T, fs *fakeStore, autosave bool) string {
	t.Helper()
	orig := openStore
	openStore = func(string) (storage, error) { return fs, nil }
	t.Cleanup(func() { openStore = orig })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("db_path: %s\nautosave: %t\n", filepath.Join(dir, "aj.db"), autosave)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func runAJ(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExec_AutosaveOffSavesOnExit(t *testing.T) {
	fs := &fakeStore{}
	cfgPath := useFakeStore(t, fs, false)

	out, err := runAJ(t, "", "--config", cfgPath, "exec", "add", "in/c", "n/Alex")
	require.NoError(t, err)
	assert.Contains(t, out, "New contact added: Alex")
	assert.Equal(t, 1, fs.saves)
	require.Len(t, fs.persons, 1)
	assert.True(t, fs.closed)
}

func TestExec_AutosaveOffReportsSaveFailure(t *testing.T) {
	fs := &fakeStore{saveErr: errors.New("disk full")}
	cfgPath := useFakeStore(t, fs, false)

	_, err := runAJ(t, "", "--config", cfgPath, "exec", "add", "in/c", "n/Alex")
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.True(t, fs.closed)
}

func TestList_AutosaveOffReportsSaveFailure(t *testing.T) {
	fs := &fakeStore{saveErr: errors.New("read-only database")}
	cfgPath := useFakeStore(t, fs, false)

	_, err := runAJ(t, "", "--config", cfgPath, "list", "c")
	assert.ErrorContains(t, err, "read-only database")
}

func TestREPL_AutosaveOffReportsSaveFailure(t *testing.T) {
	fs := &fakeStore{saveErr: errors.New("disk full")}
	cfgPath := useFakeStore(t, fs, false)

	out, err := runAJ(t, "add in/c n/Alex\nexit\n", "--config", cfgPath, "repl")
	assert.ErrorContains(t, err, "disk full")
	assert.Contains(t, out, "New contact added: Alex")
}

func TestExec_AutosaveOnSavesOnceAfterCommand(t *testing.T) {
	fs := &fakeStore{}
	cfgPath := useFakeStore(t, fs, true)

	_, err := runAJ(t, "", "--config", cfgPath, "exec", "add", "in/c", "n/Alex")
	require.NoError(t, err)
	assert.Equal(t, 1, fs.saves)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	dbFile := filepath.Join(t.TempDir(), "custom.db")

	out, err := runAJ(t, "", "--config", path, "--db", dbFile, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dbFile, saved.DBPath)
	assert.True(t, saved.Autosave)

	_, err = runAJ(t, "", "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = runAJ(t, "", "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}
