package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileName is the fixed per-user persisted file name.
const DefaultFileName = ".clipboard_manager_config.json"

// DefaultPath returns the persisted file location in the user's home
// directory. When the home directory cannot be resolved the bare file name
// is returned, so the store lands in the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// fileDoc is the on-disk document: a single object holding the full mapping.
type fileDoc struct {
	Registers map[string]Register `json:"registers"`
}

// ParseError reports a persisted file that exists but could not be read or
// decoded. Callers decide the fallback; the manager starts empty and logs.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse register store %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failed disk write of the persisted document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write register store %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// SerializeError reports in-memory state that could not be serialised.
// Unreachable for plain string registers; kept so a future richer register
// type cannot silently lose data.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialise register store: %v", e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }

// Load reads the persisted document at path. A missing file is the normal
// first-run state and yields an empty store with a nil error; an unreadable
// or undecodable file yields a *ParseError.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(path), nil
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	s := New(path)
	if doc.Registers != nil {
		s.registers = doc.Registers
	}
	return s, nil
}

// Save serialises the full store and replaces the persisted file. The
// replacement goes through a temporary file in the same directory followed
// by a rename, so a reader never observes a partially written document.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(fileDoc{Registers: s.registers}, "", "  ")
	if err != nil {
		return &SerializeError{Err: err}
	}

	dir := filepath.Dir(s.path)
	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}
