// Package registry implements the persistent clipboard register store.
//
// A register is a named slot holding text content and a keyboard shortcut
// label. The full name → register mapping is mirrored to a single JSON
// document after every mutation; that document is the source of truth on
// disk and is rewritten whole each time, never appended to.
package registry

import (
	"encoding/json"
	"log/slog"
)

// Register is one named clipboard slot.
type Register struct {
	Content  string `json:"content"`
	Shortcut string `json:"shortcut"`
}

// Entry pairs a register with its name for listings. It serialises as the
// two-element JSON array [name, register] that listing consumers expect.
type Entry struct {
	Name     string
	Register Register
}

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Name, e.Register})
}

// Store is the in-memory register mapping bound to its persisted file.
// It is not safe for concurrent use; the manager package provides the
// locked wrapper that callers share.
type Store struct {
	path      string
	registers map[string]Register
}

// New returns an empty store that persists to path.
func New(path string) *Store {
	return &Store{
		path:      path,
		registers: make(map[string]Register),
	}
}

// Path returns the persisted-file location this store writes to.
func (s *Store) Path() string { return s.path }

// Add creates a register with the given shortcut and empty content.
// It reports false, changing nothing, when the name is already taken.
func (s *Store) Add(name, shortcut string) bool {
	if _, exists := s.registers[name]; exists {
		return false
	}
	s.registers[name] = Register{Shortcut: shortcut}
	s.persist()
	return true
}

// SetContent replaces the content of an existing register.
// It reports false when no register has that name.
func (s *Store) SetContent(name, content string) bool {
	reg, ok := s.registers[name]
	if !ok {
		return false
	}
	reg.Content = content
	s.registers[name] = reg
	s.persist()
	return true
}

// SetShortcut replaces the shortcut of an existing register.
// It reports false when no register has that name.
func (s *Store) SetShortcut(name, shortcut string) bool {
	reg, ok := s.registers[name]
	if !ok {
		return false
	}
	reg.Shortcut = shortcut
	s.registers[name] = reg
	s.persist()
	return true
}

// Content returns the current content of the named register.
// Read-only: no disk write is triggered.
func (s *Store) Content(name string) (string, bool) {
	reg, ok := s.registers[name]
	if !ok {
		return "", false
	}
	return reg.Content, true
}

// Remove deletes the named register, reporting false when it is absent.
func (s *Store) Remove(name string) bool {
	if _, ok := s.registers[name]; !ok {
		return false
	}
	delete(s.registers, name)
	s.persist()
	return true
}

// All returns a snapshot of every register at the moment of the call; later
// mutations do not affect the returned slice. Order is unspecified.
func (s *Store) All() []Entry {
	out := make([]Entry, 0, len(s.registers))
	for name, reg := range s.registers {
		out = append(out, Entry{Name: name, Register: reg})
	}
	return out
}

// persist mirrors the store to disk after a mutation. Failures are logged,
// never propagated: the in-memory change stands even when the write fails,
// so callers see mutation success independent of durability.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		slog.Error("register store save failed", "path", s.path, "err", err)
	}
}
