// Package manager provides the process-wide, lock-guarded access path to one
// register store. Every operation, reads included, takes the same exclusive
// lock, so host threads calling in concurrently always observe the store as a
// sequence of whole operations.
package manager

import (
	"encoding/json"
	"log/slog"
	"sync"

	"go.klb.dev/clipreg/internal/registry"
)

// emptyListing is the fallback when the register listing cannot be
// serialised: a fault there reads the same as an empty store.
const emptyListing = "[]"

// Manager owns the only reference to the underlying store and serialises
// all access behind one mutex. Blocking is limited to lock waits and the
// synchronous disk write inside mutating store operations.
type Manager struct {
	mu    sync.Mutex
	store *registry.Store
}

// New loads the store persisted at path. A corrupt or unreadable document is
// logged and replaced with an empty store; construction never fails, so the
// host always gets a usable handle.
func New(path string) *Manager {
	store, err := registry.Load(path)
	if err != nil {
		slog.Error("register store load failed, starting empty", "path", path, "err", err)
		store = registry.New(path)
	}
	return &Manager{store: store}
}

// Path returns the persisted-file location behind this manager.
func (m *Manager) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Path()
}

// AddRegister creates a register with empty content under name.
func (m *Manager) AddRegister(name, shortcut string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Add(name, shortcut)
}

// UpdateContent replaces the content of an existing register.
func (m *Manager) UpdateContent(name, content string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.SetContent(name, content)
}

// UpdateShortcut replaces the shortcut of an existing register.
func (m *Manager) UpdateShortcut(name, shortcut string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.SetShortcut(name, shortcut)
}

// Content returns the named register's content, reporting false when absent.
func (m *Manager) Content(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Content(name)
}

// RemoveRegister deletes the named register.
func (m *Manager) RemoveRegister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Remove(name)
}

// Registers returns a snapshot of all registers in unspecified order.
func (m *Manager) Registers() []registry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.All()
}

// RegistersJSON returns the full listing as a JSON array of [name, register]
// pairs. Serialisation failure degrades to the empty listing rather than an
// error, so callers always receive a valid document.
func (m *Manager) RegistersJSON() string {
	entries := m.Registers()

	data, err := json.Marshal(entries)
	if err != nil {
		slog.Error("register listing marshal failed", "err", err)
		return emptyListing
	}
	return string(data)
}
