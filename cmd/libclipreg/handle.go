//go:build cgo

package main

import (
	"runtime/cgo"
	"strings"
	"sync"
	"unicode/utf8"

	"go.klb.dev/clipreg/internal/logging"
	"go.klb.dev/clipreg/internal/manager"
	"go.klb.dev/clipreg/internal/registry"
)

var logOnce sync.Once

// newManager constructs a Manager over the default store path and wraps it
// in an opaque handle for the host. Logging is configured on the first call.
func newManager() uintptr {
	logOnce.Do(logging.SetupFromEnv)
	m := manager.New(registry.DefaultPath())
	return uintptr(cgo.NewHandle(m))
}

// destroyManager invalidates a handle returned by newManager. The zero
// handle is a no-op; any use of the handle after this call panics.
func destroyManager(h uintptr) {
	if h == 0 {
		return
	}
	cgo.Handle(h).Delete()
}

// derefManager resolves a handle to its Manager. A zero or stale handle is
// a host programming error and panics, aborting the process.
func derefManager(h uintptr) *manager.Manager {
	if h == 0 {
		panic("clipreg: nil manager handle")
	}
	return cgo.Handle(h).Value().(*manager.Manager)
}

// sanitizeUTF8 applies the boundary leniency policy: text that does not
// decode as UTF-8 degrades to "" instead of failing the call.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return ""
}

// cstringable reports whether content can cross the boundary as a C string.
// Content loaded from a hand-edited store file can hold interior NUL bytes,
// which cannot.
func cstringable(s string) bool {
	return !strings.ContainsRune(s, 0)
}
