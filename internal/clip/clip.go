// Package clip wraps the system clipboard for plain-text transfer.
//
// golang.design/x/clipboard needs a display environment; on headless
// machines every operation reports ErrUnavailable instead of panicking.
package clip

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// ErrUnavailable reports that no system clipboard is reachable (no X11 or
// Wayland display, container, ssh session without forwarding).
var ErrUnavailable = errors.New("system clipboard unavailable")

var (
	initOnce sync.Once
	initErr  error
)

// ensure runs clipboard.Init on first use. Init is deliberately not called
// from init() so sub-commands that never touch the OS clipboard keep working
// on headless machines.
func ensure() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, initErr)
	}
	return nil
}

// ReadText returns the current clipboard text. An empty clipboard reads as "".
func ReadText() (string, error) {
	if err := ensure(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// WriteText replaces the clipboard contents with s.
func WriteText(s string) error {
	if err := ensure(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// WatchText streams clipboard text changes until ctx is cancelled. The
// returned channel closes when the watch ends.
func WatchText(ctx context.Context) (<-chan string, error) {
	if err := ensure(); err != nil {
		return nil, err
	}
	raw := clipboard.Watch(ctx, clipboard.FmtText)
	out := make(chan string)
	go func() {
		defer close(out)
		for b := range raw {
			out <- string(b)
		}
	}()
	return out, nil
}
