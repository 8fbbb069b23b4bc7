package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"go.klb.dev/clipreg/internal/registry"
)

// storeViper returns a viper pre-pointed at a fresh store file, the way
// bindViper would after --store.
func storeViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.Set("store", filepath.Join(t.TempDir(), registry.DefaultFileName))
	return v
}

// captureOutput captures stdout while running a function.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	fnErr := fn()
	require.NoError(t, w.Close())
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	return buf.String(), fnErr
}

// feedStdin replaces os.Stdin with a pipe holding s for the rest of the test.
func feedStdin(t *testing.T, s string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(s)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = orig })
}
