package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s, err := Load(path)
	require.NoError(t, err, "a missing file is the first-run state, not an error")
	require.NotNil(t, s)
	require.Empty(t, s.All())
	require.Equal(t, path, s.Path())
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"registers": {"a": {"content": "x"`},
		{"not json at all", `this is not json`},
		{"wrong root type", `[1, 2, 3]`},
		{"wrong registers type", `{"registers": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			s, err := Load(path)
			require.Nil(t, s)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, path, perr.Path)
			require.NotEmpty(t, perr.Error())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s := New(path)
	require.True(t, s.Add("a", "cmd+1"))
	require.True(t, s.Add("b", "cmd+2"))
	require.True(t, s.Add("c", "cmd+3"))
	require.True(t, s.SetContent("a", "alpha"))
	require.True(t, s.SetContent("b", "beta\nwith\nnewlines"))

	loaded, err := Load(path)
	require.NoError(t, err)

	want := map[string]Register{}
	for _, e := range s.All() {
		want[e.Name] = e.Register
	}
	got := map[string]Register{}
	for _, e := range loaded.All() {
		got[e.Name] = e.Register
	}
	require.Equal(t, want, got)
	require.Len(t, got, 3)
}

func TestSaveDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s := New(path)
	require.True(t, s.Add("notes", "cmd+n"))
	require.True(t, s.SetContent("notes", "hello"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Single object, full mapping, attribute names verbatim.
	var doc map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "hello", doc["registers"]["notes"]["content"])
	require.Equal(t, "cmd+n", doc["registers"]["notes"]["shortcut"])

	// Pretty-printed, the way the document has always been written.
	require.True(t, strings.Contains(string(data), "\n  "), "expected indented JSON, got: %s", data)
}

func TestSaveReplacesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s := New(path)
	require.True(t, s.Add("a", "s1"))
	require.True(t, s.SetContent("a", strings.Repeat("long content ", 100)))
	require.True(t, s.SetContent("a", "short"))

	loaded, err := Load(path)
	require.NoError(t, err)
	content, ok := loaded.Content("a")
	require.True(t, ok)
	require.Equal(t, "short", content, "stale bytes from the longer write must not survive")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, DefaultFileName))
	require.True(t, s.Add("a", "s1"))
	require.True(t, s.Remove("a"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, DefaultFileName, entries[0].Name())
}

func TestSaveWriteError(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "no-such-dir", DefaultFileName))

	err := s.Save()
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	require.NotEmpty(t, werr.Error())
}

func TestMutationSurvivesFailedPersist(t *testing.T) {
	// Point the store at an unwritable location: every persist fails, every
	// mutation must still apply in memory and report success.
	s := New(filepath.Join(t.TempDir(), "no-such-dir", DefaultFileName))

	require.True(t, s.Add("a", "cmd+1"))
	require.True(t, s.SetContent("a", "hello"))

	content, ok := s.Content("a")
	require.True(t, ok)
	require.Equal(t, "hello", content)

	require.True(t, s.Remove("a"))
	require.False(t, s.Remove("a"))
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, DefaultFileName), DefaultPath())
}
