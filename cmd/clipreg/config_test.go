package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"go.klb.dev/clipreg/internal/registry"
)

func TestStorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v := viper.New()
	require.Equal(t, filepath.Join(home, registry.DefaultFileName), storePath(v))

	v.Set("store", "/tmp/other.json")
	require.Equal(t, "/tmp/other.json", storePath(v))
}
