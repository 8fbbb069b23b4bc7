// clipreg: persistent clipboard registers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clipreg",
		Short: "Persistent clipboard registers",
		Long: `clipreg manages named clipboard registers: text slots with a keyboard
shortcut label, persisted to a JSON file shared with the clipboard-manager GUI.

Registers live in $HOME/.clipboard_manager_config.json (override with --store).
Every mutation rewrites the file, so changes are visible to other tools as soon
as the command returns.

Config file search order (first found wins):
  /etc/clipreg/clipreg.toml
  $HOME/.config/clipreg/clipreg.toml
  path supplied via --config

All flags can be set via CLIPREG_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newAddCmd(),
		newSetCmd(),
		newGetCmd(),
		newRemoveCmd(),
		newShortcutCmd(),
		newListCmd(),
		newWatchCmd(),
		newPathCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipreg %s\n", Version)
		},
	}
}
