package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShortcutCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "shortcut <name> <shortcut>",
		Short: "Rebind a register's shortcut",
		Long: `Replaces the shortcut label of an existing register. The content is left
untouched.`,
		Args:    cobra.ExactArgs(2),
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, args []string) error {
			return runShortcut(v, args[0], args[1])
		},
	}

	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runShortcut(v *viper.Viper, name, shortcut string) error {
	m := openManager(v)
	if !m.UpdateShortcut(name, shortcut) {
		return fmt.Errorf("no register named %q", name)
	}
	return nil
}
