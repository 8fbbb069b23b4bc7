package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAddCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "add <name> <shortcut>",
		Short: "Create an empty register",
		Long: `Creates a register with the given name and shortcut label and no content.
Fails if a register with that name already exists.

The shortcut is an opaque label to clipreg; the GUI host interprets it as a
key chord (e.g. "cmd+shift+1").`,
		Args:    cobra.ExactArgs(2),
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAdd(v, args[0], args[1])
		},
	}

	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runAdd(v *viper.Viper, name, shortcut string) error {
	m := openManager(v)
	if !m.AddRegister(name, shortcut) {
		return fmt.Errorf("register %q already exists", name)
	}
	return nil
}
