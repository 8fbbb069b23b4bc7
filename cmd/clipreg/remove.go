package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRemoveCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a register",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(v, args[0])
		},
	}

	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runRemove(v *viper.Viper, name string) error {
	m := openManager(v)
	if !m.RemoveRegister(name) {
		return fmt.Errorf("no register named %q", name)
	}
	return nil
}
