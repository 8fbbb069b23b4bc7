package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPathCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "path",
		Short:   "Print the register store file path",
		Args:    cobra.NoArgs,
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(storePath(v))
			return nil
		},
	}

	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}
