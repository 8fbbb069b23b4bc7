package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipreg/internal/clip"
)

func newGetCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a register's content (like pbpaste)",
		Long: `Writes the content of a register to stdout, byte for byte. With --copy the
content is also placed on the OS clipboard.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGet(v, args[0])
		},
	}

	cmd.Flags().Bool("copy", false, "also place the content on the OS clipboard")
	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runGet(v *viper.Viper, name string) error {
	m := openManager(v)
	content, ok := m.Content(name)
	if !ok {
		return fmt.Errorf("no register named %q", name)
	}

	if _, err := os.Stdout.WriteString(content); err != nil {
		return err
	}
	if v.GetBool("copy") {
		return clip.WriteText(content)
	}
	return nil
}
