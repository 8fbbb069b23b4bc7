package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipreg/internal/clip"
)

func newSetCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "set <name> [text]",
		Short: "Set a register's content",
		Long: `Sets the content of an existing register.

The text comes from the second argument if given, from the OS clipboard with
--from-clipboard, and otherwise from stdin:

  clipreg set scratch "hello"
  git rev-parse HEAD | clipreg set commit
  clipreg set scratch --from-clipboard`,
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSet(v, args)
		},
	}

	cmd.Flags().Bool("from-clipboard", false, "read the content from the OS clipboard")
	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runSet(v *viper.Viper, args []string) error {
	name := args[0]

	var content string
	switch {
	case v.GetBool("from-clipboard"):
		if len(args) > 1 {
			return fmt.Errorf("both a text argument and --from-clipboard given")
		}
		text, err := clip.ReadText()
		if err != nil {
			return err
		}
		content = text
	case len(args) > 1:
		content = args[1]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}

	m := openManager(v)
	if !m.UpdateContent(name, content) {
		return fmt.Errorf("no register named %q", name)
	}
	return nil
}
