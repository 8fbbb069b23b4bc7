package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const previewLen = 48

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registers",
		Long: `Prints a table of all registers with a one-line content preview. With
--json the full listing is emitted as a JSON array of [name, register] pairs,
the same shape the C API returns.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(v)
		},
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runList(v *viper.Viper) error {
	m := openManager(v)

	if v.GetBool("json") {
		fmt.Println(m.RegistersJSON())
		return nil
	}

	entries := m.Registers()
	if len(entries) == 0 {
		fmt.Println("No registers.")
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "NAME\tSHORTCUT\tCONTENT\n")
	_, _ = fmt.Fprintf(tw, "----\t--------\t-------\n")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Register.Shortcut, preview(e.Register.Content))
	}
	return tw.Flush()
}

// preview flattens content to one line and truncates it for table output.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:previewLen-3]) + "..."
}
