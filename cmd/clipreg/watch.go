package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipreg/internal/clip"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch <name>",
		Short: "Capture OS clipboard changes into a register",
		Long: `Watches the OS clipboard and writes every new text snapshot into the
register until interrupted (Ctrl-C). The register must already exist.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(v),
		RunE: func(_ *cobra.Command, args []string) error {
			return runWatch(v, args[0])
		},
	}

	addStoreFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runWatch(v *viper.Viper, name string) error {
	m := openManager(v)
	if _, ok := m.Content(name); !ok {
		return fmt.Errorf("no register named %q", name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ch, err := clip.WatchText(ctx)
	if err != nil {
		return err
	}

	slog.Info("watching clipboard", "register", name, "store", m.Path())
	for text := range ch {
		if text == "" {
			continue
		}
		if !m.UpdateContent(name, text) {
			return fmt.Errorf("no register named %q", name)
		}
		slog.Debug("captured", "register", name, "bytes", len(text))
	}
	return nil
}
