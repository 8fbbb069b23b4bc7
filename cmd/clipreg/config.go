package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipreg/internal/logging"
	"go.klb.dev/clipreg/internal/manager"
	"go.klb.dev/clipreg/internal/registry"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and CLIPREG_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → CLIPREG_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("clipreg")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/clipreg/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/clipreg", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPREG")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// preRun returns the standard PreRunE: bind flags into v, then configure slog.
func preRun(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := bindViper(cmd, v); err != nil {
			return err
		}
		logging.Setup(
			logging.ParseFormat(v.GetString("log-format")),
			logging.ParseLevel(v.GetString("log-level")),
		)
		return nil
	}
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "info", "log level: debug|info|warn|error")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addStoreFlag adds the --store override shared by every store-touching command.
func addStoreFlag(cmd *cobra.Command) {
	cmd.Flags().String("store", "", "register store file (default $HOME/.clipboard_manager_config.json)")
}

// storePath resolves the register store file path, honouring --store.
func storePath(v *viper.Viper) string {
	if p := v.GetString("store"); p != "" {
		return p
	}
	return registry.DefaultPath()
}

// openManager loads the register store for CLI use.
func openManager(v *viper.Viper) *manager.Manager {
	return manager.New(storePath(v))
}
