// Root command and global flags for the calctl CLI.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataFile  string
	flagJSON      bool
	flagVerbose   bool
)

// configDataFile holds the data_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataFile string

var rootCmd = &cobra.Command{
	Use:           "calctl",
	Short:         "calctl manages timed calendar events in a single JSON file",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataFile = cfg.GetString(cfgKeyDataFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "event data file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(exportCmd)
}

// setupLogging installs a tinted slog handler on stderr; --verbose lowers
// the level to debug.
func setupLogging() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// resolveConfigDir follows the precedence chain:
// --config-dir flag > CALCTL_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataFile follows the precedence chain:
// --data-file flag > config.yaml data_file > CALCTL_DATA_FILE env > platform default.
func resolveDataFile() (string, error) {
	return paths.ResolveDataFile(flagDataFile, configDataFile)
}
