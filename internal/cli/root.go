// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/relquery/relq/internal/config"
	"github.com/relquery/relq/internal/ui"
)

var (
	// Global flags
	configPath string
	dbFlag     string
	schemaFlag string
	verbose    bool

	// Resolved values
	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "relq",
	Short: "relq - composable relational queries",
	Long: `relq builds queries as values: relations accumulate where, order, and
scope clauses lazily, merge with well-defined precedence, and only touch
the database when you ask for rows.

Entities are declared in schema.yaml; the backing store is a sqlite file
or a postgres:// DSN.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "init", "completion", "help", "version", "docs":
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			err = fmt.Errorf("failed to load config: %w", err)
			if jsonOutput {
				outputError(ErrConfigInvalid, err.Error(), "")
				cmd.SilenceErrors = true
			}
			return err
		}
		if dbFlag != "" {
			cfg.Database = dbFlag
		}
		if schemaFlag != "" {
			cfg.Schema = schemaFlag
		}
		if cfg.Schema == "" {
			cfg.Schema = "schema.yaml"
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		logger = zerolog.Nop()
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().Level(zerolog.DebugLevel)
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Database DSN (sqlite path or postgres:// URL)")
	rootCmd.PersistentFlags().StringVar(&schemaFlag, "schema", "", "Path to schema.yaml")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log executed queries to stderr")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}
