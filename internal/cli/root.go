package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/duckno/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DB         string
	Memory     bool
	Table      string
	Format     string // "json" | "text"
	Verbose    bool
	ConfigFile string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the duckno CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "duckno",
		Short: "DuckNo - a tiny NoSQL-like key/value store",
		Long: `A tiny NoSQL-like key/value store on top of an embedded SQL engine.

Values are arbitrary JSON documents stored under string keys. The database
location follows the store's resolution policy: a file path, a directory
(duckno.db is placed inside), or ":memory:" for a volatile store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return applyConfig(cmd, opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "database path (default duckno.db in the working directory)")
	cmd.PersistentFlags().BoolVar(&opts.Memory, "memory", false, "use a volatile in-memory database")
	cmd.PersistentFlags().StringVar(&opts.Table, "table", store.DefaultTableName, "backing table name")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default duckno.yaml if present)")

	// Add subcommands
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore opens the store configured by the global flags.
// Open failures are command errors (exit code 2).
func openStore(opts *RootOptions) (*store.Store, error) {
	s, err := store.Open(store.Options{
		Path:      opts.DB,
		Memory:    opts.Memory,
		TableName: opts.Table,
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open store", err)
	}
	return s, nil
}

// formatter builds the output formatter for a command invocation.
func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
