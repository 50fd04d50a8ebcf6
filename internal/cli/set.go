package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/duckno/internal/jsonval"
)

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a JSON value under a key",
		Long: `Store a JSON value under a key, replacing any existing value.

The value is parsed as JSON; bare words that are not valid JSON are stored
as strings.

Example:
  duckno set user:1 '{"name":"Ada","roles":["admin"]}'
  duckno set greeting hello`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(rootOpts, cmd, args[0], args[1])
		},
	}

	return cmd
}

func runSet(opts *RootOptions, cmd *cobra.Command, key, rawValue string) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)
	value := parseValueArg(rawValue)

	if err := s.Set(cmd.Context(), key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	f.Verbosef("stored %q in table %s", key, s.TableName())

	return f.Success(map[string]any{"key": key}, fmt.Sprintf("stored %s", key))
}

// parseValueArg interprets a command-line value: valid JSON is taken as-is,
// anything else is treated as a plain string.
func parseValueArg(arg string) jsonval.Value {
	if v, err := jsonval.Unmarshal([]byte(arg)); err == nil {
		return v
	}
	return jsonval.String(arg)
}
