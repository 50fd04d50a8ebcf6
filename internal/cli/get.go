package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/duckno/internal/jsonval"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	Default string
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Retrieve the value stored under a key",
		Long: `Retrieve the value stored under a key, printed as canonical JSON.

If the key is absent the default is printed instead (null unless --default
is given); a missing key is not an error.

Example:
  duckno get user:1
  duckno get missing --default '{"anonymous":true}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Default, "default", "null", "value returned when the key is absent, as JSON")

	return cmd
}

func runGet(opts *GetOptions, cmd *cobra.Command, key string) error {
	def, err := jsonval.Unmarshal([]byte(opts.Default))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --default JSON", err)
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)

	value, err := s.Get(cmd.Context(), key, def)
	if err != nil {
		return fmt.Errorf("get %q: %w", key, err)
	}

	text, err := jsonval.Marshal(value)
	if err != nil {
		return fmt.Errorf("render %q: %w", key, err)
	}

	data := map[string]any{"key": key, "value": json.RawMessage(text)}
	return f.Success(data, string(text))
}
