package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keys",
		Short:         "List all keys in ascending order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(rootOpts, cmd)
		},
	}

	return cmd
}

func runKeys(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)

	keys, err := s.Keys(cmd.Context())
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	f.Verbosef("%d key(s) in table %s", len(keys), s.TableName())

	plain := "(no keys)"
	if len(keys) > 0 {
		plain = strings.Join(keys, "\n")
	}
	return f.Success(map[string]any{"keys": keys, "count": len(keys)}, plain)
}
