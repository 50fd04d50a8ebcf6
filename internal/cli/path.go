package cli

import (
	"github.com/spf13/cobra"
)

// NewPathCommand creates the path command.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the resolved database file path",
		Long: `Print the database file path after location resolution.

In-memory stores have no file; "(memory)" is printed instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(rootOpts, cmd)
		},
	}

	return cmd
}

func runPath(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)

	path, ok := s.DatabasePath()
	if !ok {
		return f.Success(map[string]any{"path": nil, "memory": true}, "(memory)")
	}
	return f.Success(map[string]any{"path": path, "memory": false}, path)
}
