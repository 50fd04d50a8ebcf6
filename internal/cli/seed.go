package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/duckno/internal/jsonval"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Count int
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo records with generated keys",
		Long: `Insert demo records under uuid-based keys, for trying out the store.

Example:
  duckno seed --count 10 --db demo.db
  duckno keys --db demo.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 5, "number of records to insert")

	return cmd
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	if opts.Count < 1 {
		return WrapExitError(ExitCommandError, "count must be at least 1", nil)
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)

	keys := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		id := uuid.NewString()
		key := "demo:" + id
		value := jsonval.Object{
			"id":    jsonval.String(id),
			"index": jsonval.NewInt(int64(i)),
		}
		if err := s.Set(cmd.Context(), key, value); err != nil {
			return fmt.Errorf("seed record %d: %w", i, err)
		}
		f.Verbosef("stored %q", key)
		keys = append(keys, key)
	}

	data := map[string]any{"inserted": len(keys), "keys": keys}
	return f.Success(data, fmt.Sprintf("inserted %d record(s)", len(keys)))
}
