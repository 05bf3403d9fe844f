package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapsplit/internal/cli/config"
	"github.com/leapstack-labs/leapsplit/internal/engine"
	"github.com/spf13/cobra"
)

// RunSplit splits inputPath with the configuration stored on cmd's context
// and prints the test row count, then the train row count, one per line.
func RunSplit(cmd *cobra.Command, inputPath string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	eng := engine.New(engine.Config{
		OutputDir:     cfg.OutputDir,
		Delimiter:     cfg.DelimiterRune(),
		ValidateArity: cfg.ValidateArity,
		Logger:        logger,
	})

	res, err := eng.Run(ctx, inputPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, res.TestRows)
	_, _ = fmt.Fprintln(out, res.TrainRows)
	return nil
}
