// Package cli provides the command-line interface for leapsplit.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/leapsplit/internal/cli/commands"
	"github.com/leapstack-labs/leapsplit/internal/cli/config"
	"github.com/spf13/cobra"
)

// ErrMissingInput is returned when no input file is given.
var ErrMissingInput = errors.New("missing input file argument")

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// inputArg accepts exactly one positional input path.
func inputArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return ErrMissingInput
	case len(args) > 1:
		return fmt.Errorf("accepts 1 input file, received %d", len(args))
	}
	return nil
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "leapsplit <input-file>",
		Short: "leapsplit - reproducible train/test splitter",
		Long: `leapsplit partitions a ';'-delimited dataset into train and test subsets.

Every data row is assigned with a seeded pseudorandom draw (seed 27): rows
whose draw is at most 0.80 go to train.csv, the rest to test.csv. test.csv is
also written a second time as test_copy.csv. Output files have no header.

The test row count and then the train row count are printed on stdout.`,
		Example: `  # Split a dataset into ./train.csv, ./test.csv and ./test_copy.csv
  leapsplit data.csv

  # Write the artifacts somewhere else
  leapsplit data.csv --output-dir splits/`,
		Version: Version,
		Args:    inputArg,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunSplit(cmd, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./leapsplit.yaml)")
	rootCmd.PersistentFlags().String("output-dir", config.DefaultOutputDir, "Directory for train.csv, test.csv and test_copy.csv")
	rootCmd.PersistentFlags().String("delimiter", config.DefaultDelimiter, "Field delimiter of input and output files")
	rootCmd.PersistentFlags().Bool("validate-arity", false, "Fail on rows whose field count differs from the header")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.LogFormatText, config.LogFormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("output-dir")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewSchemaCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for leapsplit.

To load completions:

Bash:
  $ source <(leapsplit completion bash)

Zsh:
  $ leapsplit completion zsh > "${fpath[1]}/_leapsplit"

Fish:
  $ leapsplit completion fish | source

PowerShell:
  PS> leapsplit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
