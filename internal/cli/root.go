// Package cli implements the wordfigure command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/wordfigure/internal/config"
)

// app holds state shared by subcommands for one invocation.
type app struct {
	configPath string
	verbose    bool
	workers    int
	output     string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd returns the wordfigure root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordfigure",
		Short: "Convert numbers to English words and back",
		Long: `wordfigure spells out non-negative integers below 10^18 in English
and reads spelled-out numbers back into figures.

Examples:
  wordfigure words 200450        # two hundred thousand, four hundred and fifty
  wordfigure figure forty-seven  # 47
  wordfigure batch numbers.txt   # one conversion per line`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file (default "+config.DefaultFile+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newWordsCmd(), a.newFigureCmd(), a.newBatchCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	a := &app{}
	return execute(a, newRootCmd(a))
}

// execute runs root and flushes the logger even when the command fails.
func execute(a *app, root *cobra.Command) error {
	defer a.sync()
	return root.Execute()
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.workers
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}
