package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/wordfigure/internal/batch"
	"github.com/az-ai-labs/wordfigure/internal/config"
	"github.com/az-ai-labs/wordfigure/numtext"
)

func (a *app) newBatchCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one value per line from a file or stdin",
		Long: `Reads values line by line from the file, or from stdin when no file or
"-" is given, and converts each in the direction chosen by --to.
Blank lines are skipped. The command fails if any line could not be
converted; the remaining lines are still written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := numtext.ParseDirection(to)
			if err != nil {
				return err
			}
			return a.runBatch(cmd, args, dir)
		},
	}

	cmd.Flags().StringVar(&to, "to", "words", "conversion direction: words or figures")
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "number of concurrent workers (overrides config)")
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "output format: text or json (overrides config)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string, dir numtext.Direction) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(filepath.Clean(args[0]))
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	results, err := batch.Run(cmd.Context(), in, batch.Options{
		Direction: dir,
		Workers:   a.cfg.Workers,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch a.cfg.Output {
	case config.OutputJSON:
		err = batch.WriteJSON(out, results)
	default:
		err = batch.WriteText(out, results)
	}
	if err != nil {
		return err
	}

	if failed := batch.CountFailed(results); failed > 0 {
		return fmt.Errorf("%w: %d of %d", batch.ErrLinesFailed, failed, len(results))
	}
	return nil
}
