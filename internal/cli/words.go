package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/wordfigure/numtext"
)

func (a *app) newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <number>...",
		Short: "Spell out numbers in English",
		Long: `Prints the English cardinal words for each number, one per line.
Digits may be grouped with ',' or '_'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runWords,
	}
}

func (a *app) runWords(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		words, err := numtext.ConvertString(arg)
		if err != nil {
			return err
		}
		a.logger.Debug("converted", zap.String("input", arg), zap.String("words", words))
		fmt.Fprintln(cmd.OutOrStdout(), words)
	}
	return nil
}
