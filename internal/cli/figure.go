package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/wordfigure/numtext"
)

func (a *app) newFigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "figure <words...>",
		Short: "Read English number words back into a figure",
		Long: `Joins the arguments with spaces and prints the number they spell.
Quoting is optional: 'figure one hundred and five' and
'figure "one hundred and five"' are equivalent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runFigure,
	}
}

func (a *app) runFigure(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	n, err := numtext.Parse(text)
	if err != nil {
		return err
	}
	a.logger.Debug("parsed", zap.String("input", text), zap.Int64("figure", n))
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
