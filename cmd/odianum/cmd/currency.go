// Package cmd - currency command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srinibashsamal/odianumerals/currency"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// currencyCmd represents the currency command
var currencyCmd = &cobra.Command{
	Use:   "currency <amount>",
	Short: "Phrase an amount as tanka and paisa",
	Long: `Convert a monetary amount into currency words.

The fractional part is read as paisa: the first two fractional digits,
right-padded with zero.

Examples:
  odianum currency 105.70
  odianum currency --lang english 125000.25
  odianum currency ୧୦.୫୦`,
	Args: cobra.ExactArgs(1),
	RunE: runCurrency,
}

func runCurrency(cmd *cobra.Command, args []string) error {
	sys, lang, err := selection()
	if err != nil {
		return err
	}

	var opts []currency.Option
	if sys == numwords.Barnabodha {
		opts = append(opts, currency.WithBarnabodha())
	}
	out, err := currency.WordsString(args[0], lang, opts...)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
