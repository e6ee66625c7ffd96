// Package cmd - ordinal command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
	"github.com/srinibashsamal/odianumerals/numwords"
	"github.com/srinibashsamal/odianumerals/ordinal"
)

var ordinalNumeral bool

// ordinalCmd represents the ordinal command
var ordinalCmd = &cobra.Command{
	Use:   "ordinal <number>",
	Short: "Convert a number to its ordinal form",
	Long: `Convert a positive integer to ordinal words, or with --numeral to
the suffixed numeral form (୨ୟ, 2nd).

Examples:
  odianum ordinal 2
  odianum ordinal --numeral 4
  odianum ordinal --lang english 21`,
	Args: cobra.ExactArgs(1),
	RunE: runOrdinal,
}

func init() {
	ordinalCmd.Flags().BoolVarP(&ordinalNumeral, "numeral", "n", false, "emit the suffixed numeral instead of words")
}

func runOrdinal(cmd *cobra.Command, args []string) error {
	_, lang, err := selection()
	if err != nil {
		return err
	}

	parsed, err := numstr.Parse(args[0])
	if err != nil {
		return fmt.Errorf("ordinal: invalid number %q: %w", args[0], numwords.ErrInvalidInput)
	}
	n, err := parsed.IntPart()
	if err != nil || parsed.Frac != "" || parsed.Neg {
		return fmt.Errorf("ordinal: %q is not a positive integer: %w", args[0], numwords.ErrInvalidInput)
	}

	var out string
	if ordinalNumeral {
		out, err = ordinal.Numeral(n, lang)
	} else {
		out, err = ordinal.Words(n, lang)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
