// Package cmd - digits command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srinibashsamal/odianumerals/digits"
)

var (
	digitsASCII bool
	digitsGroup bool
)

// digitsCmd represents the digits command
var digitsCmd = &cobra.Command{
	Use:   "digits <numeral>",
	Short: "Transliterate digits between Odia and ASCII",
	Long: `Rewrite a numeral between Odia and ASCII digit scripts.

By default ASCII digits become Odia; --ascii reverses the direction.
--group inserts Indian comma grouping (1,50,000).

Examples:
  odianum digits 1500
  odianum digits --ascii ୧୫୦୦
  odianum digits --group 150000`,
	Args: cobra.ExactArgs(1),
	RunE: runDigits,
}

func init() {
	digitsCmd.Flags().BoolVarP(&digitsASCII, "ascii", "a", false, "transliterate to ASCII digits")
	digitsCmd.Flags().BoolVarP(&digitsGroup, "group", "g", false, "apply Indian comma grouping")
}

func runDigits(cmd *cobra.Command, args []string) error {
	if digitsGroup {
		out, err := digits.FormatIndian(args[0], !digitsASCII)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if digitsASCII {
		fmt.Println(digits.ToASCII(args[0]))
	} else {
		fmt.Println(digits.ToOdia(args[0]))
	}
	return nil
}
