// Package cmd - words command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srinibashsamal/odianumerals/internal/logging"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words <number>",
	Short: "Convert a number to words",
	Long: `Convert an integer or decimal numeral to words.

Accepts ASCII or Odia digits, with optional comma grouping.

Examples:
  odianum words 150000
  odianum words --lang english 125000
  odianum words --system barnabodha 10000
  odianum words ୧୦.୫`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func runWords(cmd *cobra.Command, args []string) error {
	sys, lang, err := selection()
	if err != nil {
		return err
	}
	logging.Sugar.Debugw("converting", "input", args[0], "system", sys.String(), "lang", lang.String())

	out, err := numwords.ConvertFloat(args[0], sys, lang)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
