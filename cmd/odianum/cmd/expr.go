// Package cmd - expr command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srinibashsamal/odianumerals/mathexpr"
	"github.com/srinibashsamal/odianumerals/numwords"
)

var exprVerbs bool

// exprCmd represents the expr command
var exprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Solve and speak a simple arithmetic expression",
	Long: `Evaluate "number operator number" and read the whole equation as
words: odianum expr "5 + 2" prints "ପାଞ୍ଚ ମିଶାଣ ଦୁଇ ସମାନ ସାତ".

Operators: + - * x / ÷. Odia digits are accepted.

Examples:
  odianum expr "10 + 20"
  odianum expr --verbs "5 + 2"
  odianum expr "୫ x ୩"`,
	Args: cobra.ExactArgs(1),
	RunE: runExpr,
}

func init() {
	exprCmd.Flags().BoolVarP(&exprVerbs, "verbs", "b", false, "phrase the operator as an action verb")
}

func runExpr(cmd *cobra.Command, args []string) error {
	sys, lang, err := selection()
	if err != nil {
		return err
	}

	var opts []mathexpr.Option
	if exprVerbs {
		opts = append(opts, mathexpr.WithVerbs())
	}
	if sys == numwords.Barnabodha {
		opts = append(opts, mathexpr.WithBarnabodha())
	}
	out, err := mathexpr.Solve(args[0], lang, opts...)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
