// Package cmd provides the CLI commands for odianum.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srinibashsamal/odianumerals/internal/logging"
	"github.com/srinibashsamal/odianumerals/numwords"
)

var (
	langName   string
	systemName string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "odianum",
	Short: "Convert numbers to Odia words, digits and currency phrases",
	Long: `odianum converts numeric values to Odia-language text: cardinal words
on the modern or classical Barnabodha scale, ordinals, currency phrasing,
digit transliteration and spoken arithmetic.

Examples:
  odianum words 150000
  odianum words --system barnabodha 10000
  odianum currency 105.70
  odianum ordinal 2
  odianum digits 1500
  odianum expr "10 + 20"`,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&langName, "lang", "l", "odia", "output language (odia, roman, odilish, english)")
	rootCmd.PersistentFlags().StringVarP(&systemName, "system", "s", "modern", "numbering system (modern, barnabodha)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(ordinalCmd)
	rootCmd.AddCommand(digitsCmd)
	rootCmd.AddCommand(exprCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	} else {
		cfg.Level = "warn"
	}
	if err := logging.Initialize(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// selection resolves the persistent language and system flags.
func selection() (numwords.System, numwords.Language, error) {
	sys, err := numwords.ParseSystem(systemName)
	if err != nil {
		return 0, 0, err
	}
	lang, err := numwords.ParseLanguage(langName)
	if err != nil {
		return 0, 0, err
	}
	return sys, lang, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("odianum version 0.1.0")
	},
}
