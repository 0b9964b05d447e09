package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hr-recommendation/pkg/log"
)

var (
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hrrec",
	Short: "hrrec - employee recommendations from performance metrics",
	Long: `hrrec asks a language model for up to 4 HR recommendations for one employee
and falls back to fixed threshold rules when the model is unavailable or its
answer cannot be used.

Examples:
  # Ask Gemini (key from GEMINI_API_KEY)
  hrrec recommend --name "John Doe" --efficiency 75 --attendance 88 --bay-hours 8.5

  # Rule engine only
  hrrec fallback --efficiency 68 --attendance 78 --bay-hours 9.2 --output json

  # Show the prompt
  hrrec prompt --name "John Doe" --efficiency 75

  # Run the three sample employees
  hrrec smoke`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log provider calls to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatTable, "output format (table, json, yaml)")

	rootCmd.AddCommand(recommendCmd, fallbackCmd, promptCmd, smokeCmd)
}

func newLogger() log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         log.ModeDebug,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})
}
