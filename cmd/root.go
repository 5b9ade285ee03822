package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sird-sim/sird-sim/sim"
)

var (
	logLevel  string  // Log verbosity level
	tablePath string  // CSV table read by every subcommand
	paramR    float64 // Contact rate r
	paramA    float64 // Recovery rate a
	paramB    float64 // Mortality rate b
	method    string  // ODE integration method
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sird-sim",
	Short: "Calibrate, simulate and analyze SIRD epidemic models",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addParamFlags registers --r, --a and --b on c.
func addParamFlags(c *cobra.Command) {
	c.Flags().Float64Var(&paramR, "r", 0, "Contact rate r in (0, 1]")
	c.Flags().Float64Var(&paramA, "a", 0, "Recovery rate a")
	c.Flags().Float64Var(&paramB, "b", 0, "Mortality rate b")
}

func flagParams() sim.Params {
	return sim.Params{R: paramR, A: paramA, B: paramB}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
