package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sird-sim/sird-sim/sim"
	"github.com/sird-sim/sird-sim/sim/diff"
	"github.com/sird-sim/sird-sim/sim/estimate"
	"github.com/sird-sim/sird-sim/sim/quad"
	"github.com/sird-sim/sird-sim/sim/table"
)

var (
	integrationName string  // Quadrature rule for ∫ I_abs dt
	derivativeName  string  // Derivative scheme for dI/dt
	minSI           float64 // S·I masking threshold
	minI            float64 // I masking threshold
	trainFraction   float64 // Share of rows used for estimation
	minTrainRows    int     // Lower bound on the estimation rows
)

// estimateCmd recovers {r, a, b} from an observed table
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate SIRD parameters from an observed table",
	Run: func(cmd *cobra.Command, args []string) {
		if tablePath == "" {
			logrus.Fatalf("--table is required")
		}
		tbl, err := ReadTableCSV(tablePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		p, err := estimateFromTable(tbl)
		if err != nil {
			logrus.Fatalf("Estimation failed: %v", err)
		}
		if _, err := sim.NewSimulator(p); err != nil {
			logrus.Warnf("Estimated parameters cannot drive a simulation: %v", err)
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer func() { _ = enc.Close() }()
		if err := enc.Encode(p); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func estimateFromTable(tbl *table.Table) (sim.Params, error) {
	integration, err := quad.ParseMethod(integrationName)
	if err != nil {
		return sim.Params{}, err
	}
	scheme, err := diff.ParseScheme(derivativeName)
	if err != nil {
		return sim.Params{}, err
	}
	if err := tbl.Validate(); err != nil {
		return sim.Params{}, err
	}
	if trainFraction < 1 {
		train, _, err := tbl.Split(trainFraction, minTrainRows)
		if err != nil {
			return sim.Params{}, err
		}
		logrus.Infof("Estimating on %d of %d rows", train.Len(), tbl.Len())
		tbl = train
	}
	e, err := estimate.New(estimate.Config{
		Integration: integration,
		Derivative:  scheme,
		MinSI:       minSI,
		MinI:        minI,
	})
	if err != nil {
		return sim.Params{}, err
	}
	return e.Estimate(tbl)
}

func init() {
	defaults := estimate.DefaultConfig()
	estimateCmd.Flags().StringVar(&tablePath, "table", "", "Observed CSV table (S, I, I_abs, R_abs, D_abs)")
	estimateCmd.Flags().StringVar(&integrationName, "integration", string(defaults.Integration), "Quadrature rule (trapezoid, simpson, left, right)")
	estimateCmd.Flags().StringVar(&derivativeName, "derivative", string(defaults.Derivative), "Derivative scheme (five-point, central)")
	estimateCmd.Flags().Float64Var(&minSI, "min-si", defaults.MinSI, "Rows need S·I above this to estimate r")
	estimateCmd.Flags().Float64Var(&minI, "min-i", defaults.MinI, "Rows need I above this to estimate r")
	estimateCmd.Flags().Float64Var(&trainFraction, "train-fraction", 1, "Fraction of leading rows used for estimation")
	estimateCmd.Flags().IntVar(&minTrainRows, "min-train-rows", 50, "Minimum rows kept when --train-fraction < 1")

	rootCmd.AddCommand(estimateCmd)
}
