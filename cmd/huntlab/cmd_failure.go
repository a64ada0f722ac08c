package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hunt-timing-lab/internal/failure"
	"hunt-timing-lab/internal/render"
)

var failureCmd = &cobra.Command{
	Use:   "failure-rates",
	Short: "Chart trials required per failure rate and confidence level",
	Long:  "Compute, for a grid of failure rates and confidence levels, how many independent trials are needed before at least one success is expected at that confidence.",
	RunE:  runFailureRates,
}

var (
	failMinRate float64
	failMaxRate float64
	failPoints  int
	failFormat  string
)

func init() {
	failureCmd.Flags().Float64Var(&failMinRate, "min-rate", 0.1, "lowest failure rate")
	failureCmd.Flags().Float64Var(&failMaxRate, "max-rate", 0.9, "highest failure rate")
	failureCmd.Flags().IntVar(&failPoints, "points", 20, "failure rate grid points")
	failureCmd.Flags().StringVar(&failFormat, "format", "text", "output format: text or json")
	rootCmd.AddCommand(failureCmd)
}

func runFailureRates(cmd *cobra.Command, args []string) error {
	if failMinRate <= 0 || failMaxRate >= 1 || failMinRate > failMaxRate {
		return fmt.Errorf("failure rates must satisfy 0 < min <= max < 1, got [%v, %v]", failMinRate, failMaxRate)
	}
	if failPoints < 1 {
		return fmt.Errorf("points must be >= 1, got %d", failPoints)
	}

	rates := failure.Rates(failMinRate, failMaxRate, failPoints)
	points := failure.Grid(rates, failure.DefaultConfidenceLevels)
	logger.Debug().Int("points", len(points)).Msg("failure grid computed")

	if strings.EqualFold(failFormat, "json") {
		payload, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}

	render.WriteFailureGrid(os.Stdout, rates, failure.DefaultConfidenceLevels, points)
	return nil
}
