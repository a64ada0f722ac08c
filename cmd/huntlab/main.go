package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hunt-timing-lab/internal/logging"
)

var (
	logger  zerolog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "huntlab",
	Short: "Monte Carlo estimator for hunt completion timing",
	Long:  "huntlab estimates when the n-th hunt-or-trap-check event will land, by simulating randomly spaced hunts interleaved with hourly trap checks.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Setup(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
