package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hunt-timing-lab/internal/config"
	"hunt-timing-lab/internal/render"
	"hunt-timing-lab/internal/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the completion-time simulation",
	Long:  "Run repeated trials of the hunt timeline and report the distribution of the n-th event's completion time.",
	RunE:  runSimulate,
}

var (
	simConfigPath  string
	simEvents      int
	simCurrentTime string
	simHuntDelay   time.Duration
	simCheckOffset time.Duration
	simSamples     int
	simSeed        int64
	simFormat      string
)

func init() {
	simulateCmd.Flags().StringVar(&simConfigPath, "config", "", "path to YAML scenario file")
	simulateCmd.Flags().IntVarP(&simEvents, "events", "n", 0, "which hunt-or-check event to estimate")
	simulateCmd.Flags().StringVar(&simCurrentTime, "current-time", "", "scenario start time, RFC 3339 (default now)")
	simulateCmd.Flags().DurationVar(&simHuntDelay, "hunt-delay", 0, "time until the pending hunt, e.g. 10m")
	simulateCmd.Flags().DurationVar(&simCheckOffset, "check-offset", 0, "trap check offset past the hour, e.g. 15m")
	simulateCmd.Flags().IntVar(&simSamples, "samples", 0, "independent trials per run")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", time.Now().UnixNano(), "random seed")
	simulateCmd.Flags().StringVar(&simFormat, "format", "text", "output format: text or json")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(simConfigPath)
	if err != nil {
		return err
	}
	applyScenarioFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate scenario: %w", err)
	}

	scenario, err := cfg.Scenario()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger.Info().
		Str("run_id", runID).
		Int64("seed", simSeed).
		Int("events", scenario.Events).
		Int("samples", scenario.SampleSize).
		Msg("starting simulation")

	runner := sim.NewRunner(rand.New(rand.NewSource(simSeed)), logger)
	sample, err := runner.Run(scenario)
	if err != nil {
		return fmt.Errorf("run simulation: %w", err)
	}

	report, err := sim.BuildReport(runID, simSeed, scenario, runner.Cache(), sample)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if strings.EqualFold(simFormat, "json") {
		payload, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}

	render.WriteReport(os.Stdout, report)
	return nil
}

// applyScenarioFlags overlays explicitly set flags onto the loaded config, so
// a scenario file and ad hoc flags can mix.
func applyScenarioFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("events") {
		cfg.Events = simEvents
	}
	if flags.Changed("current-time") {
		cfg.CurrentTime = simCurrentTime
	}
	if flags.Changed("hunt-delay") {
		cfg.HuntDelaySeconds = int(simHuntDelay.Seconds())
	}
	if flags.Changed("check-offset") {
		cfg.TrapCheckOffsetMinutes = int(simCheckOffset.Minutes())
	}
	if flags.Changed("samples") {
		cfg.SampleSize = simSamples
	}
	cfg.ApplyDefaults()
}
