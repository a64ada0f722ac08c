package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hunt-timing-lab/internal/config"
)

var sampleConfigCmd = &cobra.Command{
	Use:   "sample-config <path>",
	Short: "Write a sample scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.WriteFile(args[0], []byte(config.Sample), 0o644); err != nil {
			return fmt.Errorf("write sample config: %w", err)
		}
		fmt.Printf("Wrote sample scenario to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleConfigCmd)
}
