package main

import (
	"fmt"

	"github.com/ragtimer/ragtimer"
	"github.com/spf13/cobra"
)

var benchmarkTraceCount int

// benchmarkCmd runs both trace-generation variants the same number of times
// over the same model and reports wall-clock time, acceptance counts, and
// the resulting explicit-state/transition counts side by side.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare the reward-learning and random-dependency trace variants on the same model",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(modelPath)
		if err != nil {
			return err
		}
		ctx, cancel := runContext()
		defer cancel()

		fc, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}
		mn := fc.magicNumbers()

		for _, v := range []ragtimer.Variant{ragtimer.RewardLearning, ragtimer.RandomDependency} {
			res, err := ragtimer.RunBenchmark(ctx, m, v, benchmarkTraceCount, mn, nil)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s accepted=%-6d abandoned=%-6d states=%-6d transitions=%-6d elapsed=%s\n",
				res.Variant, res.Stats.TracesAccepted, res.Stats.TracesAbandoned, res.States, res.Transitions, res.Elapsed)
		}
		return nil
	},
}

func init() {
	benchmarkCmd.Flags().IntVar(&benchmarkTraceCount, "traces", 50, "number of traces to generate per variant")
}
