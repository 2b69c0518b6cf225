package main

import (
	"fmt"

	"github.com/ragtimer/ragtimer/cyclecommute"
	"github.com/ragtimer/ragtimer/dependency"
	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/prism"
	"github.com/ragtimer/ragtimer/trace"
	"github.com/spf13/cobra"
)

var (
	pipelineTraceCount int
	pipelineOutStem    string
	pipelineTrim       bool
)

// runFullPipeline is the default action of the "ragtimer" command: build the
// dependency graph, run reward-learning trace generation, expand via
// cycle-and-commute, seal the absorbing ledger, and (if --out is set) write
// the PRISM explicit-model triple.
func runFullPipeline(cmd *cobra.Command, args []string) error {
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
	maxCommuteDepth, maxCycleLength := fc.cycleCommuteBounds()

	dg, err := dependency.Build(m)
	if err != nil {
		return err
	}
	logger.Info().Bool("root_enabled", dg.Enabled()).Msg("dependency graph built")

	if pipelineTrim {
		trimmed := dependency.Trim(m, dg)
		logger.Info().
			Int("variables", len(trimmed.Variables)).
			Int("transitions", len(trimmed.Transitions)).
			Msg("model trimmed to the dependency-graph footprint")
		m = trimmed
		if dg, err = dependency.Build(m); err != nil {
			return err
		}
	}

	c := explicit.New(m)
	e := trace.NewEngine(m, c, trace.WithMagicNumbers(mn), trace.WithLogger(logger))
	stats, err := e.GenerateRewardLearningTraces(ctx, pipelineTraceCount, dg)
	if err != nil {
		return err
	}
	logger.Info().Int("accepted", stats.TracesAccepted).Int("abandoned", stats.TracesAbandoned).Msg("trace generation complete")

	var expOpts []cyclecommute.Option
	if maxCommuteDepth >= 0 {
		expOpts = append(expOpts, cyclecommute.WithMaxCommuteDepth(maxCommuteDepth))
	}
	if maxCycleLength >= 0 {
		expOpts = append(expOpts, cyclecommute.WithMaxCycleLength(maxCycleLength))
	}
	expOpts = append(expOpts, cyclecommute.WithLogger(logger))

	expander := cyclecommute.New(m, c, expOpts...)
	if err := expander.Expand(ctx, e.AcceptedTraces()); err != nil {
		return err
	}
	if err := c.SealAbsorbing(); err != nil {
		return err
	}

	fmt.Printf("explicit states: %d, explicit transitions: %d\n", len(c.States()), len(c.EmittedTransitions()))

	if pipelineOutStem != "" {
		if err := prism.WriteAll(pipelineOutStem, c); err != nil {
			return err
		}
		fmt.Printf("wrote %s.sta, %s.tra, %s.lab\n", pipelineOutStem, pipelineOutStem, pipelineOutStem)
	}
	return nil
}

func init() {
	rootCmd.Flags().IntVar(&pipelineTraceCount, "traces", 20, "number of base traces to generate before expansion")
	rootCmd.Flags().StringVar(&pipelineOutStem, "out", "", "optional stem path to write the .sta/.tra/.lab triple")
	rootCmd.Flags().BoolVar(&pipelineTrim, "trim", false, "trim the model to the dependency-graph footprint before analysis")
}
