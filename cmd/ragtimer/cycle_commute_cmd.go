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
	cycleCommuteTraceCount int
	cycleCommuteOutStem    string
)

var cycleCommuteCmd = &cobra.Command{
	Use:   "cycle-commute",
	Short: "Generate base traces, expand via commute and cycle enumeration, and report the resulting explicit CTMC size",
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
		maxCommuteDepth, maxCycleLength := fc.cycleCommuteBounds()

		c := explicit.New(m)
		dg, err := dependency.Build(m)
		if err != nil {
			return err
		}

		e := trace.NewEngine(m, c, trace.WithMagicNumbers(mn), trace.WithLogger(logger))
		if _, err := e.GenerateRewardLearningTraces(ctx, cycleCommuteTraceCount, dg); err != nil {
			return err
		}

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

		if cycleCommuteOutStem != "" {
			if err := prism.WriteAll(cycleCommuteOutStem, c); err != nil {
				return err
			}
			fmt.Printf("wrote %s.sta, %s.tra, %s.lab\n", cycleCommuteOutStem, cycleCommuteOutStem, cycleCommuteOutStem)
		}
		return nil
	},
}

func init() {
	cycleCommuteCmd.Flags().IntVar(&cycleCommuteTraceCount, "traces", 10, "number of base traces to generate before expansion")
	cycleCommuteCmd.Flags().StringVar(&cycleCommuteOutStem, "out", "", "optional stem path to write the .sta/.tra/.lab triple")
}
