package main

import (
	"fmt"

	"github.com/ragtimer/ragtimer/bmc"
	"github.com/spf13/cobra"
)

var (
	bmcWidth     uint
	bmcMaxSteps  int
	bmcSMTLibOut bool
)

var bmcCmd = &cobra.Command{
	Use:   "bmc",
	Short: "Run forward bounded model checking, optionally emitting an SMT-LIB2 script",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(modelPath)
		if err != nil {
			return err
		}
		ctx, cancel := runContext()
		defer cancel()

		traj, ok, err := bmc.ForwardSearch(ctx, m, bmcWidth, bmcMaxSteps)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("no witness trajectory found within the step cap")
			return nil
		}
		fmt.Printf("witness trajectory reaches the target in %d steps\n", len(traj)-1)

		if bmcSMTLibOut {
			enc := bmc.Encode(m, bmcWidth)
			fmt.Print(enc.WriteSMTLIB(len(traj) - 1))
		}
		return nil
	},
}

func init() {
	bmcCmd.Flags().UintVar(&bmcWidth, "width", 9, "bit-vector width")
	bmcCmd.Flags().IntVar(&bmcMaxSteps, "max-steps", 64, "maximum unrolling depth")
	bmcCmd.Flags().BoolVar(&bmcSMTLibOut, "smtlib", false, "emit an SMT-LIB2 script for the discovered step count")
}
