package main

import (
	"fmt"

	"github.com/ragtimer/ragtimer/bmc"
	"github.com/spf13/cobra"
)

var (
	boundsWidth    uint
	boundsMaxSteps int
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Compute per-variable loose/tight lower/upper bounds via binary search",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(modelPath)
		if err != nil {
			return err
		}
		ctx, cancel := runContext()
		defer cancel()

		bounds, k, err := bmc.ComputeBounds(ctx, m, boundsWidth, boundsMaxSteps)
		if err != nil {
			return err
		}
		fmt.Printf("witness length: %d\n", k)
		for i, v := range m.Variables {
			b := bounds[i]
			fmt.Printf("%s: loose=[%d,%d] tight=[%d,%d]\n", v.Name, b.LooseLower, b.LooseUpper, b.TightLower, b.TightUpper)
		}
		return nil
	},
}

func init() {
	boundsCmd.Flags().UintVar(&boundsWidth, "width", 9, "bit-vector width")
	boundsCmd.Flags().IntVar(&boundsMaxSteps, "max-steps", 64, "maximum unrolling depth")
}
