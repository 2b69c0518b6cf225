package main

import (
	"fmt"

	"github.com/ragtimer/ragtimer/dependency"
	"github.com/spf13/cobra"
)

var dependencyGraphCmd = &cobra.Command{
	Use:   "dependency-graph",
	Short: "Print the dependency graph's pre-order transition listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(modelPath)
		if err != nil {
			return err
		}
		dg, err := dependency.Build(m)
		if err != nil {
			return err
		}
		fmt.Print(dg.String())
		if !dg.Enabled() {
			logger.Warn().Msg("dependency graph root never became enabled; target may be unreachable via the heuristic")
		}
		return nil
	},
}
