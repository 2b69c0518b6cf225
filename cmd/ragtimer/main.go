// Command ragtimer drives dependency-graph construction, guided trace
// generation, cycle-and-commute expansion, and bounded model checking over
// a VAS model file.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	modelPath  string
	timeoutSec int
	configPath string

	logger zerolog.Logger
)

// rootCmd's own RunE is the full pipeline: it builds the dependency graph,
// runs reward-learning trace generation, expands via cycle-and-commute,
// then writes the PRISM explicit-model triple. Each concern is also
// exposed as its own subcommand below.
var rootCmd = &cobra.Command{
	Use:   "ragtimer",
	Short: "Explicit-CTMC trace generation and analysis over VAS models",
	RunE:  runFullPipeline,
}

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "path to the VAS model file (required)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 30, "wall-clock timeout in seconds for the run")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML file overriding the reward-learning magic numbers")
	_ = rootCmd.MarkPersistentFlagRequired("model")

	rootCmd.AddCommand(dependencyGraphCmd, bmcCmd, boundsCmd, cycleCommuteCmd, benchmarkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("ragtimer: run failed")
	}
}
