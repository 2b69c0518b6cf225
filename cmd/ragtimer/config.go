package main

import (
	"os"

	"github.com/ragtimer/ragtimer/trace"
	"gopkg.in/yaml.v3"
)

// fileConfig overrides a subset of trace.MagicNumbers and the
// cycle-and-commute expander's depth/length bounds. Pointer fields
// distinguish "unset" from an explicit zero.
type fileConfig struct {
	BaseReward            *float64 `yaml:"base_reward"`
	DependencyReward      *float64 `yaml:"dependency_reward"`
	TraceReward           *float64 `yaml:"trace_reward"`
	SmallestHistoryWindow *int     `yaml:"smallest_history_window"`
	Clamp                 *float64 `yaml:"clamp"`
	MaxTraceLength        *int     `yaml:"max_trace_length"`
	MaxConsecutiveRejects *int     `yaml:"max_consecutive_rejects"`
	MaxCommuteDepth       *int     `yaml:"max_commute_depth"`
	MaxCycleLength        *int     `yaml:"max_cycle_length"`
}

// loadFileConfig reads and parses configPath exactly once per run; an unset
// path yields the zero fileConfig and no error.
func loadFileConfig(configPath string) (fileConfig, error) {
	var fc fileConfig
	if configPath == "" {
		return fc, nil
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// magicNumbers overlays the declared fields onto trace.DefaultMagicNumbers().
func (fc fileConfig) magicNumbers() trace.MagicNumbers {
	mn := trace.DefaultMagicNumbers()
	if fc.BaseReward != nil {
		mn.BaseReward = *fc.BaseReward
	}
	if fc.DependencyReward != nil {
		mn.DependencyReward = *fc.DependencyReward
	}
	if fc.TraceReward != nil {
		mn.TraceReward = *fc.TraceReward
	}
	if fc.SmallestHistoryWindow != nil {
		mn.SmallestHistoryWindow = *fc.SmallestHistoryWindow
	}
	if fc.Clamp != nil {
		mn.Clamp = *fc.Clamp
	}
	if fc.MaxTraceLength != nil {
		mn.MaxTraceLength = *fc.MaxTraceLength
	}
	if fc.MaxConsecutiveRejects != nil {
		mn.MaxConsecutiveRejects = *fc.MaxConsecutiveRejects
	}
	return mn
}

// cycleCommuteBounds returns max_commute_depth/max_cycle_length, -1 for
// either that is unset, letting the caller fall back to cyclecommute's own
// defaults.
func (fc fileConfig) cycleCommuteBounds() (maxCommuteDepth, maxCycleLength int) {
	maxCommuteDepth, maxCycleLength = -1, -1
	if fc.MaxCommuteDepth != nil {
		maxCommuteDepth = *fc.MaxCommuteDepth
	}
	if fc.MaxCycleLength != nil {
		maxCycleLength = *fc.MaxCycleLength
	}
	return maxCommuteDepth, maxCycleLength
}
