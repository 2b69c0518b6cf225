package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ragtimer/ragtimer/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig_NoPathYieldsDefaults(t *testing.T) {
	fc, err := loadFileConfig("")
	require.NoError(t, err)
	assert.Equal(t, trace.DefaultMagicNumbers(), fc.magicNumbers())

	depth, length := fc.cycleCommuteBounds()
	assert.Equal(t, -1, depth)
	assert.Equal(t, -1, length)
}

func TestFileConfig_OverlaysDeclaredFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dependency_reward: 250.0\nmax_trace_length: 10\n"), 0o644))

	fc, err := loadFileConfig(path)
	require.NoError(t, err)
	mn := fc.magicNumbers()
	assert.Equal(t, 250.0, mn.DependencyReward)
	assert.Equal(t, 10, mn.MaxTraceLength)
	assert.Equal(t, trace.DefaultMagicNumbers().BaseReward, mn.BaseReward)
}

func TestFileConfig_UnsetCycleCommuteBoundsReportNegativeOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_cycle_length: 3\n"), 0o644))

	fc, err := loadFileConfig(path)
	require.NoError(t, err)
	depth, length := fc.cycleCommuteBounds()
	assert.Equal(t, -1, depth)
	assert.Equal(t, 3, length)
}
