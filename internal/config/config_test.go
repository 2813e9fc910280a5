package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile_MissingFileUsesDefaults(t *testing.T) {
	profile, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile().DayStartHour, profile.DayStartHour)
}

func TestLoadProfile_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day_start_hour: 6\nplanning_horizon_days: 14\n"), 0644))

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, profile.DayStartHour)
	assert.Equal(t, 14, profile.PlanningHorizonDays)
}

func TestLoadProfile_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day_start_hour: 6\n"), 0644))

	t.Setenv("DAYWISE_DAY_START_HOUR", "9")
	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 9.0, profile.DayStartHour)
}

func TestSchedulerConfig_ProjectsProfile(t *testing.T) {
	profile := DefaultProfile()
	cfg := profile.SchedulerConfig()
	assert.Equal(t, profile.DayStartHour, cfg.DayStartHour)
	assert.Equal(t, profile.MaxItemsPerGoalPerDay, cfg.MaxItemsPerGoalPerDay)
}
