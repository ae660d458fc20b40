package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "schedule.json", cfg.Schedule.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("ONCALL_SCHEDULE_PATH", "/etc/oncall/schedule.json")
	t.Setenv("ONCALL_LOG_LEVEL", "debug")
	t.Setenv("ONCALL_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "/etc/oncall/schedule.json", cfg.Schedule.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}
