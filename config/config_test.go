package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minigold/parameter"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "./logs", s.LogsDir)
	assert.Equal(t, parameter.TickInterval, s.TickInterval)
	assert.Equal(t, "minigold", s.DefaultPawn)
	assert.True(t, s.Audio)
	assert.False(t, s.Graylog.Enabled)
	assert.Equal(t, "localhost:12201", s.Graylog.Address)
	assert.Equal(t, "sqlite", s.Recorder.Driver)
	assert.Equal(t, 60, s.Recorder.FlushEvery)
	assert.Equal(t, 5*time.Second, s.Influx.Interval)
	assert.Equal(t, "minigold", s.Otel.ServiceName)
	assert.Equal(t, parameter.DefaultTuning(), s.Tuning)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"defaultPawn": "floating",
		"recorder": { "enabled": true, "driver": "postgres", "dsn": "host=db" },
		"tuning": {
			"ship": { "moveSpeed": 500, "fireRate": "250ms", "gunOffset": { "x": 120, "z": 10 } },
			"projectile": { "lifespan": "2s" }
		}
	}`
	path := filepath.Join(dir, "minigold.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, s.Level())
	assert.Equal(t, "floating", s.DefaultPawn)
	assert.True(t, s.Recorder.Enabled)
	assert.Equal(t, "postgres", s.Recorder.Driver)
	assert.Equal(t, "host=db", s.Recorder.DSN)
	assert.Equal(t, 500.0, s.Tuning.Ship.MoveSpeed)
	assert.Equal(t, 250*time.Millisecond, s.Tuning.Ship.FireRate)
	assert.Equal(t, 120.0, s.Tuning.Ship.GunOffset.X)
	assert.Equal(t, 10.0, s.Tuning.Ship.GunOffset.Z)
	assert.Equal(t, 2*time.Second, s.Tuning.Projectile.Lifespan)

	// Untouched keys keep defaults
	assert.Equal(t, parameter.ShipTurnRate, s.Tuning.Ship.TurnRate)
	assert.Equal(t, parameter.ProjectileInitialSpeed, s.Tuning.Projectile.InitialSpeed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MINIGOLD_TUNING_SHIP_MOVESPEED", "750")
	t.Setenv("MINIGOLD_LOGLEVEL", "warn")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 750.0, s.Tuning.Ship.MoveSpeed)
	assert.Equal(t, zerolog.WarnLevel, s.Level())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/minigold.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"tick":     `{"tickInterval": "0s"}`,
		"level":    `{"logLevel": "loud"}`,
		"lifespan": `{"tuning": {"projectile": {"lifespan": "0s"}}}`,
		"driver":   `{"recorder": {"driver": "mysql"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSettingsLevel_Fallback(t *testing.T) {
	s := &Settings{}
	assert.Equal(t, zerolog.InfoLevel, s.Level())
}
