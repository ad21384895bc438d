package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/minigold/parameter"
)

// EnvPrefix is prepended to every environment override, e.g. MINIGOLD_TUNING_SHIP_MOVESPEED
const EnvPrefix = "MINIGOLD"

// GraylogConfig holds optional GELF log shipping settings
type GraylogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// RecorderConfig holds combat-event recorder settings
type RecorderConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Driver is "sqlite" or "postgres"
	Driver string `mapstructure:"driver"`
	// DSN is a file path for sqlite (empty = in-memory) or a connection string for postgres
	DSN string `mapstructure:"dsn"`
	// FlushEvery is the number of ticks between batch writes
	FlushEvery int `mapstructure:"flushEvery"`
	BatchSize  int `mapstructure:"batchSize"`
}

// InfluxConfig holds metric export settings
type InfluxConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	URL      string        `mapstructure:"url"`
	Token    string        `mapstructure:"token"`
	Org      string        `mapstructure:"org"`
	Bucket   string        `mapstructure:"bucket"`
	Interval time.Duration `mapstructure:"interval"`
}

// OtelConfig holds OpenTelemetry instrumentation settings
type OtelConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"serviceName"`
}

// Settings is the full runtime configuration of the game binary
type Settings struct {
	LogLevel     string           `mapstructure:"logLevel"`
	LogsDir      string           `mapstructure:"logsDir"`
	TickInterval time.Duration    `mapstructure:"tickInterval"`
	DefaultPawn  string           `mapstructure:"defaultPawn"`
	Audio        bool             `mapstructure:"audio"`
	Graylog      GraylogConfig    `mapstructure:"graylog"`
	Recorder     RecorderConfig   `mapstructure:"recorder"`
	Influx       InfluxConfig     `mapstructure:"influx"`
	Otel         OtelConfig       `mapstructure:"otel"`
	Tuning       parameter.Tuning `mapstructure:"tuning"`
}

// setDefaults registers every key so env overrides resolve without a config file
func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "./logs")
	v.SetDefault("tickInterval", parameter.TickInterval)
	v.SetDefault("defaultPawn", "minigold")
	v.SetDefault("audio", true)

	v.SetDefault("graylog.enabled", false)
	v.SetDefault("graylog.address", "localhost:12201")

	v.SetDefault("recorder.enabled", false)
	v.SetDefault("recorder.driver", "sqlite")
	v.SetDefault("recorder.dsn", "./logs/minigold.db")
	v.SetDefault("recorder.flushEvery", 60)
	v.SetDefault("recorder.batchSize", 500)

	v.SetDefault("influx.enabled", false)
	v.SetDefault("influx.url", "http://localhost:8086")
	v.SetDefault("influx.token", "")
	v.SetDefault("influx.org", "minigold")
	v.SetDefault("influx.bucket", "minigold")
	v.SetDefault("influx.interval", 5*time.Second)

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.serviceName", "minigold")

	t := parameter.DefaultTuning()
	v.SetDefault("tuning.ship.health", t.Ship.Health)
	v.SetDefault("tuning.ship.moveSpeed", t.Ship.MoveSpeed)
	v.SetDefault("tuning.ship.turnRate", t.Ship.TurnRate)
	v.SetDefault("tuning.ship.radius", t.Ship.Radius)
	v.SetDefault("tuning.ship.fireRate", t.Ship.FireRate)
	v.SetDefault("tuning.ship.gunOffset.x", t.Ship.GunOffset.X)
	v.SetDefault("tuning.ship.gunOffset.y", t.Ship.GunOffset.Y)
	v.SetDefault("tuning.ship.gunOffset.z", t.Ship.GunOffset.Z)

	v.SetDefault("tuning.projectile.initialSpeed", t.Projectile.InitialSpeed)
	v.SetDefault("tuning.projectile.maxSpeed", t.Projectile.MaxSpeed)
	v.SetDefault("tuning.projectile.gravityScale", t.Projectile.GravityScale)
	v.SetDefault("tuning.projectile.lifespan", t.Projectile.Lifespan)
	v.SetDefault("tuning.projectile.radius", t.Projectile.Radius)
	v.SetDefault("tuning.projectile.damage", t.Projectile.Damage)
	v.SetDefault("tuning.projectile.impulseScale", t.Projectile.ImpulseScale)

	v.SetDefault("tuning.floating.speed", t.Floating.Speed)
	v.SetDefault("tuning.floating.maxSpeed", t.Floating.MaxSpeed)
	v.SetDefault("tuning.floating.acceleration", t.Floating.Acceleration)
	v.SetDefault("tuning.floating.deceleration", t.Floating.Deceleration)

	v.SetDefault("tuning.world.gravity", t.World.Gravity)
	v.SetDefault("tuning.world.bodyDamping", t.World.BodyDamping)
}

// Load builds settings from defaults, an optional config file and MINIGOLD_* environment overrides
// An empty path skips the file; the file format follows its extension
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the simulation cannot run with
func (s *Settings) Validate() error {
	if s.TickInterval <= 0 {
		return fmt.Errorf("tickInterval must be positive, got %s", s.TickInterval)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		return fmt.Errorf("invalid logLevel %q: %w", s.LogLevel, err)
	}
	if s.Tuning.Ship.FireRate < 0 {
		return fmt.Errorf("tuning.ship.fireRate must not be negative, got %s", s.Tuning.Ship.FireRate)
	}
	if s.Tuning.Projectile.Lifespan <= 0 {
		return fmt.Errorf("tuning.projectile.lifespan must be positive, got %s", s.Tuning.Projectile.Lifespan)
	}
	switch s.Recorder.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown recorder.driver %q", s.Recorder.Driver)
	}
	return nil
}

// Level returns the parsed log level, info when unset
func (s *Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
