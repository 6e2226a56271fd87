// Package config loads blockfall settings from an optional file and BLOCKFALL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "BLOCKFALL"

type Config struct {
	Log     LogConf     `mapstructure:"log"`
	Audio   AudioConf   `mapstructure:"audio"`
	Display DisplayConf `mapstructure:"display"`
	Game    GameConf    `mapstructure:"game"`
	Debug   DebugConf   `mapstructure:"debug"`
	Soak    SoakConf    `mapstructure:"soak"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type AudioConf struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
	Muted   bool    `mapstructure:"muted"`
}

type DisplayConf struct {
	Title    string `mapstructure:"title"`
	CellSize int    `mapstructure:"cellSize"`
	Panel    bool   `mapstructure:"panel"`
}

type GameConf struct {
	// Seed fixes the piece sequence; 0 picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

type DebugConf struct {
	StatsvizAddr string `mapstructure:"statsvizAddr"`
}

type SoakConf struct {
	Sessions int           `mapstructure:"sessions"`
	Duration time.Duration `mapstructure:"duration"`
	Frame    time.Duration `mapstructure:"frame"`
	PerFrame int           `mapstructure:"perFrame"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("audio.muted", false)
	v.SetDefault("display.title", "Blockfall")
	v.SetDefault("display.cellSize", 30)
	v.SetDefault("display.panel", true)
	v.SetDefault("game.seed", 0)
	v.SetDefault("debug.statsvizAddr", "")
	v.SetDefault("soak.sessions", 8)
	v.SetDefault("soak.duration", "10m")
	v.SetDefault("soak.frame", "16ms")
	v.SetDefault("soak.perFrame", 1)
}

// Default returns the configuration used when no file or environment overrides are present.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configFile when it is not empty, applies environment overrides and validates the result.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v outside [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Display.CellSize < 8 || c.Display.CellSize > 128 {
		return fmt.Errorf("%w: display.cellSize %d outside [8, 128]", ErrInvalidConfig, c.Display.CellSize)
	}
	if c.Soak.Sessions < 1 {
		return fmt.Errorf("%w: soak.sessions must be positive", ErrInvalidConfig)
	}
	if c.Soak.Duration <= 0 || c.Soak.Frame <= 0 {
		return fmt.Errorf("%w: soak.duration and soak.frame must be positive", ErrInvalidConfig)
	}
	if c.Soak.PerFrame < 1 {
		return fmt.Errorf("%w: soak.perFrame must be positive", ErrInvalidConfig)
	}
	return nil
}
