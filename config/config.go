// Package config defines the application configuration and its viper loader.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/nebula/parameter"
)

// LoggerConfig controls the zap logger setup.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "console" or "json"
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes before rotation
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// FieldConfig tunes the simulation shell.
type FieldConfig struct {
	Width             int     `mapstructure:"width"`
	Height            int     `mapstructure:"height"`
	InteractionRadius float64 `mapstructure:"interaction_radius"`
	DebounceMS        int     `mapstructure:"debounce_ms"`
	SnapshotDir       string  `mapstructure:"snapshot_dir"`
}

// Config is the root configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Field  FieldConfig  `mapstructure:"field"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "console",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
		Field: FieldConfig{
			Width:             1280,
			Height:            800,
			InteractionRadius: parameter.InteractionRadius,
			DebounceMS:        200,
			SnapshotDir:       ".",
		},
	}
}

// Load reads configuration from the given file (or ./nebula.yaml when empty)
// and NEBULA_* environment variables, layered over Default. A missing config
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("nebula")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("NEBULA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("config: reading %q: %w", v.ConfigFileUsed(), err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("logger.level", cfg.Logger.Level)
	v.SetDefault("logger.format", cfg.Logger.Format)
	v.SetDefault("logger.log_file", cfg.Logger.LogFile)
	v.SetDefault("logger.max_size", cfg.Logger.MaxSize)
	v.SetDefault("logger.max_backups", cfg.Logger.MaxBackups)
	v.SetDefault("logger.max_age", cfg.Logger.MaxAge)
	v.SetDefault("logger.compress", cfg.Logger.Compress)
	v.SetDefault("field.width", cfg.Field.Width)
	v.SetDefault("field.height", cfg.Field.Height)
	v.SetDefault("field.interaction_radius", cfg.Field.InteractionRadius)
	v.SetDefault("field.debounce_ms", cfg.Field.DebounceMS)
	v.SetDefault("field.snapshot_dir", cfg.Field.SnapshotDir)
}
