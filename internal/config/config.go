// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the layoutpreview configuration from a YAML
// file, the environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/assessment/layoutmodifier/internal/screen"
	"github.com/assessment/layoutmodifier/theme"
	"github.com/assessment/layoutmodifier/unit"
)

// EnvPrefix prefixes environment variables, such as
// LAYOUTPREVIEW_SCREEN_FRACTION.
const EnvPrefix = "LAYOUTPREVIEW"

// Config holds the entire application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Screen ScreenConfig `mapstructure:"screen" yaml:"screen"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	// LogFile, if set, receives JSON logs with rotation.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// ScreenConfig describes the demo screen.
type ScreenConfig struct {
	Fraction float32 `mapstructure:"fraction" yaml:"fraction"`
	// Offset is a fixed "x,y" pixel offset. It overrides Fraction
	// when set.
	Offset     string  `mapstructure:"offset" yaml:"offset"`
	Density    float32 `mapstructure:"density" yaml:"density"`
	RTL        bool    `mapstructure:"rtl" yaml:"rtl"`
	Color      string  `mapstructure:"color" yaml:"color"`
	Corner     float32 `mapstructure:"corner" yaml:"corner"`
	Background string  `mapstructure:"background" yaml:"background"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	// Path of the rendered PNG.
	Path string `mapstructure:"path" yaml:"path"`
	// Zoom scales the rendered image by an integer factor.
	Zoom int `mapstructure:"zoom" yaml:"zoom"`
	// Format of the measure report, "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("screen.fraction", 0.5)
	v.SetDefault("screen.offset", "")
	v.SetDefault("screen.density", 1.0)
	v.SetDefault("screen.rtl", false)
	v.SetDefault("screen.color", "blue")
	v.SetDefault("screen.corner", 0.0)
	v.SetDefault("screen.background", "")

	v.SetDefault("output.path", "preview.png")
	v.SetDefault("output.zoom", 1)
	v.SetDefault("output.format", "text")
}

// BindEnv makes v read LAYOUTPREVIEW_<SECTION>_<KEY> environment
// variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked while building the
// screen.
func (c Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logger format %q", c.Logger.Format)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if c.Output.Zoom < 1 {
		return fmt.Errorf("zoom must be at least 1, got %d", c.Output.Zoom)
	}
	if c.Screen.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", c.Screen.Density)
	}
	return nil
}

// Build converts the screen configuration.
func (s ScreenConfig) Build() (screen.Config, error) {
	cfg := screen.DefaultConfig()
	cfg.Fraction = s.Fraction
	cfg.Density = s.Density
	cfg.RTL = s.RTL
	cfg.Corner = unit.Dp(s.Corner)
	if s.Offset != "" {
		off, err := ParseOffset(s.Offset)
		if err != nil {
			return screen.Config{}, err
		}
		cfg.Fixed = &off
	}
	if s.Color != "" {
		c, err := theme.ParseColor(s.Color)
		if err != nil {
			return screen.Config{}, err
		}
		cfg.Color = c
	}
	if s.Background != "" {
		c, err := theme.ParseColor(s.Background)
		if err != nil {
			return screen.Config{}, err
		}
		cfg.Theme.Background = c
	}
	return cfg, cfg.Validate()
}

// ParseOffset parses an "x,y" pixel offset.
func ParseOffset(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, errors.New(`offset must be written as "x,y"`)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid offset x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid offset y: %w", err)
	}
	return image.Pt(x, y), nil
}
