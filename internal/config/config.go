package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/san-kum/tzclock/internal/timer"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir       = ".tzclock"
	DefaultMode          = "clock"
	DefaultView          = "digital"
	DefaultTheme         = "light"
	DefaultClockInterval = time.Second
	DefaultTimerInterval = 100 * time.Millisecond
	DefaultLogLevel      = "info"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	DataDir   string        `yaml:"data_dir"`
	Mode      string        `yaml:"mode"`
	View      string        `yaml:"view"`
	Hour12    bool          `yaml:"hour12"`
	Theme     string        `yaml:"theme"`
	ThemesDir string        `yaml:"themes_dir"`
	Timer     TimerConfig   `yaml:"timer"`
	Refresh   RefreshConfig `yaml:"refresh"`
	Log       LogConfig     `yaml:"log"`
}

type TimerConfig struct {
	Color      string `yaml:"color"`
	AlertColor string `yaml:"alert_color"`
	Preset     string `yaml:"preset"`
}

type RefreshConfig struct {
	Clock time.Duration `yaml:"clock"`
	Timer time.Duration `yaml:"timer"`
}

type LogConfig struct {
	// File is where logs go; empty disables logging so the TUI stays clean.
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Mode:    DefaultMode,
		View:    DefaultView,
		Theme:   DefaultTheme,
		Timer: TimerConfig{
			Color:      timer.DefaultColor,
			AlertColor: timer.DefaultAlertColor,
		},
		Refresh: RefreshConfig{
			Clock: DefaultClockInterval,
			Timer: DefaultTimerInterval,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Mode {
	case "clock", "timer":
	default:
		result = multierror.Append(result, fmt.Errorf("mode %q: want clock or timer", c.Mode))
	}
	switch c.View {
	case "digital", "analog":
	default:
		result = multierror.Append(result, fmt.Errorf("view %q: want digital or analog", c.View))
	}
	if _, err := timer.ParseColor(c.Timer.Color); err != nil {
		result = multierror.Append(result, fmt.Errorf("timer.color: %w", err))
	}
	if _, err := timer.ParseColor(c.Timer.AlertColor); err != nil {
		result = multierror.Append(result, fmt.Errorf("timer.alert_color: %w", err))
	}
	if c.Timer.Preset != "" && GetPreset(c.Timer.Preset) == nil {
		result = multierror.Append(result, fmt.Errorf("timer.preset %q: unknown (available: %v)", c.Timer.Preset, ListPresets()))
	}
	if c.Refresh.Clock <= 0 {
		result = multierror.Append(result, fmt.Errorf("refresh.clock must be positive, got %v", c.Refresh.Clock))
	}
	if c.Refresh.Timer <= 0 {
		result = multierror.Append(result, fmt.Errorf("refresh.timer must be positive, got %v", c.Refresh.Timer))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
