package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	ini "github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ToggleKey string
	Layout    string
	Keymap    map[string]string
	LogLevel  string
	LogFormat string
	Socket    string
}

const (
	defaultToggle    = "ctrl+space"
	defaultLayout    = "dubeolsik"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	DefaultFileName = "hanpad.ini"
)

// ConfigError reports an invalid setting.
type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func Default() Config {
	return Config{
		ToggleKey: defaultToggle,
		Layout:    defaultLayout,
		Keymap:    map[string]string{},
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// fileConfig is the on-disk shape shared by the TOML and YAML formats.
type fileConfig struct {
	Layout struct {
		Name string `toml:"name" yaml:"name"`
	} `toml:"layout" yaml:"layout"`
	Toggle struct {
		Key string `toml:"key" yaml:"key"`
	} `toml:"toggle" yaml:"toggle"`
	Keymap map[string]string `toml:"keymap" yaml:"keymap"`
	Log    struct {
		Level  string `toml:"level" yaml:"level"`
		Format string `toml:"format" yaml:"format"`
	} `toml:"log" yaml:"log"`
	Server struct {
		Socket string `toml:"socket" yaml:"socket"`
	} `toml:"server" yaml:"server"`
}

// Load reads path on top of the defaults. An empty or missing path yields
// the defaults. The format follows the extension: .toml, .yaml/.yml, and INI
// for anything else.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	clean := filepath.Clean(path)
	switch strings.ToLower(filepath.Ext(clean)) {
	case ".toml":
		var fc fileConfig
		if _, err := toml.DecodeFile(clean, &fc); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg.merge(fc)
	case ".yaml", ".yml":
		data, err := os.ReadFile(clean)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg.merge(fc)
	default:
		if err := cfg.loadINI(clean); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *Config) loadINI(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg.ToggleKey = file.Section("toggle").Key("key").MustString(cfg.ToggleKey)
	cfg.Layout = file.Section("layout").Key("name").MustString(cfg.Layout)
	cfg.LogLevel = file.Section("log").Key("level").MustString(cfg.LogLevel)
	cfg.LogFormat = file.Section("log").Key("format").MustString(cfg.LogFormat)
	cfg.Socket = file.Section("server").Key("socket").MustString(cfg.Socket)

	for _, key := range file.Section("keymap").Keys() {
		cfg.Keymap[key.Name()] = key.String()
	}
	return nil
}

func (cfg *Config) merge(fc fileConfig) {
	if v := strings.TrimSpace(fc.Layout.Name); v != "" {
		cfg.Layout = v
	}
	if v := strings.TrimSpace(fc.Toggle.Key); v != "" {
		cfg.ToggleKey = v
	}
	if v := strings.TrimSpace(fc.Log.Level); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(fc.Log.Format); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(fc.Server.Socket); v != "" {
		cfg.Socket = v
	}
	for k, v := range fc.Keymap {
		cfg.Keymap[k] = v
	}
}

// Validate checks the settings that have a closed set of values.
func (cfg Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log level '%s'", cfg.LogLevel)}
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "text", "json":
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log format '%s'", cfg.LogFormat)}
	}
	if strings.TrimSpace(cfg.ToggleKey) == "" {
		return ConfigError{msg: "toggle key must not be empty"}
	}
	return nil
}

// Resolve loads cliPath when given, otherwise ./hanpad.ini when present,
// otherwise the defaults.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		if _, err := os.Stat(cliPath); err != nil {
			return Default(), fmt.Errorf("config: %w", err)
		}
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	defaultPath := filepath.Join(cwd, DefaultFileName)
	if _, statErr := os.Stat(defaultPath); statErr == nil {
		return Load(defaultPath)
	}
	return Default(), nil
}
