// Package config loads the command line settings from TOML or YAML files and
// CALC_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/calc/internal/format"
)

// FileFormat represents the configuration file format
type FileFormat int

const (
	// FileTOML represents TOML format (default)
	FileTOML FileFormat = iota
	// FileYAML represents YAML format
	FileYAML
)

func (f FileFormat) String() string {
	switch f {
	case FileTOML:
		return "toml"
	case FileYAML:
		return "yaml"
	}
	return "unknown"
}

// Config holds every setting of the calc command.
type Config struct {
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Banner bool   `toml:"banner" yaml:"banner"`
	Color  bool   `toml:"color" yaml:"color"`
	TUI    bool   `toml:"tui" yaml:"tui"`
}

type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the settings used when no file or variable overrides them.
func Default() Config {
	return Config{
		REPL: REPLConfig{
			Prompt: ">>> ",
			Banner: true,
			Color:  true,
		},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the file at path on top of the defaults. The format is detected
// from the extension, TOML unless it is .yaml or .yml. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch detectFormat(path) {
	case FileYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
		}
	}
	return cfg, cfg.Validate()
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FileYAML
	default:
		return FileTOML
	}
}

// SearchPaths returns the files Discover looks at, in order.
func SearchPaths() []string {
	paths := []string{"calc.toml", "calc.yaml", "calc.yml"}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config")
		}
	}
	if dir != "" {
		paths = append(paths,
			filepath.Join(dir, "calc", "config.toml"),
			filepath.Join(dir, "calc", "config.yaml"),
		)
	}
	return paths
}

// Discover returns the first existing file among paths.
func Discover(paths []string) (string, bool) {
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ApplyEnv overrides settings from CALC_* variables found by lookup.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CALC_PROMPT"); ok {
		cfg.REPL.Prompt = v
	}
	if v, ok := lookup("CALC_FORMAT"); ok {
		cfg.Output.Format = v
	}
	if v, ok := lookup("CALC_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("CALC_LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	if v, ok := lookup("CALC_COLOR"); ok {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CALC_COLOR: %w", err)
		}
		cfg.REPL.Color = color
	}
	return cfg.Validate()
}

// Validate rejects settings the command cannot honour.
func (cfg *Config) Validate() error {
	if _, err := format.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	return nil
}
