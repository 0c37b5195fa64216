// Package config loads the citygraph command configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultFile is the optional config file read from the working directory.
	DefaultFile = "citygraph.toml"

	// EnvPrefix prefixes environment overrides, e.g. CITYGRAPH_FROM=Lviv.
	EnvPrefix = "CITYGRAPH_"
)

// ErrEmptyEndpoint is returned when the query start or goal is blank.
var ErrEmptyEndpoint = errors.New("config: from and to must be non-empty")

// Config holds all configuration for the citygraph command.
type Config struct {
	Dataset   string `koanf:"dataset"`   // TOML dataset path; empty selects the reference map
	From      string `koanf:"from"`      // DFS/BFS query start
	To        string `koanf:"to"`        // DFS/BFS query goal
	Render    string `koanf:"render"`    // DOT output path; empty skips rendering
	Verbosity string `koanf:"verbosity"` // debug, info, warn or error
	JSON      bool   `koanf:"json"`      // JSON log lines
}

// Defaults reproduce the zero-argument run.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"dataset":   "",
		"from":      "Kyiv",
		"to":        "Krakow",
		"render":    "",
		"verbosity": "info",
		"json":      false,
	}
}

// Flags registers the command-line flags understood by Load.
func Flags(f *pflag.FlagSet) {
	d := Defaults()
	f.String("dataset", d["dataset"].(string), "TOML dataset file (empty uses the built-in reference map)")
	f.String("from", d["from"].(string), "start city for the DFS/BFS comparison")
	f.String("to", d["to"].(string), "goal city for the DFS/BFS comparison")
	f.String("render", d["render"].(string), "write a Graphviz DOT rendering to this path")
	f.String("verbosity", d["verbosity"].(string), "log level: debug, info, warn, error")
	f.Bool("json", d["json"].(bool), "emit JSON log lines")
}

// Load loads configuration from defaults, DefaultFile, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	return LoadFrom(f, DefaultFile)
}

// LoadFrom is Load with an explicit config file path. A missing file is
// skipped; a malformed one is an error.
func LoadFrom(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. Config file (optional)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if strings.TrimSpace(cfg.From) == "" || strings.TrimSpace(cfg.To) == "" {
		return nil, ErrEmptyEndpoint
	}

	return &cfg, nil
}

// mapProvider feeds a plain map into koanf.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
