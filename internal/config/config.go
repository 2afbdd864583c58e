package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Cfg holds the runtime settings that are not tied to a single invocation's
// input and output paths.
type Cfg struct {
	// Style is the comment dialect name: "c", "shell" or "xml".
	// Empty means the default dialect.
	Style string

	// RemoveBlankLines enables the second pass that drops whitespace-only lines.
	RemoveBlankLines bool

	// LogLevel for the default slog handler.
	LogLevel slog.Level
}

// fileCfg is the on-disk YAML layout.
//
//	style: c
//	remove_blank_lines: false
//	log_level: debug
type fileCfg struct {
	Style            string `yaml:"style"`
	RemoveBlankLines *bool  `yaml:"remove_blank_lines"`
	LogLevel         string `yaml:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() *Cfg {
	return &Cfg{
		RemoveBlankLines: true,
		LogLevel:         slog.LevelWarn,
	}
}

// Load reads .env (if present), then the YAML file at path (if path is
// empty, STRIP_CONFIG names it), then environment variables, each layer
// overriding the previous one.
//
//	STRIP_STYLE=c|shell|xml
//	STRIP_REMOVE_BLANK_LINES=true|false|1|0
//	STRIP_LOG_LEVEL=debug|info|warn|error
func Load(path string) (*Cfg, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("STRIP_CONFIG"))
	}
	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if style := strings.TrimSpace(os.Getenv("STRIP_STYLE")); style != "" {
		cfg.Style = style
	}

	if raw := strings.TrimSpace(os.Getenv("STRIP_REMOVE_BLANK_LINES")); raw != "" {
		v, err := parseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("STRIP_REMOVE_BLANK_LINES: %w", err)
		}
		cfg.RemoveBlankLines = v
	}

	if raw := strings.TrimSpace(os.Getenv("STRIP_LOG_LEVEL")); raw != "" {
		lvl, err := parseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("STRIP_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// LoadFile decodes the YAML file at path over cfg. Keys missing from the
// file leave cfg untouched.
func LoadFile(path string, cfg *Cfg) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	var fc fileCfg
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if fc.Style != "" {
		cfg.Style = strings.TrimSpace(fc.Style)
	}
	if fc.RemoveBlankLines != nil {
		cfg.RemoveBlankLines = *fc.RemoveBlankLines
	}
	if fc.LogLevel != "" {
		lvl, err := parseLevel(fc.LogLevel)
		if err != nil {
			return fmt.Errorf("config file %s: log_level: %w", path, err)
		}
		cfg.LogLevel = lvl
	}
	return nil
}

func parseBool(raw string) (bool, error) {
	switch {
	case raw == "1" || strings.EqualFold(raw, "true"):
		return true, nil
	case raw == "0" || strings.EqualFold(raw, "false"):
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", raw)
}

func parseLevel(raw string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, err
	}
	return lvl, nil
}
