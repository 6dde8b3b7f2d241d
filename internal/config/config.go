package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "github.com/go-ini/ini"
)

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

// Config carries the host-side settings: the ordered layout identifier list
// handed to the converter, whether the clipboard round-trip is enabled, and
// the conversion server socket path.
type Config struct {
	Layouts   []string
	Clipboard bool
	Socket    string
}

var defaultLayouts = []string{
	"com.apple.keylayout.US",
	"com.apple.keylayout.Russian",
}

func Default() Config {
	layouts := make([]string, len(defaultLayouts))
	copy(layouts, defaultLayouts)
	return Config{Layouts: layouts}
}

// Load reads an INI config. Missing files fall back to defaults; a present
// but unreadable file is an error.
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
		return cfg, ConfigError{msg: fmt.Sprintf("config: %v", err)}
	}
	if info.IsDir() {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %s is a directory", path)}
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %v", err)}
	}

	if order := file.Section("layouts").Key("order").String(); order != "" {
		layouts := splitComma(order)
		if len(layouts) == 0 {
			return cfg, ConfigError{msg: fmt.Sprintf("empty layout order in %s", path)}
		}
		cfg.Layouts = layouts
	}
	cfg.Clipboard = file.Section("clipboard").Key("enabled").MustBool(cfg.Clipboard)
	cfg.Socket = file.Section("server").Key("socket").MustString(cfg.Socket)

	return cfg, nil
}

// Resolve loads the config from an explicit path when given, otherwise from
// ./retype.ini when present, otherwise returns defaults.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	defaultPath := filepath.Join(cwd, "retype.ini")
	if _, statErr := os.Stat(defaultPath); statErr == nil {
		return Load(defaultPath)
	} else if errors.Is(statErr, os.ErrNotExist) {
		return Default(), nil
	}
	return Default(), nil
}

func splitComma(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
