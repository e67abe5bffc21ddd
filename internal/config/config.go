// Package config loads monkey.toml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project file looked up from the working directory upwards.
const FileName = "monkey.toml"

type Config struct {
	// Path is the file the settings came from; empty for defaults.
	Path   string       `toml:"-"`
	REPL   REPLConfig   `toml:"repl"`
	Check  CheckConfig  `toml:"check"`
	Format FormatConfig `toml:"format"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Mode   string `toml:"mode"`
	Color  string `toml:"color"`
}

type CheckConfig struct {
	Dir   string `toml:"dir"`
	Jobs  int    `toml:"jobs"`
	Cache bool   `toml:"cache"`
}

type FormatConfig struct {
	Indent int  `toml:"indent"`
	Tabs   bool `toml:"tabs"`
}

// Default returns the settings used when no monkey.toml exists.
func Default() Config {
	return Config{
		REPL:   REPLConfig{Prompt: "> ", Mode: "parse", Color: "auto"},
		Check:  CheckConfig{Dir: ".", Cache: true},
		Format: FormatConfig{Indent: 4},
	}
}

// Root is the directory containing the config file, or "" for defaults.
func (c Config) Root() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// CheckDir resolves [check].dir against the config root.
func (c Config) CheckDir() string {
	if c.Path == "" || filepath.IsAbs(c.Check.Dir) {
		return c.Check.Dir
	}
	return filepath.Join(c.Root(), filepath.FromSlash(c.Check.Dir))
}

// Find walks up from startDir looking for monkey.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover finds and loads the nearest monkey.toml, falling back to
// Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads path. Keys that are absent keep their default values.
func Load(path string) (Config, error) {
	var file Config
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	cfg := Default()
	cfg.Path = path
	if meta.IsDefined("repl", "prompt") {
		cfg.REPL.Prompt = file.REPL.Prompt
	}
	if meta.IsDefined("repl", "mode") {
		cfg.REPL.Mode = strings.ToLower(strings.TrimSpace(file.REPL.Mode))
	}
	if meta.IsDefined("repl", "color") {
		cfg.REPL.Color = strings.ToLower(strings.TrimSpace(file.REPL.Color))
	}
	if meta.IsDefined("check", "dir") {
		cfg.Check.Dir = file.Check.Dir
	}
	if meta.IsDefined("check", "jobs") {
		cfg.Check.Jobs = file.Check.Jobs
	}
	if meta.IsDefined("check", "cache") {
		cfg.Check.Cache = file.Check.Cache
	}
	if meta.IsDefined("format", "indent") {
		cfg.Format.Indent = file.Format.Indent
	}
	if meta.IsDefined("format", "tabs") {
		cfg.Format.Tabs = file.Format.Tabs
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no command can act on.
func (c Config) Validate() error {
	switch c.REPL.Mode {
	case "parse", "eval":
	default:
		return fmt.Errorf("[repl].mode must be parse or eval, got %q", c.REPL.Mode)
	}
	if _, err := ParseColorMode(c.REPL.Color); err != nil {
		return fmt.Errorf("[repl].color: %w", err)
	}
	if strings.TrimSpace(c.Check.Dir) == "" {
		return fmt.Errorf("[check].dir must not be empty")
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must be >= 0, got %d", c.Check.Jobs)
	}
	if c.Format.Indent < 1 || c.Format.Indent > 16 {
		return fmt.Errorf("[format].indent must be between 1 and 16, got %d", c.Format.Indent)
	}
	return nil
}
