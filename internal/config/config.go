package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// HookEntry is one configured hook. In YAML it is either a bare name string
// or a mapping with name, matcher, and enabled.
type HookEntry struct {
	Name    string `yaml:"name"`
	Matcher string `yaml:"matcher,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`
}

func (h *HookEntry) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		h.Name = s
		return nil
	}
	var m struct {
		Name    string `yaml:"name"`
		Matcher string `yaml:"matcher"`
		Enabled *bool  `yaml:"enabled"`
	}
	if err := unmarshal(&m); err != nil {
		return err
	}
	h.Name = m.Name
	h.Matcher = m.Matcher
	h.Enabled = m.Enabled
	return nil
}

func (h HookEntry) Included() bool {
	return h.Enabled == nil || *h.Enabled
}

// Output controls where gen-config writes host configs and where hook
// binaries are expected to live.
type Output struct {
	Backends  []string `yaml:"backends,omitempty"`
	BinDir    string   `yaml:"binDir,omitempty"`
	ClaudeDir string   `yaml:"claudeDir,omitempty"`
	CursorDir string   `yaml:"cursorDir,omitempty"`
	GlobalDir string   `yaml:"globalDir,omitempty"`
}

type Config struct {
	Version     int               `yaml:"version"`
	Env         map[string]string `yaml:"env,omitempty"`
	Output      *Output           `yaml:"output,omitempty"`
	PreToolUse  []HookEntry       `yaml:"preToolUse"`
	PostToolUse []HookEntry       `yaml:"postToolUse"`
}

// EventName and entries for that event.
type EventEntries struct {
	Event   string
	Entries *[]HookEntry
}

func (c *Config) Events() []EventEntries {
	return []EventEntries{
		{"preToolUse", &c.PreToolUse},
		{"postToolUse", &c.PostToolUse},
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// FindConfigPath searches upward from the current working directory for a
// configuration file and returns the file path and the directory that
// contains it. It looks for ".hooks/config.yaml", then "hooks/config.yaml",
// then "config.yaml" in each directory.
func FindConfigPath() (configPath, workDir string, err error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	startDir := dir
	for {
		for _, rel := range []string{
			filepath.Join(".hooks", "config.yaml"),
			filepath.Join("hooks", "config.yaml"),
			"config.yaml",
		} {
			p := filepath.Join(dir, rel)
			if _, err := os.Stat(p); err == nil {
				return p, dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("no .hooks/config.yaml, hooks/config.yaml, or config.yaml found (searched up from %s)", startDir)
		}
		dir = parent
	}
}

// Load reads a YAML configuration file from the given path and unmarshals it
// into a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save marshals cfg to YAML and writes it to the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
