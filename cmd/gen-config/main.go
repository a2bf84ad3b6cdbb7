package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"hooks/internal/config"
)

var binPrefix = "./.hooks/bin/"

func cmd(entry config.HookEntry) string { return binPrefix + entry.Name }

func filterEntries(entries []config.HookEntry) []config.HookEntry {
	var out []config.HookEntry
	for _, e := range entries {
		if e.Included() {
			out = append(out, e)
		}
	}
	return out
}

func allEntries(cfg config.Config) []config.HookEntry {
	var out []config.HookEntry
	out = append(out, filterEntries(cfg.PreToolUse)...)
	out = append(out, filterEntries(cfg.PostToolUse)...)
	return out
}

func validateHookBinaries(cfg config.Config, binDir string) error {
	seen := make(map[string]bool)
	for _, e := range allEntries(cfg) {
		if e.Name == "" || seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		path := filepath.Join(binDir, e.Name)
		if info, err := os.Stat(path); err != nil {
			return fmt.Errorf("hook %q: binary not found at %s (run: make -C .hooks all)", e.Name, path)
		} else if info.IsDir() {
			return fmt.Errorf("hook %q: %s is a directory, expected binary", e.Name, path)
		}
	}
	return nil
}

func main() {
	skipValidate := flag.Bool("skip-validate", false, "skip hook binary existence check (e.g. for init before bins installed)")
	flag.Parse()

	configPath := filepath.Join(".hooks", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = filepath.Join("hooks", "config.yaml")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read config: %v\n", err)
		os.Exit(1)
	}

	// Resolve binPrefix: config.yaml output.binDir > default from config path
	if cfg.Output != nil && cfg.Output.BinDir != "" {
		bp := config.ExpandHome(cfg.Output.BinDir)
		if bp[len(bp)-1] != '/' {
			bp += "/"
		}
		binPrefix = bp
	} else if configPath == filepath.Join("hooks", "config.yaml") {
		binPrefix = "./hooks/bin/"
	} else if configPath == "config.yaml" {
		binPrefix = "./bin/"
	}

	binDir := "bin"
	switch configPath {
	case filepath.Join(".hooks", "config.yaml"):
		binDir = filepath.Join(".hooks", "bin")
	case filepath.Join("hooks", "config.yaml"):
		binDir = filepath.Join("hooks", "bin")
	}
	if !*skipValidate {
		if err := validateHookBinaries(*cfg, binDir); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	// Resolve output dirs: env var > config.yaml > defaults
	cursorDir := ".cursor"
	claudeDir := ".claude"
	if cfg.Output != nil && cfg.Output.CursorDir != "" {
		cursorDir = cfg.Output.CursorDir
	}
	if cfg.Output != nil && cfg.Output.ClaudeDir != "" {
		claudeDir = cfg.Output.ClaudeDir
	}
	if d := os.Getenv("HOOK_CONFIG_CURSOR_DIR"); d != "" {
		cursorDir = d
	}
	if d := os.Getenv("HOOK_CONFIG_CLAUDE_DIR"); d != "" {
		claudeDir = d
	}

	var backends []string
	if cfg.Output != nil {
		backends = cfg.Output.Backends
	}

	var cursorJSON []byte
	if wantBackend(backends, "cursor") {
		cursor := cursorConfig(*cfg)
		cursorPath := filepath.Join(cursorDir, "hooks.json")
		if err := os.MkdirAll(filepath.Dir(cursorPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		cursorJSON, _ = json.MarshalIndent(cursor, "", "  ")
		if err := os.WriteFile(cursorPath, cursorJSON, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", cursorPath, err)
			os.Exit(1)
		}
		fmt.Println("wrote", cursorPath)
	}

	if wantBackend(backends, "claude") {
		claude := claudeConfig(*cfg)
		claudePath := filepath.Join(claudeDir, "settings.json")
		if err := os.MkdirAll(filepath.Dir(claudePath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		claudeJSON, _ := json.MarshalIndent(claude, "", "  ")
		if err := os.WriteFile(claudePath, claudeJSON, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", claudePath, err)
			os.Exit(1)
		}
		fmt.Println("wrote", claudePath)
	}

	// Optional .cursor/hooks.env from config.env
	if len(cfg.Env) > 0 && wantBackend(backends, "cursor") {
		envPath := filepath.Join(cursorDir, "hooks.env")
		keys := make([]string, 0, len(cfg.Env))
		for k := range cfg.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb []byte
		for _, k := range keys {
			sb = append(sb, []byte(k+"="+cfg.Env[k]+"\n")...)
		}
		if err := os.WriteFile(envPath, sb, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", envPath, err)
			os.Exit(1)
		}
		fmt.Println("wrote", envPath)
	}

	// Optional: write hooks.json to globalDir (uses same content as Cursor)
	if cfg.Output != nil && cfg.Output.GlobalDir != "" && len(cursorJSON) > 0 {
		globalDir := config.ExpandHome(cfg.Output.GlobalDir)
		globalPath := filepath.Join(globalDir, "hooks.json")
		if err := os.MkdirAll(globalDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(globalPath, cursorJSON, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", globalPath, err)
			os.Exit(1)
		}
		fmt.Println("wrote", globalPath)
	}
}

// wantBackend returns true if backends is empty (all) or contains name.
func wantBackend(backends []string, name string) bool {
	if len(backends) == 0 {
		return true
	}
	for _, b := range backends {
		if b == name {
			return true
		}
	}
	return false
}

func cursorConfig(cfg config.Config) map[string]interface{} {
	hook := func(entries []config.HookEntry) []map[string]interface{} {
		out := make([]map[string]interface{}, 0, len(entries))
		for _, e := range entries {
			m := map[string]interface{}{"command": cmd(e)}
			if e.Matcher != "" {
				m["matcher"] = e.Matcher
			}
			out = append(out, m)
		}
		return out
	}
	return map[string]interface{}{
		"version": cfg.Version,
		"hooks": map[string]interface{}{
			"preToolUse":  hook(filterEntries(cfg.PreToolUse)),
			"postToolUse": hook(filterEntries(cfg.PostToolUse)),
		},
	}
}

func claudeConfig(cfg config.Config) map[string]interface{} {
	return map[string]interface{}{
		"hooks": map[string]interface{}{
			"PreToolUse":  claudeGroups(filterEntries(cfg.PreToolUse)),
			"PostToolUse": claudeGroups(filterEntries(cfg.PostToolUse)),
		},
	}
}

// claudeGroups buckets entries by tool matcher; entries without a matcher
// run for every tool (".*").
func claudeGroups(entries []config.HookEntry) []map[string]interface{} {
	matchers := []string{}
	byMatcher := map[string][]config.HookEntry{}
	for _, e := range entries {
		m := e.Matcher
		if m == "" {
			m = ".*"
		}
		if _, ok := byMatcher[m]; !ok {
			matchers = append(matchers, m)
		}
		byMatcher[m] = append(byMatcher[m], e)
	}
	var out []map[string]interface{}
	for _, m := range matchers {
		out = append(out, map[string]interface{}{"matcher": m, "hooks": hookList(byMatcher[m])})
	}
	return out
}

func hookList(entries []config.HookEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{"type": "command", "command": cmd(e)})
	}
	return out
}
