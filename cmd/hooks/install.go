package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	installDryRun   bool
	installForce    bool
	installCommand  string
	installSettings string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the guard into Claude Code settings",
	Long: `Install the bun-test-guard hook into ~/.claude/settings.json.

This command:
  1. Reads existing settings.json (if any)
  2. Merges the guard into the PreToolUse hooks, preserving foreign hooks
  3. Creates a backup of the original settings
  4. Writes the updated configuration

Use --command to point at the built hook binary, --settings to target a
different settings file, and --force to overwrite an existing install.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Show what would be installed without making changes")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite an existing guard install")
	installCmd.Flags().StringVar(&installCommand, "command", "./.hooks/bin/bun-test-guard", "Hook command to register")
	installCmd.Flags().StringVar(&installSettings, "settings", "", "Settings file to modify (default ~/.claude/settings.json)")
}

func settingsPath() (string, error) {
	if installSettings != "" {
		return installSettings, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "settings.json"), nil
}

func loadSettings(path string) (map[string]any, error) {
	rawSettings := make(map[string]any)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rawSettings, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		return nil, fmt.Errorf("parse existing settings: %w", err)
	}
	return rawSettings, nil
}

// isManagedHookCommand reports whether a settings.json hook command belongs
// to this repo's guard.
func isManagedHookCommand(cmd string) bool {
	normalized := filepath.ToSlash(cmd)
	return strings.Contains(normalized, "bun-test-guard")
}

// groupIsManaged checks whether a raw hook group contains a managed command.
func groupIsManaged(group map[string]any) bool {
	hooks, ok := group["hooks"].([]any)
	if !ok {
		return false
	}
	for _, h := range hooks {
		hook, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if cmd, ok := hook["command"].(string); ok && isManagedHookCommand(cmd) {
			return true
		}
	}
	return false
}

// eventHasManagedGroup checks if any hook group for the event contains a
// managed command.
func eventHasManagedGroup(hooksMap map[string]any, event string) bool {
	groups, ok := hooksMap[event].([]any)
	if !ok {
		return false
	}
	for _, g := range groups {
		group, ok := g.(map[string]any)
		if !ok {
			continue
		}
		if groupIsManaged(group) {
			return true
		}
	}
	return false
}

// filterForeignGroups returns the event's hook groups with managed groups
// removed, preserving everything installed by other tools.
func filterForeignGroups(hooksMap map[string]any, event string) []any {
	var result []any
	groups, ok := hooksMap[event].([]any)
	if !ok {
		return result
	}
	for _, g := range groups {
		group, ok := g.(map[string]any)
		if !ok {
			result = append(result, g)
			continue
		}
		if !groupIsManaged(group) {
			result = append(result, g)
		}
	}
	return result
}

// guardGroup builds the PreToolUse group for the guard command.
func guardGroup(command string) map[string]any {
	return map[string]any{
		"matcher": "Bash",
		"hooks": []any{
			map[string]any{"type": "command", "command": command},
		},
	}
}

// mergeGuard rewrites the PreToolUse groups: foreign groups stay, managed
// groups are replaced with a single fresh one.
func mergeGuard(rawSettings map[string]any, command string) map[string]any {
	hooksMap := make(map[string]any)
	if existing, ok := rawSettings["hooks"].(map[string]any); ok {
		for k, v := range existing {
			hooksMap[k] = v
		}
	}
	groups := filterForeignGroups(hooksMap, "PreToolUse")
	groups = append(groups, guardGroup(command))
	hooksMap["PreToolUse"] = groups
	return hooksMap
}

func backupSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	backupPath := fmt.Sprintf("%s.backup.%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	fmt.Println("Backed up existing settings to", backupPath)
	return nil
}

func writeSettings(path string, rawSettings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(rawSettings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	rawSettings, err := loadSettings(path)
	if err != nil {
		return err
	}

	if existing, ok := rawSettings["hooks"].(map[string]any); ok && !installForce {
		if eventHasManagedGroup(existing, "PreToolUse") {
			fmt.Println("bun-test-guard already installed. Use --force to overwrite.")
			return nil
		}
	}

	rawSettings["hooks"] = mergeGuard(rawSettings, installCommand)

	if installDryRun {
		fmt.Println("[dry-run] Would write to", path)
		data, err := json.MarshalIndent(rawSettings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if err := backupSettings(path); err != nil {
		return err
	}
	if err := writeSettings(path, rawSettings); err != nil {
		return err
	}

	fmt.Println("Installed bun-test-guard to", path)
	fmt.Println("  PreToolUse (Bash):", installCommand)
	return nil
}
