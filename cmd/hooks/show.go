package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current hook coverage",
	Long:  `Display the hook configuration from ~/.claude/settings.json.`,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&installSettings, "settings", "", "Settings file to read (default ~/.claude/settings.json)")
}

// countGroupHooks counts the hooks across all entries in a raw group slice.
func countGroupHooks(groups []any) int {
	count := 0
	for _, g := range groups {
		gm, ok := g.(map[string]any)
		if !ok {
			continue
		}
		if hs, ok := gm["hooks"].([]any); ok {
			count += len(hs)
		}
	}
	return count
}

func runShow(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No Claude settings found at", path)
			fmt.Println("Run 'hooks install' to set up the guard.")
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}

	hooksMap, ok := settings["hooks"].(map[string]any)
	if !ok {
		fmt.Println("No hooks configured in", path)
		fmt.Println("Run 'hooks install' to set up the guard.")
		return nil
	}

	for _, event := range []string{"PreToolUse", "PostToolUse"} {
		groups, hasEvent := hooksMap[event].([]any)
		if hasEvent && len(groups) > 0 {
			fmt.Printf("  %-12s %d hook(s)\n", event, countGroupHooks(groups))
		} else {
			fmt.Printf("  %-12s none\n", event)
		}
	}

	fmt.Println()
	if eventHasManagedGroup(hooksMap, "PreToolUse") {
		fmt.Println("bun-test-guard is installed")
	} else {
		fmt.Println("bun-test-guard not found. Run 'hooks install' to set up.")
	}
	return nil
}
