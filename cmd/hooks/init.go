package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed config_default.yaml
var defaultConfigYAML []byte

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a repo with .hooks/config.yaml",
	Long: `Write the default hook configuration to <path>/.hooks/config.yaml.
Path defaults to the current directory. Run gen-config afterwards to render
the host configs (.claude/settings.json, .cursor/hooks.json).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	hooksDir := filepath.Join(absTarget, ".hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	configPath := filepath.Join(hooksDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("init: %s already exists (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, defaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fmt.Println("wrote", configPath)
	fmt.Println("Run gen-config from the repo root to render host configs.")
	return nil
}
