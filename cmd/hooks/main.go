package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage agent guard hooks",
	Long: `Manage the guard hooks that vet agent tool calls before execution.

Subcommands:
  init      Initialize a repo with .hooks/config.yaml
  install   Install the guard into ~/.claude/settings.json
  show      Display current hook coverage from settings.json

The bun-test-guard hook vetoes direct 'bun test' invocations so tests always
run through 'mise run test', which isolates HOME and FULCRUM_DIR.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
