package main

import "hooks/internal/hooks"

func main() {
	hooks.RunOrDisabled("bun-test-guard", hooks.BunTestGuard)
}
