package main

import (
	"encoding/json"
	"testing"

	"hooks/internal/config"
)

func boolPtr(b bool) *bool { return &b }

func TestClaudeGroups_BucketsByMatcher(t *testing.T) {
	entries := []config.HookEntry{
		{Name: "bun-test-guard", Matcher: "Bash"},
		{Name: "no-matcher-hook"},
		{Name: "second-bash-hook", Matcher: "Bash"},
	}
	groups := claudeGroups(entries)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	byMatcher := map[string][]map[string]interface{}{}
	for _, g := range groups {
		matcher := g["matcher"].(string)
		byMatcher[matcher] = g["hooks"].([]map[string]interface{})
	}
	if len(byMatcher["Bash"]) != 2 {
		t.Errorf("expected 2 Bash hooks, got %d", len(byMatcher["Bash"]))
	}
	if len(byMatcher[".*"]) != 1 {
		t.Errorf("expected 1 catch-all hook, got %d", len(byMatcher[".*"]))
	}
	first := byMatcher["Bash"][0]
	if first["type"] != "command" {
		t.Errorf("expected type command, got %v", first["type"])
	}
	if first["command"] != binPrefix+"bun-test-guard" {
		t.Errorf("unexpected command: %v", first["command"])
	}
}

func TestClaudeConfig_RoundTripsAsJSON(t *testing.T) {
	cfg := config.Config{
		Version: 1,
		PreToolUse: []config.HookEntry{
			{Name: "bun-test-guard", Matcher: "Bash"},
			{Name: "off", Matcher: "Bash", Enabled: boolPtr(false)},
		},
	}
	data, err := json.Marshal(claudeConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	hooks, ok := m["hooks"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected hooks object, got %v", m)
	}
	pre, ok := hooks["PreToolUse"].([]interface{})
	if !ok || len(pre) != 1 {
		t.Fatalf("expected 1 PreToolUse group, got %v", hooks["PreToolUse"])
	}
	group := pre[0].(map[string]interface{})
	if group["matcher"] != "Bash" {
		t.Errorf("expected Bash matcher, got %v", group["matcher"])
	}
	if entries := group["hooks"].([]interface{}); len(entries) != 1 {
		t.Errorf("disabled entry should be filtered, got %d entries", len(entries))
	}
}

func TestCursorConfig_EmitsCamelCaseEvents(t *testing.T) {
	cfg := config.Config{
		Version:    1,
		PreToolUse: []config.HookEntry{{Name: "bun-test-guard", Matcher: "Bash"}},
	}
	out := cursorConfig(cfg)
	if out["version"] != 1 {
		t.Errorf("expected version 1, got %v", out["version"])
	}
	hooks := out["hooks"].(map[string]interface{})
	pre := hooks["preToolUse"].([]map[string]interface{})
	if len(pre) != 1 {
		t.Fatalf("expected 1 preToolUse entry, got %d", len(pre))
	}
	if pre[0]["matcher"] != "Bash" {
		t.Errorf("expected Bash matcher, got %v", pre[0]["matcher"])
	}
}

func TestWantBackend(t *testing.T) {
	if !wantBackend(nil, "claude") {
		t.Error("empty backends should include all")
	}
	if !wantBackend([]string{"claude", "cursor"}, "cursor") {
		t.Error("listed backend should be wanted")
	}
	if wantBackend([]string{"claude"}, "cursor") {
		t.Error("unlisted backend should not be wanted")
	}
}

func TestValidateHookBinaries_MissingBinary(t *testing.T) {
	cfg := config.Config{
		PreToolUse: []config.HookEntry{{Name: "bun-test-guard", Matcher: "Bash"}},
	}
	if err := validateHookBinaries(cfg, t.TempDir()); err == nil {
		t.Error("expected error when hook binary is missing")
	}
}
