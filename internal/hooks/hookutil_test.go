package hooks

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestReadInput_Valid(t *testing.T) {
	r := strings.NewReader(`{"tool_name": "Bash", "tool_input": {"command": "ls -la"}}`)
	input, err := ReadInput(r)
	if err != nil {
		t.Fatal(err)
	}
	if input.ToolName != "Bash" {
		t.Errorf("expected Bash, got %q", input.ToolName)
	}
	if got := input.Command(); got != "ls -la" {
		t.Errorf("expected command 'ls -la', got %q", got)
	}
}

func TestReadInput_Malformed(t *testing.T) {
	r := strings.NewReader(`{"tool_name": "Bash",`)
	if _, err := ReadInput(r); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadInput_MissingFields(t *testing.T) {
	r := strings.NewReader(`{}`)
	input, err := ReadInput(r)
	if err != nil {
		t.Fatalf("missing fields should not be an error: %v", err)
	}
	if input.ToolName != "" {
		t.Errorf("expected empty tool name, got %q", input.ToolName)
	}
	if got := input.Command(); got != "" {
		t.Errorf("expected empty command, got %q", got)
	}
}

func TestCommand_AbsentField(t *testing.T) {
	input := HookInput{ToolName: "Bash", ToolInput: json.RawMessage(`{"description": "list files"}`)}
	if got := input.Command(); got != "" {
		t.Errorf("expected empty command, got %q", got)
	}
}

func TestCommand_NonStringField(t *testing.T) {
	input := HookInput{ToolName: "Bash", ToolInput: json.RawMessage(`{"command": 42}`)}
	if got := input.Command(); got != "" {
		t.Errorf("expected empty command for non-string field, got %q", got)
	}
}

func TestIsHookDisabled_Unset(t *testing.T) {
	os.Unsetenv("HOOK_DISABLED")
	if IsHookDisabled("bun-test-guard") {
		t.Error("expected false when HOOK_DISABLED unset")
	}
}

func TestIsHookDisabled_Single(t *testing.T) {
	os.Setenv("HOOK_DISABLED", "bun-test-guard")
	defer os.Unsetenv("HOOK_DISABLED")
	if !IsHookDisabled("bun-test-guard") {
		t.Error("expected true when hook in HOOK_DISABLED")
	}
	if IsHookDisabled("other-guard") {
		t.Error("expected false for other hook")
	}
}

func TestIsHookDisabled_List(t *testing.T) {
	os.Setenv("HOOK_DISABLED", "other-guard, bun-test-guard ,audit")
	defer os.Unsetenv("HOOK_DISABLED")
	if !IsHookDisabled("bun-test-guard") {
		t.Error("expected true for bun-test-guard")
	}
	if IsHookDisabled("validate-shell") {
		t.Error("expected false for unlisted hook")
	}
}

func TestIsHookDisabled_Empty(t *testing.T) {
	os.Setenv("HOOK_DISABLED", "")
	defer os.Unsetenv("HOOK_DISABLED")
	if IsHookDisabled("bun-test-guard") {
		t.Error("expected false when HOOK_DISABLED empty")
	}
}
