package hooks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// HookInput is the JSON payload piped to hooks via stdin.
type HookInput struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// Command extracts the "command" field from tool_input (Bash tool).
// A missing field or unparseable tool_input yields "".
func (h *HookInput) Command() string {
	var m map[string]interface{}
	if err := json.Unmarshal(h.ToolInput, &m); err != nil {
		return ""
	}
	if v, ok := m["command"].(string); ok {
		return v
	}
	return ""
}

// Decision is a guard's verdict on a single invocation record. The zero
// value is "no opinion": the guard either does not apply to the tool or
// found nothing to object to, and the host proceeds with its default.
type Decision struct {
	Denied bool
	Reason string
}

func NoOpinion() Decision {
	return Decision{}
}

func Deny(reason string) Decision {
	return Decision{Denied: true, Reason: reason}
}

// ReadInput reads and parses HookInput from the given reader.
func ReadInput(r io.Reader) (HookInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return HookInput{}, fmt.Errorf("reading stdin: %w", err)
	}
	var input HookInput
	if err := json.Unmarshal(data, &input); err != nil {
		return HookInput{}, fmt.Errorf("parsing input: %w", err)
	}
	return input, nil
}

// IsHookDisabled returns true if name is listed in HOOK_DISABLED (comma-separated, trimmed).
func IsHookDisabled(name string) bool {
	v := os.Getenv("HOOK_DISABLED")
	if v == "" {
		return false
	}
	for _, s := range strings.Split(v, ",") {
		if strings.TrimSpace(s) == name {
			return true
		}
	}
	return false
}

// Run is the standard entrypoint for a guard binary. It reads stdin,
// evaluates the guard, writes the PreToolUse response to stdout, and exits.
// Allow and deny are both successful runs (exit 0); a deny carries its
// verdict in the JSON body, an allow emits nothing. Unparseable input is an
// execution error: diagnostic on stderr, exit 1, and the host falls back to
// its fail-open default.
func Run(guard func(HookInput) Decision) {
	input, err := ReadInput(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := PreToolUseOutput(guard(input))
	if out == nil {
		os.Exit(0)
	}
	data, _ := json.Marshal(out)
	fmt.Println(string(data))
	os.Exit(0)
}

// RunOrDisabled runs the guard unless its name is in HOOK_DISABLED; a
// disabled guard emits nothing and exits 0.
func RunOrDisabled(name string, guard func(HookInput) Decision) {
	if IsHookDisabled(name) {
		os.Exit(0)
	}
	Run(guard)
}
