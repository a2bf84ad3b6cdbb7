package hooks

// HookOutput is the top-level JSON structure written to stdout for a
// PreToolUse permission veto.
type HookOutput struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries the permission decision for the host.
type HookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
}

// PreToolUseOutput converts a Decision into the host's PreToolUse response
// shape. No-opinion decisions produce nil: the hook emits nothing and the
// host applies its default (allow).
func PreToolUseOutput(d Decision) *HookOutput {
	if !d.Denied {
		return nil
	}
	return &HookOutput{
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName:            "PreToolUse",
			PermissionDecision:       "deny",
			PermissionDecisionReason: d.Reason,
		},
	}
}
