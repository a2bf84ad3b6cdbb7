package hooks

import "regexp"

// Matches a bun test invocation at the start of the command or of any
// statement chained with &&, ||, or ;. The \b keeps longer identifiers
// (bun testing) from matching; trailing args (bun test --watch) still do.
// Lexical only: quoting, variable expansion, and subshells are not resolved.
var bunTestRe = regexp.MustCompile(`(?:^|&&|\|\||;)\s*bun\s+test\b`)

const bunTestReason = "Blocked: `bun test` bypasses test isolation. " +
	"Use `mise run test` instead to ensure HOME and FULCRUM_DIR are set to temp directories."

// BunTestGuard is a preToolUse hook that blocks direct bun test runs.
// Tests must go through mise run test, which points HOME and FULCRUM_DIR
// at temp directories so runs cannot corrupt real settings files.
func BunTestGuard(input HookInput) Decision {
	if input.ToolName != "Bash" {
		return NoOpinion()
	}

	cmd := input.Command()
	if cmd == "" {
		return NoOpinion()
	}

	if bunTestRe.MatchString(cmd) {
		return Deny(bunTestReason)
	}

	return NoOpinion()
}
