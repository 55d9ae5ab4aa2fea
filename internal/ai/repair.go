package ai

import "strings"

// EnsureSemicolonTermination enforces the feature-block post-condition that
// the last non-empty line ends with a semicolon. The model usually obeys the
// prompt, but the guarantee downstream code relies on is made here, not there.
// Idempotent: a correctly terminated block is returned byte-identical.
func EnsureSemicolonTermination(block string) string {
	lines := strings.Split(block, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		trimmed := strings.TrimRight(lines[i], " \t")
		if strings.HasSuffix(trimmed, ";") {
			return block
		}
		lines[i] = trimmed + ";"
		return strings.Join(lines, "\n")
	}
	return block
}

// TrimCaptionPipes strips surrounding whitespace and stray leading/trailing
// pipe delimiters from a story caption. Idempotent.
func TrimCaptionPipes(caption string) string {
	return strings.Trim(caption, "| \t\n")
}
