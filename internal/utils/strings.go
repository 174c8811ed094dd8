package utils

import (
	"strings"
)

// NormalizeCategory trims surrounding whitespace and lowercases a category
// label so that "  Sound " and "sound" compare equal.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsFold reports whether substr occurs within s, ignoring case and
// surrounding whitespace on both operands.
func ContainsFold(s, substr string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return false
	}
	return strings.Contains(s, substr)
}
