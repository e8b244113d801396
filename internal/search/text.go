package search

import (
	"strings"

	"github.com/schemascout/schemascout/internal/match"
)

// Normalize lowercases and trims a query or identifier for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitWords tokenizes an identifier on every non-alphanumeric boundary, so
// "user_account-v2" yields ["user", "account", "v2"].
func SplitWords(s string) []string {
	return match.Tokenize(s)
}
