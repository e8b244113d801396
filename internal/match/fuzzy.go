package match

import (
	"strings"
	"unicode"
)

// Fuzzy matches tolerate a single edit against any whole token of the text.
const tokenTypoBudget = 1

// Fuzzy reports whether text matches query, case-insensitively. Checks run
// cheapest-first and the first success wins:
//
//  1. empty query matches everything (including empty text)
//  2. empty text matches nothing else
//  3. substring containment
//  4. any token of text starts with query, or is within one edit of it
//  5. query is a subsequence of text
func Fuzzy(text, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}

	t := strings.ToLower(text)
	if t == "" {
		return false
	}

	if strings.Contains(t, q) {
		return true
	}

	for _, token := range Tokenize(t) {
		if strings.HasPrefix(token, q) {
			return true
		}

		if EditDistanceBounded(token, q, tokenTypoBudget) <= tokenTypoBudget {
			return true
		}
	}

	return isSubsequence(q, t)
}

// Tokenize splits s on every non-alphanumeric boundary.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isSubsequence reports whether every rune of q appears in t in the same
// relative order, not necessarily contiguously.
func isSubsequence(q, t string) bool {
	if len(q) > len(t) {
		return false
	}

	qr := []rune(q)
	i := 0

	for _, r := range t {
		if i < len(qr) && r == qr[i] {
			i++
		}
	}

	return i == len(qr)
}
