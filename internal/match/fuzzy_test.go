package match

import "testing"

func TestFuzzyEmptyRules(t *testing.T) {
	// Empty query matches everything, including empty text
	if !Fuzzy("anything", "") {
		t.Error("empty query should match non-empty text")
	}

	if !Fuzzy("", "") {
		t.Error("empty query should match empty text")
	}

	if Fuzzy("", "user") {
		t.Error("non-empty query should not match empty text")
	}
}

func TestFuzzySubstring(t *testing.T) {
	tests := []struct {
		text, query string
		want        bool
	}{
		{"USER_ACCOUNTS", "user", true},
		{"USER_ACCOUNTS", "ACCOUNT", true},
		{"orders", "orders", true},
		{"orders", "invoice", false},
	}

	for _, tt := range tests {
		if got := Fuzzy(tt.text, tt.query); got != tt.want {
			t.Errorf("Fuzzy(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
		}
	}
}

func TestFuzzyTokenPrefix(t *testing.T) {
	if !Fuzzy("customer_order_items", "ite") {
		t.Error("token prefix should match")
	}

	if !Fuzzy("BILLING ADDRESS", "addr") {
		t.Error("token prefix should match across whitespace tokens")
	}
}

func TestFuzzyTypoTolerance(t *testing.T) {
	// One edit away from the whole token
	if !Fuzzy("user_accounts", "usr") {
		t.Error("one-deletion typo against token should match")
	}

	if !Fuzzy("invoice", "invoics") {
		t.Error("one-substitution typo should match")
	}
}

func TestFuzzySubsequence(t *testing.T) {
	// Scatter match: T...U...T
	if !Fuzzy("TEST_USER_TABLE", "TUT") {
		t.Error(`Fuzzy("TEST_USER_TABLE", "TUT") should match as a subsequence`)
	}

	if !Fuzzy("customer_orders", "cmo") {
		t.Error("in-order scattered characters should match")
	}

	if Fuzzy("abc", "acb") {
		t.Error("out-of-order characters should not match")
	}

	if Fuzzy("ab", "abcdef") {
		t.Error("query longer than text should not match")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("user_accounts-v2 (main)")
	want := []string{"user", "accounts", "v2", "main"}

	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
