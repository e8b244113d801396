package trie

import (
	"strings"
	"testing"
)

func TestInsertAndSearchPrefix(t *testing.T) {
	tr := New()
	tr.Insert("users", 1)
	tr.Insert("user_accounts", 2)
	tr.Insert("orders", 3)

	keys := tr.SearchPrefix("user")
	if len(keys) != 2 {
		t.Fatalf("SearchPrefix(\"user\") returned %d keys, want 2", len(keys))
	}

	for _, k := range []uint32{1, 2} {
		if _, ok := keys[k]; !ok {
			t.Errorf("key %d missing from prefix \"user\"", k)
		}
	}

	if _, ok := tr.SearchPrefix("ord")[3]; !ok {
		t.Error("key 3 missing from prefix \"ord\"")
	}
}

func TestEveryPrefixReachesKey(t *testing.T) {
	tr := New()

	word := "Customer_Orders"
	tr.Insert(word, 7)

	lower := strings.ToLower(word)
	for i := 0; i <= len(lower); i++ {
		if !tr.Contains(lower[:i], 7) {
			t.Errorf("key not reachable from prefix %q", lower[:i])
		}
	}
}

func TestAbsentPrefix(t *testing.T) {
	tr := New()
	tr.Insert("invoices", 4)

	if got := tr.SearchPrefix("xyz"); got != nil {
		t.Errorf("SearchPrefix(\"xyz\") = %v, want nil", got)
	}

	if tr.Contains("invoicex", 4) {
		t.Error("mismatching path should not contain the key")
	}
}

func TestCaseInsensitiveInsert(t *testing.T) {
	tr := New()
	tr.Insert("ORDERS", 9)

	if !tr.Contains("orders", 9) {
		t.Error("uppercase insert should be reachable via lowercase prefix")
	}
}

func TestAggregateKeysAtSharedNodes(t *testing.T) {
	tr := New()
	tr.Insert("account", 1)
	tr.Insert("accrual", 2)
	tr.Insert("acl", 3)

	if n := len(tr.SearchPrefix("ac")); n != 3 {
		t.Errorf("prefix \"ac\" aggregates %d keys, want 3", n)
	}

	if n := len(tr.SearchPrefix("acc")); n != 2 {
		t.Errorf("prefix \"acc\" aggregates %d keys, want 2", n)
	}

	// The root aggregates every inserted key
	if n := len(tr.SearchPrefix("")); n != 3 {
		t.Errorf("empty prefix aggregates %d keys, want 3", n)
	}
}

func TestVeryLongWord(t *testing.T) {
	tr := New()

	word := strings.Repeat("a", 5000)
	tr.Insert(word, 42) // must not blow the stack

	if !tr.Contains(word, 42) {
		t.Error("full-length prefix of a 5000-char word should reach the key")
	}

	if !tr.Contains(word[:2500], 42) {
		t.Error("mid-length prefix of a 5000-char word should reach the key")
	}

	if tr.Len() != 5001 {
		t.Errorf("Len() = %d, want 5001", tr.Len())
	}
}
