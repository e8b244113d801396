package match

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"user", "usr", 1},
		{"table", "cable", 1},
		{"USER", "user", 4}, // distance is case-sensitive; callers normalize first
	}

	for _, tt := range tests {
		if got := EditDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEditDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "schema"},
		{"accounts", "account"},
		{"x", "yz"},
	}

	for _, p := range pairs {
		ab := EditDistance(p[0], p[1])
		ba := EditDistance(p[1], p[0])

		if ab != ba {
			t.Errorf("EditDistance not symmetric for %q/%q: %d vs %d", p[0], p[1], ab, ba)
		}
	}
}

func TestEditDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "user_accounts", "TEST_TABLE"} {
		if got := EditDistance(s, s); got != 0 {
			t.Errorf("EditDistance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestEditDistanceBoundedAgreesWithinBound(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"user", "usr"},
		{"table", "cable"},
		{"abc", "abc"},
		{"", "ab"},
	}

	for _, p := range pairs {
		exact := EditDistance(p[0], p[1])

		for k := exact; k <= exact+2; k++ {
			if got := EditDistanceBounded(p[0], p[1], k); got != exact {
				t.Errorf("EditDistanceBounded(%q, %q, %d) = %d, want exact %d",
					p[0], p[1], k, got, exact)
			}
		}
	}
}

func TestEditDistanceBoundedExceedsBound(t *testing.T) {
	tests := []struct {
		a, b string
		k    int
	}{
		{"kitten", "sitting", 2},
		{"abcdef", "xyz", 1},
		{"", "long_table_name", 3},
		{"short", "a_much_longer_identifier", 5},
	}

	for _, tt := range tests {
		got := EditDistanceBounded(tt.a, tt.b, tt.k)
		if got <= tt.k {
			t.Errorf("EditDistanceBounded(%q, %q, %d) = %d, want > %d",
				tt.a, tt.b, tt.k, got, tt.k)
		}
	}
}

func TestEditDistanceBoundedLengthGapShortCircuit(t *testing.T) {
	// Length difference alone exceeds the bound; no table should be computed
	got := EditDistanceBounded("ab", "abcdefghij", 3)
	if got != 4 {
		t.Errorf("EditDistanceBounded length gap = %d, want 4", got)
	}
}
