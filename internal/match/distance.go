// Package match provides the text-matching primitives used by the search
// engine: Levenshtein edit distance (plain and bounded) and the fuzzy
// predicate that combines substring, prefix, typo, and subsequence checks.
package match

// EditDistance computes the Levenshtein distance between a and b using a
// single DP row rather than the full matrix. The inputs are swapped so the
// row has length min(len(a), len(b))+1.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the shorter string in rb so the row stays small
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0] // row value from the previous iteration, diagonal cell
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			cur := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = minOf(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}

	return row[len(rb)]
}

// EditDistanceBounded computes the Levenshtein distance between a and b but
// gives up as soon as the distance provably exceeds maxDist, returning
// maxDist+1. Whenever the true distance is <= maxDist the result equals
// EditDistance(a, b); otherwise only result > maxDist is guaranteed.
func EditDistanceBounded(a, b string, maxDist int) int {
	if maxDist < 0 {
		maxDist = 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	// Length gap alone already exceeds the bound
	if len(ra)-len(rb) > maxDist {
		return maxDist + 1
	}

	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0]
		row[0] = i
		rowMin := row[0]

		for j := 1; j <= len(rb); j++ {
			cur := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = minOf(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur

			if row[j] < rowMin {
				rowMin = row[j]
			}
		}

		// Every cell can only grow from here, so the bound is unreachable
		if rowMin > maxDist {
			return maxDist + 1
		}
	}

	return row[len(rb)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}

	if c < m {
		m = c
	}

	return m
}
