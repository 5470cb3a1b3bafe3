//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package transform

// Matches reports whether two lines are equal within maxDifferences
// single-rune insertions, deletions, or substitutions. It is symmetric and
// treats the empty string as maxDifferences-away from any string of that
// length.
func Matches(a, b string, maxDifferences int) bool {
	if maxDifferences < 0 {
		return false
	}
	return Distance(a, b, maxDifferences) <= maxDifferences
}

// Distance computes the rune-level Levenshtein distance between a and b,
// capped at max+1. The computation short-circuits on length difference and
// aborts as soon as every entry of the current row exceeds max, so the cost
// is O(len(a)*len(b)) only in the worst case and far less for non-matches.
func Distance(a, b string, max int) int {
	if a == b {
		return 0
	}
	if max < 0 {
		max = 0
	}

	ra := []rune(a)
	rb := []rune(b)

	// Keep the shorter string on the inner loop.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// The distance is at least the length difference.
	if len(ra)-len(rb) > max {
		return max + 1
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		// Every continuation can only grow; give up once the whole row
		// is past the bound.
		if rowMin > max {
			return max + 1
		}
		prev, curr = curr, prev
	}

	if prev[len(rb)] > max {
		return max + 1
	}
	return prev[len(rb)]
}
