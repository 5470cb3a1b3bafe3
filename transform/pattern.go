//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package transform

// LinePattern is a confirmed header or footer pattern: an ordered sequence
// of template lines in natural top-to-bottom order, together with how many
// pages it fully matched.
type LinePattern struct {
	// Lines are the template lines. Fuzzy matching has no canonical normal
	// form, so each template line is the concrete line observed on the
	// reference page.
	Lines []string

	// Matches is the number of pages whose window matched every line of the
	// pattern within the configured difference bound.
	Matches int

	// Pages is the total number of pages the pattern was detected over.
	Pages int
}

// Len returns the number of lines in the pattern.
func (p *LinePattern) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Lines)
}

// Ratio returns the proportion of pages that fully matched the pattern.
func (p *LinePattern) Ratio() float64 {
	if p == nil || p.Pages == 0 {
		return 0
	}
	return float64(p.Matches) / float64(p.Pages)
}

// ReferenceStrategy chooses which candidate windows to try as the reference
// sequence during pattern detection. The reference only decides which page's
// exact wording becomes the template; matching itself is positional.
type ReferenceStrategy interface {
	// References returns the indices of the windows to try as reference,
	// in preference order.
	References(windows [][]string) []int

	// Name returns the name of this strategy.
	Name() string
}

// FirstPageReference uses the first page that yields a non-empty candidate
// window as the reference. This is the default strategy: fuzzy matching is
// symmetric, so for the small fixed windows involved the choice of reference
// affects wording, not which lines get matched.
type FirstPageReference struct{}

// References returns the index of the first non-empty window, if any.
func (FirstPageReference) References(windows [][]string) []int {
	for i, w := range windows {
		if len(w) > 0 {
			return []int{i}
		}
	}
	return nil
}

// Name returns the name of this strategy.
func (FirstPageReference) Name() string { return "FirstPageReference" }

// BestScoringReference tries every window as the reference and keeps the
// longest confirmed pattern, breaking ties by total match count. Costs one
// detection pass per page; use it when page wording varies enough that the
// first page may be an outlier.
type BestScoringReference struct{}

// References returns the indices of all non-empty windows.
func (BestScoringReference) References(windows [][]string) []int {
	refs := make([]int, 0, len(windows))
	for i, w := range windows {
		if len(w) > 0 {
			refs = append(refs, i)
		}
	}
	return refs
}

// Name returns the name of this strategy.
func (BestScoringReference) Name() string { return "BestScoringReference" }

// detectPattern finds the longest run of fuzzily repeating lines anchored to
// the given page edge. windows holds one candidate window per page, in page
// order and top-to-bottom line order. It returns nil when no position meets
// the repeat threshold, or when fewer than two pages exist: repetition
// across pages is undefined for a single page.
func detectPattern(
	windows [][]string,
	edge Edge,
	repeatThreshold float64,
	maxDifferences int,
	strategy ReferenceStrategy,
) *LinePattern {
	if len(windows) < 2 {
		return nil
	}
	if strategy == nil {
		strategy = FirstPageReference{}
	}

	var best *LinePattern
	for _, refIdx := range strategy.References(windows) {
		candidate := detectWithReference(windows, refIdx, edge, repeatThreshold, maxDifferences)
		if betterPattern(candidate, best) {
			best = candidate
		}
	}
	return best
}

// detectWithReference confirms positions outward-in against one reference
// window. A position is confirmed when the proportion of pages with a
// matching line at that position (reference included) meets the threshold;
// the pattern is the longest confirmed prefix from the page edge inward.
func detectWithReference(
	windows [][]string,
	refIdx int,
	edge Edge,
	repeatThreshold float64,
	maxDifferences int,
) *LinePattern {
	ref := windows[refIdx]
	total := len(windows)

	confirmed := 0
	for pos := 0; pos < len(ref); pos++ {
		refLine := lineAt(ref, edge, pos)
		count := 1 // the reference window itself
		for i, w := range windows {
			if i == refIdx || pos >= len(w) {
				continue
			}
			if Matches(lineAt(w, edge, pos), refLine, maxDifferences) {
				count++
			}
		}
		if float64(count)/float64(total) < repeatThreshold {
			break
		}
		confirmed++
	}
	if confirmed == 0 {
		return nil
	}

	// Template lines in natural top-to-bottom order.
	var lines []string
	if edge == EdgeHeader {
		lines = append(lines, ref[:confirmed]...)
	} else {
		lines = append(lines, ref[len(ref)-confirmed:]...)
	}

	matches := 0
	for _, w := range windows {
		if edgeMatches(w, lines, edge, maxDifferences) {
			matches++
		}
	}
	return &LinePattern{Lines: lines, Matches: matches, Pages: total}
}

// betterPattern reports whether a should replace b: longer patterns win,
// then higher full-match counts.
func betterPattern(a, b *LinePattern) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if a.Len() != b.Len() {
		return a.Len() > b.Len()
	}
	return a.Matches > b.Matches
}

// edgeMatches reports whether the lines at the given edge of a page match
// the pattern lines position-by-position. The match is all-or-nothing: a
// page shorter than the pattern never matches.
func edgeMatches(lines, pattern []string, edge Edge, maxDifferences int) bool {
	if len(pattern) == 0 || len(lines) < len(pattern) {
		return false
	}
	offset := 0
	if edge == EdgeFooter {
		offset = len(lines) - len(pattern)
	}
	for i, want := range pattern {
		if !Matches(lines[offset+i], want, maxDifferences) {
			return false
		}
	}
	return true
}
