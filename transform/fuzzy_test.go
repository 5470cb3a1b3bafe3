//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		max      int
		expected int
	}{
		{
			name:     "identical strings",
			a:        "Acme Corp",
			b:        "Acme Corp",
			max:      0,
			expected: 0,
		},
		{
			name:     "single substitution",
			a:        "Page 1 of 10",
			b:        "Page 2 of 10",
			max:      1,
			expected: 1,
		},
		{
			name:     "single insertion",
			a:        "Confidential",
			b:        "Confidentiall",
			max:      3,
			expected: 1,
		},
		{
			name:     "single deletion",
			a:        "Confidential",
			b:        "Confidentia",
			max:      3,
			expected: 1,
		},
		{
			name:     "empty vs non-empty",
			a:        "",
			b:        "abc",
			max:      5,
			expected: 3,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			max:      0,
			expected: 0,
		},
		{
			name:     "length difference exceeds bound",
			a:        "short",
			b:        "a much longer line entirely",
			max:      3,
			expected: 4, // capped at max+1
		},
		{
			name:     "unrelated strings capped",
			a:        "aaaaaaaaaa",
			b:        "bbbbbbbbbb",
			max:      2,
			expected: 3, // capped at max+1
		},
		{
			name:     "multibyte runes count as one edit",
			a:        "Résumé",
			b:        "Resume",
			max:      3,
			expected: 2,
		},
		{
			name:     "transposition costs two",
			a:        "form",
			b:        "from",
			max:      5,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transform.Distance(tt.a, tt.b, tt.max))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		maxDiff  int
		expected bool
	}{
		{"exact match zero budget", "Acme Corp", "Acme Corp", 0, true},
		{"one digit off within budget", "Page 3 of 10", "Page 4 of 10", 1, true},
		{"one digit off no budget", "Page 3 of 10", "Page 4 of 10", 0, false},
		{"empty within budget", "", "ab", 2, true},
		{"empty beyond budget", "", "abc", 2, false},
		{"negative budget never matches", "x", "x", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transform.Matches(tt.a, tt.b, tt.maxDiff))
		})
	}
}

// TestMatchesSymmetry samples line pairs and checks Matches(a,b) == Matches(b,a)
// across difference budgets.
func TestMatchesSymmetry(t *testing.T) {
	lines := []string{
		"",
		"Acme Corp",
		"ACME CORP",
		"Confidential",
		"Page 1 of 10",
		"Page 10 of 10",
		"2024 Annual Report",
		strings.Repeat("x", 200),
		"Résumé — straße",
	}
	for _, a := range lines {
		for _, b := range lines {
			for k := 0; k <= 4; k++ {
				assert.Equal(t, transform.Matches(a, b, k), transform.Matches(b, a, k),
					"asymmetry for %q vs %q at k=%d", a, b, k)
			}
		}
	}
}

// TestDistanceBoundedOnLongInputs makes sure the early exit keeps wildly
// different long lines cheap and correctly capped.
func TestDistanceBoundedOnLongInputs(t *testing.T) {
	a := strings.Repeat("header text ", 500)
	b := strings.Repeat("totally different ", 500)
	assert.Equal(t, 3, transform.Distance(a, b, 2))
	assert.False(t, transform.Matches(a, b, 2))
}
