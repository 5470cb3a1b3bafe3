//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWindow(t *testing.T) {
	page := []string{"l1", "l2", "l3", "l4", "l5"}

	tests := []struct {
		name     string
		lines    []string
		edge     Edge
		maxLines int
		expected []string
	}{
		{
			name:     "header window",
			lines:    page,
			edge:     EdgeHeader,
			maxLines: 3,
			expected: []string{"l1", "l2", "l3"},
		},
		{
			name:     "footer window keeps original order",
			lines:    page,
			edge:     EdgeFooter,
			maxLines: 3,
			expected: []string{"l3", "l4", "l5"},
		},
		{
			name:     "short page returns all lines",
			lines:    []string{"only"},
			edge:     EdgeHeader,
			maxLines: 5,
			expected: []string{"only"},
		},
		{
			name:     "short page footer returns all lines",
			lines:    []string{"a", "b"},
			edge:     EdgeFooter,
			maxLines: 5,
			expected: []string{"a", "b"},
		},
		{
			name:     "empty page",
			lines:    nil,
			edge:     EdgeHeader,
			maxLines: 3,
			expected: nil,
		},
		{
			name:     "non-positive max lines",
			lines:    page,
			edge:     EdgeFooter,
			maxLines: 0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractWindow(tt.lines, tt.edge, tt.maxLines))
		})
	}
}

func TestLineAt(t *testing.T) {
	window := []string{"top", "middle", "bottom"}

	// Header positions count from the first line down.
	assert.Equal(t, "top", lineAt(window, EdgeHeader, 0))
	assert.Equal(t, "middle", lineAt(window, EdgeHeader, 1))

	// Footer positions count from the last line up.
	assert.Equal(t, "bottom", lineAt(window, EdgeFooter, 0))
	assert.Equal(t, "middle", lineAt(window, EdgeFooter, 1))
	assert.Equal(t, "top", lineAt(window, EdgeFooter, 2))
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "header", EdgeHeader.String())
	assert.Equal(t, "footer", EdgeFooter.String())
	assert.Equal(t, "unknown", Edge(42).String())
}
